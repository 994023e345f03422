package apply

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/saurabh/starter-templates/cmd/common"
	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/migration"
	"github.com/saurabh/starter-templates/utils/database"
)

// Options selects what the apply subcommand runs against the database.
type Options struct {
	File      string
	Direct    bool
	Bootstrap bool
}

// Command builds the "apply" subcommand: run a generated migration file, or
// upsert the manifest library directly.
func Command(cfg *config.Config) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "apply [FILE]",
		Short: "Apply a generated migration or upsert the library directly",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			if opts.File != "" && opts.Direct {
				return errors.New("a migration FILE and --direct are mutually exclusive")
			}
			if opts.File == "" && !opts.Direct {
				return errors.New("pass either a migration FILE or --direct")
			}
			if err := cfg.ValidateDatabase(); err != nil {
				return err
			}

			db, err := database.NewPostgresConnection(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return Run(cmd.Context(), db, cfg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Direct, "direct", false, "upsert the manifest library without a migration file")
	cmd.Flags().BoolVar(&opts.Bootstrap, "bootstrap", false, "create the library tables first when missing")
	cmd.Flags().StringVar(&cfg.Library.ManifestDir, "manifest", cfg.Library.ManifestDir, "manifest directory for --direct (default: built-in starter library)")

	return cmd
}

// Run applies the library to db according to opts.
func Run(ctx context.Context, db *database.DB, cfg *config.Config, opts Options) error {
	if opts.Bootstrap {
		if err := db.Bootstrap(ctx); err != nil {
			return err
		}
	}

	if opts.File != "" {
		script, err := common.ReadFileContent(opts.File)
		if err != nil {
			return err
		}
		common.LogInfo("Applying %s", opts.File)
		if err := db.ExecScript(ctx, script); err != nil {
			return err
		}
	} else {
		lib, warnings, err := common.LoadLibrary(cfg.Library.ManifestDir)
		if err != nil {
			return err
		}
		if err := common.ReportWarnings(warnings, cfg.Library.Strict); err != nil {
			return err
		}
		stmts, err := migration.UpsertStatements(db.Dialect(), lib)
		if err != nil {
			return err
		}
		common.LogInfo("Upserting %d record types and %d templates", len(lib.RecordTypes), len(lib.Templates))
		if err := db.Upsert(ctx, stmts); err != nil {
			return err
		}
	}

	recordTypes, err := db.Count(ctx, migration.RecordTypesTable)
	if err != nil {
		return err
	}
	templates, err := db.Count(ctx, migration.TemplatesTable)
	if err != nil {
		return err
	}
	common.LogSuccess("Library applied: %d record types, %d templates", recordTypes, templates)
	return nil
}
