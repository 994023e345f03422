package importlegacy

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saurabh/starter-templates/cmd/common"
	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/legacy"
	"github.com/saurabh/starter-templates/library"
)

// now stamps the migration file name.
var now = time.Now

// Command builds the "import-legacy" subcommand: legacy template sources to
// SQL migration, and optionally to a manifest file.
func Command(cfg *config.Config) *cobra.Command {
	var (
		toStdout    bool
		manifestOut string
	)

	cmd := &cobra.Command{
		Use:   "import-legacy",
		Short: "Generate the migration from legacy template source files",
		Long: `Imports the legacy template sources, validates them and writes the same
migration as "generate".

An existing migration file is never overwritten. Two runs within the same
second target the same file name, so the second one fails; run it again a
second later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			importer := legacy.NewImporter(legacy.Source{
				Dir:           cfg.Library.LegacySourceDir,
				TypesFile:     cfg.Library.LegacyTypesFile,
				TemplateFiles: cfg.Library.LegacyTemplateFiles,
			})

			lib, warnings, err := importer.Import(cmd.Context())
			if err != nil {
				return err
			}
			warnings = append(warnings, library.Validate(lib)...)
			if err := common.ReportWarnings(warnings, cfg.Library.Strict); err != nil {
				return err
			}

			if manifestOut != "" {
				if err := writeManifest(manifestOut, lib); err != nil {
					return err
				}
			}

			out := common.Output{Dir: cfg.Library.MigrationsDir}
			if toStdout {
				out.Stdout = cmd.OutOrStdout()
			}
			_, err = common.EmitMigration(lib, out, now())
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.Library.LegacySourceDir, "source", cfg.Library.LegacySourceDir, "directory holding the legacy source files")
	cmd.Flags().StringVar(&cfg.Library.MigrationsDir, "out", cfg.Library.MigrationsDir, "directory for the migration file")
	cmd.Flags().StringVar(&manifestOut, "manifest-out", "", "also write the imported library as a manifest file")
	cmd.Flags().BoolVar(&cfg.Library.Strict, "strict", cfg.Library.Strict, "fail when the sources have warnings")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the migration instead of writing a file")

	return cmd
}

func writeManifest(path string, lib *library.Library) error {
	f, err := common.CreateFile(path)
	if err != nil {
		return err
	}
	if err := library.WriteManifest(f, lib); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	common.LogSuccess("Wrote manifest %s", path)
	return nil
}
