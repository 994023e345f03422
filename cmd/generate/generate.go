package generate

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/saurabh/starter-templates/cmd/common"
	"github.com/saurabh/starter-templates/config"
)

// now stamps the migration file name.
var now = time.Now

// Command builds the "generate" subcommand: manifest library to SQL migration.
func Command(cfg *config.Config) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the starter template library migration from the manifest",
		Long: `Renders the manifest library as one transactional SQL script and writes it
to the migrations directory as <UTC timestamp>_starter_template_library.sql.

An existing migration file is never overwritten. Two runs within the same
second target the same file name, so the second one fails; run it again a
second later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, warnings, err := common.LoadLibrary(cfg.Library.ManifestDir)
			if err != nil {
				return err
			}
			if err := common.ReportWarnings(warnings, cfg.Library.Strict); err != nil {
				return err
			}

			out := common.Output{Dir: cfg.Library.MigrationsDir}
			if toStdout {
				out.Stdout = cmd.OutOrStdout()
			}
			_, err = common.EmitMigration(lib, out, now())
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.Library.ManifestDir, "manifest", cfg.Library.ManifestDir, "manifest directory (default: built-in starter library)")
	cmd.Flags().StringVar(&cfg.Library.MigrationsDir, "out", cfg.Library.MigrationsDir, "directory for the migration file")
	cmd.Flags().BoolVar(&cfg.Library.Strict, "strict", cfg.Library.Strict, "fail when the library has warnings")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the migration instead of writing a file")

	return cmd
}
