package seed

import (
	"github.com/spf13/cobra"

	"github.com/saurabh/starter-templates/cmd/common"
	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/pkg/redis"
	"github.com/saurabh/starter-templates/plans"
	"github.com/saurabh/starter-templates/utils/database"
)

// Command builds the "seed-plans" subcommand.
func Command(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-plans",
		Short: "Write the default subscription plans to the document store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateRedis(); err != nil {
				return err
			}
			client, err := database.NewRedisClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			store := redis.NewDocumentStore(client, cfg.Redis.KeyPrefix)
			if err := plans.Seed(cmd.Context(), store, plans.Defaults()); err != nil {
				return err
			}
			common.LogSuccess("Seeded %d subscription plans", len(plans.Defaults()))
			return nil
		},
	}
}
