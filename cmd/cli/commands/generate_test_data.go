package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/services"
)

// GenerateTestDataCmd creates the generate-test-data command: fabricates a
// synthetic member roster for trying out the other subcommands.
func GenerateTestDataCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-test-data",
		Short: "Generate a synthetic member roster in the data folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			leaders, _ := cmd.Flags().GetInt("leaders")
			followers, _ := cmd.Flags().GetInt("followers")
			seed, _ := cmd.Flags().GetInt64("seed")

			people, err := services.GenerateTestData(app.Ctx, app.Store, app.Cfg, app.Logger, services.GenerateTestDataOptions{
				NumLeaders:   leaders,
				NumFollowers: followers,
				Seed:         seed,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Generated %d members (%d leaders, %d followers) into %s\n",
				len(people), leaders, followers, app.Cfg.DataFolder)
			return nil
		},
	}

	cmd.Flags().Int("leaders", 10, "number of leaders to generate")
	cmd.Flags().Int("followers", 10, "number of followers to generate")
	cmd.Flags().Int64("seed", 1, "random seed for the synthetic roster")

	return cmd
}
