package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/services"
)

// ImportPeriodCmd creates the import-period command: loads a closed
// period's results.json and members.csv into the history store (§4.17).
func ImportPeriodCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-period <folder>",
		Short: "Import a closed period's results and members into the history store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			if err := services.ImportPeriod(app.Ctx, app.Store, app.History, app.Cfg, app.Logger, folder); err != nil {
				return err
			}
			fmt.Printf("Imported period %q into the history store.\n", folder)
			return nil
		},
	}
}
