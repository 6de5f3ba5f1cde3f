package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/services"
	"github.com/carmelly/peeps-scheduler/pkg/data"
)

// ApplyResultsCmd creates the apply-results command: the Results Applier
// (§4.10), reconciling the authoritative attendance record against what
// Schedule originally chose.
func ApplyResultsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply-results <attendance_file>",
		Short: "Apply an authoritative attendance record, advancing member fairness state for next period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open attendance file: %w", err)
			}
			defer f.Close()

			attendance, err := data.ReadAttendance(f)
			if err != nil {
				return err
			}

			updated, err := services.ApplyResults(app.Ctx, app.Store, app.Cfg, app.Logger, attendance)
			if err != nil {
				return err
			}

			fmt.Printf("Applied attendance for %d events; %d members updated.\n", len(attendance), len(updated))
			return nil
		},
	}
	return cmd
}
