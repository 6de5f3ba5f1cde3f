package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/services"
)

// ListMembersCmd creates the list-members command.
func ListMembersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-members",
		Short: "List the canonical member roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := services.ListMembers(app.Ctx, app.Store, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d members:\n\n", len(people))
			for _, p := range people {
				fmt.Printf("  %3d. %-20s %-28s %s  priority=%-3d total_attended=%-3d\n",
					p.Index, p.DisplayName, p.Email, p.PrimaryRole, p.Priority, p.TotalAttended)
			}
			return nil
		},
	}
}
