package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/services"
)

// AvailabilityReportCmd creates the availability-report command: a
// read-only pass over this period's responses, printed the way the
// source's availability_report.py::print_availability does (§4.19).
func AvailabilityReportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "availability-report",
		Short: "Print who is available for each candidate event this period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.BuildAvailabilityReport(app.Ctx, app.Store, app.Cfg, app.Logger)
			if err != nil {
				return err
			}
			printAvailabilityReport(report)
			return nil
		},
	}
}

func printAvailabilityReport(r *services.AvailabilityReport) {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("AVAILABILITY REPORT")
	fmt.Println(strings.Repeat("=", 80))

	if len(r.CancelledEvents) > 0 {
		fmt.Println("\nCANCELLED EVENTS:")
		for _, id := range r.CancelledEvents {
			fmt.Printf("  - %s\n", id)
		}
	}
	if len(r.CancelledAvailability) > 0 {
		fmt.Println("\nCANCELLED AVAILABILITY (excluded from the event lists below):")
		names := make([]string, 0, len(r.CancelledAvailability))
		for name := range r.CancelledAvailability {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  - %s: %s\n", name, joinEventIDs(r.CancelledAvailability[name]))
		}
	}

	for _, id := range r.Events {
		e := r.ByEvent[id]
		fmt.Printf("\n%s\n", id)
		fmt.Printf("    Leaders  (%d): %s ( + %s)\n",
			len(e.Leader), strings.Join(e.Leader, ", "), strings.Join(e.LeaderFill, ", "))
		fmt.Printf("    Followers(%d): %s ( + %s)\n",
			len(e.Follower), strings.Join(e.Follower, ", "), strings.Join(e.FollowerFill, ", "))
	}

	fmt.Println("\nNo availability:")
	for _, name := range r.Unavailable {
		fmt.Printf("  - %s\n", name)
	}

	fmt.Println("\nDid not respond:")
	for _, name := range r.NonResponders {
		fmt.Printf("  - %s\n", name)
	}
}

func joinEventIDs(ids []model.EventID) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = string(id)
	}
	return strings.Join(strs, ", ")
}
