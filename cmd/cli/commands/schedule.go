package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/services"
)

// ScheduleCmd creates the schedule command: sanitise -> trim -> search ->
// rank -> emit (§4.13).
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate a schedule for the configured period from members, responses, and events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sequenceChoice, _ := cmd.Flags().GetInt("sequence-choice")
			interactive, _ := cmd.Flags().GetBool("interactive")

			opts := services.ScheduleOptions{Choose: fixedChoice(sequenceChoice)}
			if interactive {
				opts.Choose = interactiveChoice
			}

			result, err := services.Schedule(app.Ctx, app.Store, app.Cfg, app.Logger, opts)
			if err != nil {
				return err
			}
			if result.Chosen == nil {
				fmt.Println("No ordering produced a valid event for this period; member records were left unchanged.")
				return nil
			}

			fmt.Printf("\nSchedule chosen (%d-way tie in top tier%s):\n\n", result.TierSize, truncatedSuffix(result.Truncated))
			printSchedule(result.Chosen)
			return nil
		},
	}

	cmd.Flags().Int("sequence-choice", 0, "index into the tied top tier to select non-interactively")
	cmd.Flags().Bool("interactive", false, "prompt for a choice when the top tier has more than one schedule")

	return cmd
}

func truncatedSuffix(truncated bool) string {
	if truncated {
		return ", search truncated"
	}
	return ""
}

func fixedChoice(idx int) services.Chooser {
	return func(tier []*model.Schedule) (int, error) { return idx, nil }
}

// interactiveChoice mirrors the teacher's interactive-session prompt style:
// print the tied options, read a line from stdin, parse it as an index.
func interactiveChoice(tier []*model.Schedule) (int, error) {
	if len(tier) == 1 {
		return 0, nil
	}
	fmt.Printf("%d schedules tie in the top tier:\n", len(tier))
	for i, s := range tier {
		fmt.Printf("  [%d] %d unique attendees, %d valid events, priority_fulfilled=%d\n",
			i, s.Metrics.NumUniqueAttendees, len(s.ValidEvents), s.Metrics.PriorityFulfilled)
	}
	fmt.Print("Choose an index: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return 0, fmt.Errorf("no input read for schedule choice")
	}
	idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("invalid index: %w", err)
	}
	return idx, nil
}

func printSchedule(s *model.Schedule) {
	for _, e := range s.ValidEvents {
		fmt.Printf("%s (%s, %d min)\n", e.ID, e.Date.Format("Mon 2006-01-02 15:04"), e.DurationMinutes)
		for _, r := range model.Roles {
			fmt.Printf("  %s: %v\n", r, e.Attendees[r])
		}
	}
	fmt.Printf("\nunique_attendees=%d total_attendees=%d priority_fulfilled=%d utilization=%.1f%%\n",
		s.Metrics.NumUniqueAttendees, s.Metrics.TotalAttendees, s.Metrics.PriorityFulfilled, s.Metrics.NormalizedUtilization)
	fmt.Printf("partnerships: mutual_unique=%d mutual_repeat=%d one_sided=%d\n",
		s.Metrics.MutualUniqueFulfilled, s.Metrics.MutualRepeatFulfilled, s.Metrics.OneSidedFulfilled)
}
