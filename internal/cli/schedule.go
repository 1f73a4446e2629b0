package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/pkg/models"
)

var (
	scheduleDate string
	scheduleSlot string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <task-id>...",
	Short: "Schedule tasks into a day slot",
	Long: `Assign one or more tasks to a (date, slot) cell of the week grid.

A task lives in at most one slot; scheduling it again moves it. The whole
batch is applied together: if any task cannot be updated, none are.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeTaskIDs(models.StatusDone, models.StatusCancelled),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		date, err := resolveDate(scheduleDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		if Catalog != nil && !Catalog.IsValidSlot(scheduleSlot) {
			return fmt.Errorf("unknown slot %q (see \"aura slots\")", scheduleSlot)
		}

		result, err := Scheduler.ScheduleTasks(args, date, scheduleSlot)
		if err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("scheduling tasks: %s", verr.Reason)
			}
			if result != nil && len(result.FailedIDs) > 0 {
				return fmt.Errorf("scheduling tasks: batch rejected, failing ids: %s",
					strings.Join(result.FailedIDs, ", "))
			}
			return fmt.Errorf("scheduling tasks: %w", err)
		}

		fmt.Printf("Scheduled %d task(s) into %s %s\n", result.Count, date, scheduleSlot)
		return nil
	},
}

var unscheduleCmd = &cobra.Command{
	Use:   "unschedule <task-id>",
	Short: "Return a task to the unscheduled queue",
	Long: `Clear a task's slot assignment, returning it to the unscheduled queue.

Unscheduling a task that is not on the board is a no-op.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(models.StatusDone, models.StatusCancelled),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		result, err := Scheduler.UnscheduleTask(args[0])
		if err != nil {
			return fmt.Errorf("unscheduling task %s: %w", args[0], err)
		}
		if result.Count == 0 {
			fmt.Printf("Task %s was not scheduled.\n", args[0])
			return nil
		}
		fmt.Printf("Task %s returned to the queue\n", args[0])
		return nil
	},
}

var (
	clearSlotDate string
	clearSlotSlot string
)

var clearSlotCmd = &cobra.Command{
	Use:   "clear-slot",
	Short: "Unschedule every task in a day slot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		date, err := resolveDate(clearSlotDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}

		result, err := Scheduler.ClearSlot(date, clearSlotSlot)
		if err != nil {
			return fmt.Errorf("clearing slot: %w", err)
		}
		if result.Count == 0 {
			fmt.Printf("Slot %s %s was already empty.\n", date, clearSlotSlot)
			return nil
		}
		fmt.Printf("Cleared %d task(s) from %s %s\n", result.Count, date, clearSlotSlot)
		return nil
	},
}

// resolveDate parses a date flag, defaulting to today when the flag is
// empty.
func resolveDate(flag string) (models.Date, error) {
	if flag == "" || flag == "today" {
		if Today == nil {
			return "", fmt.Errorf("no date given")
		}
		return Today(), nil
	}
	if flag == "tomorrow" {
		if Today == nil {
			return "", fmt.Errorf("no date given")
		}
		return Today().AddDays(1), nil
	}
	return models.ParseDate(flag)
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Target date (YYYY-MM-DD, today, tomorrow; default today)")
	scheduleCmd.Flags().StringVar(&scheduleSlot, "slot", "", "Target slot key")
	_ = scheduleCmd.MarkFlagRequired("slot")
	_ = scheduleCmd.RegisterFlagCompletionFunc("slot", completeSlots)

	clearSlotCmd.Flags().StringVar(&clearSlotDate, "date", "", "Target date (default today)")
	clearSlotCmd.Flags().StringVar(&clearSlotSlot, "slot", "", "Target slot key")
	_ = clearSlotCmd.MarkFlagRequired("slot")
	_ = clearSlotCmd.RegisterFlagCompletionFunc("slot", completeSlots)

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(unscheduleCmd)
	rootCmd.AddCommand(clearSlotCmd)
}
