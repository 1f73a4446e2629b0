package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/pkg/models"
)

var (
	queuePriority string
	queueVenture  string
	queueType     string
	queueSearch   string
)

var (
	badgeOverdue = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	badgeToday   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	badgeSoon    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	badgeWeek    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the unscheduled-task queue",
	Long: `Show open tasks that are not yet on the board, ordered by urgency.

Tasks with due dates sort first (nearest due date, then priority); tasks
without a due date follow, by priority. Each dated task carries an
urgency badge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task store not initialized")
		}
		if Today == nil {
			return fmt.Errorf("clock not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		all, err := Tasks.GetAllTasks()
		if err != nil {
			return fmt.Errorf("reading tasks: %w", err)
		}

		today := Today()
		queue := core.UnscheduledTasks(all, core.QueueFilter{
			Priority:  models.Priority(queuePriority),
			VentureID: queueVenture,
			Type:      models.TaskType(queueType),
			Search:    queueSearch,
		}, today)

		if len(queue) == 0 {
			fmt.Println("The queue is empty.")
			return nil
		}

		for _, t := range queue {
			line := fmt.Sprintf("  %-10s %-4s %s", t.ID, t.Priority, t.Title)
			if badge := core.Urgency(t.DueDate, today); badge != nil {
				line += "  " + renderUrgencyBadge(badge)
			}
			if t.EstEffort > 0 {
				line += fmt.Sprintf("  (%.1fh)", t.EstEffort)
			}
			fmt.Println(line)
		}
		fmt.Printf("\n%d task(s) in the queue\n", len(queue))
		return nil
	},
}

func renderUrgencyBadge(badge *core.UrgencyBadge) string {
	label := badge.Label()
	switch badge.Bucket {
	case core.BucketOverdue:
		return badgeOverdue.Render(label)
	case core.BucketDueToday, core.BucketDueTomorrow:
		return badgeToday.Render(label)
	case core.BucketDueSoon:
		return badgeSoon.Render(label)
	default:
		return badgeWeek.Render(label)
	}
}

func init() {
	queueCmd.Flags().StringVar(&queuePriority, "priority", "", "Filter by priority (P0-P3)")
	queueCmd.Flags().StringVar(&queueVenture, "venture", "", "Filter by venture ID")
	queueCmd.Flags().StringVar(&queueType, "type", "", "Filter by type")
	queueCmd.Flags().StringVar(&queueSearch, "search", "", "Filter by title substring")
	_ = queueCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	_ = queueCmd.RegisterFlagCompletionFunc("type", completeTypes)

	rootCmd.AddCommand(queueCmd)
}
