package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/pkg/models"
)

var (
	levelOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	levelWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	levelOver    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Review the day or week plan with capacity accounting",
}

var planDayDate string

var planDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show one day's slots, tasks, and capacity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil || Catalog == nil {
			return fmt.Errorf("planner not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		date, err := resolveDate(planDayDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}

		all, err := Tasks.GetAllTasks()
		if err != nil {
			return fmt.Errorf("reading tasks: %w", err)
		}
		grid := core.BuildWeek(all, date, 1, Catalog, CapThresholds)

		fmt.Printf("Plan for %s\n\n", date)
		for _, slot := range Catalog.Slots() {
			cell := grid.Cell(date, slot.Key)
			header := fmt.Sprintf("  %-14s %s-%s  %s",
				slot.Label, slot.Start, slot.End, renderCapacity(cell, slot.CapacityHours))
			fmt.Println(header)
			for _, t := range cell.Tasks {
				line := fmt.Sprintf("      %-10s %s", t.ID, t.Title)
				if t.EstEffort > 0 {
					line += fmt.Sprintf(" (%.1fh)", t.EstEffort)
				}
				if t.Status == models.StatusDone {
					line += "  ✓"
				}
				fmt.Println(line)
			}
		}

		usage := grid.DayUsage(date)
		fmt.Printf("\n  Day total: %.1fh across %d task(s)\n", usage.UsedHours, usage.TaskCount)

		if Days != nil {
			if err := Days.Load(); err == nil {
				if day, err := Days.GetDayByDate(date); err == nil {
					if day.MorningIntention != "" {
						fmt.Printf("\n  Intention: %s\n", day.MorningIntention)
					}
					if day.EveningReview != "" {
						fmt.Printf("  Review:    %s\n", day.EveningReview)
					}
				}
			}
		}
		return nil
	},
}

var planWeekStart string

var planWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the week grid with per-cell capacity levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil || Catalog == nil {
			return fmt.Errorf("planner not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		start, err := resolveDate(planWeekStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}

		all, err := Tasks.GetAllTasks()
		if err != nil {
			return fmt.Errorf("reading tasks: %w", err)
		}
		grid := core.BuildWeek(all, start, 7, Catalog, CapThresholds)

		dates := grid.Dates()
		fmt.Printf("Week of %s\n\n", start)

		// Header row.
		var header strings.Builder
		header.WriteString(fmt.Sprintf("  %-14s", ""))
		for _, d := range dates {
			header.WriteString(fmt.Sprintf(" %-12s", shortDate(d)))
		}
		fmt.Println(header.String())

		for _, slot := range Catalog.Slots() {
			var row strings.Builder
			row.WriteString(fmt.Sprintf("  %-14s", slot.Label))
			for _, d := range dates {
				cell := grid.Cell(d, slot.Key)
				row.WriteString(fmt.Sprintf(" %-12s", renderCellSummary(cell)))
			}
			fmt.Println(row.String())
		}

		var total core.Usage
		for _, d := range dates {
			u := grid.DayUsage(d)
			total.UsedHours += u.UsedHours
			total.TaskCount += u.TaskCount
		}
		fmt.Printf("\n  Week total: %.1fh across %d task(s)\n", total.UsedHours, total.TaskCount)
		return nil
	},
}

// renderCapacity formats "used/capacity" hours colored by level.
func renderCapacity(cell core.Cell, capacity float64) string {
	text := fmt.Sprintf("%.1f/%.1fh", cell.Usage.UsedHours, capacity)
	return styleForLevel(cell.Status.Level).Render(text)
}

// renderCellSummary is the compact week-view form: task count and hours,
// or a dash for empty cells.
func renderCellSummary(cell core.Cell) string {
	if cell.Usage.TaskCount == 0 {
		return "-"
	}
	text := fmt.Sprintf("%d· %.1fh", cell.Usage.TaskCount, cell.Usage.UsedHours)
	return styleForLevel(cell.Status.Level).Render(text)
}

func styleForLevel(level core.CapacityLevel) lipgloss.Style {
	switch level {
	case core.LevelOver:
		return levelOver
	case core.LevelWarning:
		return levelWarning
	default:
		return levelOK
	}
}

// shortDate renders "Mon 24" style column headers.
func shortDate(d models.Date) string {
	t := d.Time()
	if t.IsZero() {
		return string(d)
	}
	return t.Format("Mon 02")
}

func init() {
	planDayCmd.Flags().StringVar(&planDayDate, "date", "", "Date to plan (default today)")
	planWeekCmd.Flags().StringVar(&planWeekStart, "start", "", "First day of the week view (default today)")

	planCmd.AddCommand(planDayCmd)
	planCmd.AddCommand(planWeekCmd)
	rootCmd.AddCommand(planCmd)
}
