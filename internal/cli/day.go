package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Manage daily intention and review notes",
	Long: `Keep a short record per calendar day: a morning intention set before
the day starts and an evening review written after it ends. Records are
created on first write.`,
}

var dayIntentionDate string

var dayIntentionCmd = &cobra.Command{
	Use:   "intention <text>",
	Short: "Set the morning intention for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Days == nil {
			return fmt.Errorf("day store not initialized")
		}
		if err := Days.Load(); err != nil {
			return fmt.Errorf("loading days: %w", err)
		}

		date, err := resolveDate(dayIntentionDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		if _, err := Days.SetMorningIntention(date, args[0]); err != nil {
			return fmt.Errorf("setting intention: %w", err)
		}
		if err := Days.Save(); err != nil {
			return fmt.Errorf("saving days: %w", err)
		}
		fmt.Printf("Intention set for %s\n", date)
		return nil
	},
}

var dayReviewDate string

var dayReviewCmd = &cobra.Command{
	Use:   "review <text>",
	Short: "Write the evening review for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Days == nil {
			return fmt.Errorf("day store not initialized")
		}
		if err := Days.Load(); err != nil {
			return fmt.Errorf("loading days: %w", err)
		}

		date, err := resolveDate(dayReviewDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		if _, err := Days.SetEveningReview(date, args[0]); err != nil {
			return fmt.Errorf("setting review: %w", err)
		}
		if err := Days.Save(); err != nil {
			return fmt.Errorf("saving days: %w", err)
		}
		fmt.Printf("Review recorded for %s\n", date)
		return nil
	},
}

var dayShowDate string

var dayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Days == nil {
			return fmt.Errorf("day store not initialized")
		}
		if err := Days.Load(); err != nil {
			return fmt.Errorf("loading days: %w", err)
		}

		date, err := resolveDate(dayShowDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		day, err := Days.GetDayByDate(date)
		if err != nil {
			fmt.Printf("No record for %s yet.\n", date)
			return nil
		}

		fmt.Printf("Day %s\n", day.Date)
		if day.MorningIntention != "" {
			fmt.Printf("  Intention: %s\n", day.MorningIntention)
		}
		if day.EveningReview != "" {
			fmt.Printf("  Review:    %s\n", day.EveningReview)
		}
		return nil
	},
}

func init() {
	dayIntentionCmd.Flags().StringVar(&dayIntentionDate, "date", "", "Date (default today)")
	dayReviewCmd.Flags().StringVar(&dayReviewDate, "date", "", "Date (default today)")
	dayShowCmd.Flags().StringVar(&dayShowDate, "date", "", "Date (default today)")

	dayCmd.AddCommand(dayIntentionCmd)
	dayCmd.AddCommand(dayReviewCmd)
	dayCmd.AddCommand(dayShowCmd)
	rootCmd.AddCommand(dayCmd)
}
