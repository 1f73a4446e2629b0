package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var alertsNotify bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show active alerts and warnings",
	Long: `Evaluate alert conditions against the task registry and display any
triggered alerts.

Alerts check for an overdue backlog, an oversized unscheduled queue, and
overbooked slots. Use --notify to forward triggered alerts to the
configured webhook.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if AlertEngine == nil {
			return fmt.Errorf("alert engine not initialized (observability may be disabled)")
		}
		if Tasks == nil {
			return fmt.Errorf("task store not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		tasks, err := Tasks.GetAllTasks()
		if err != nil {
			return fmt.Errorf("reading tasks: %w", err)
		}

		alerts, err := AlertEngine.Evaluate(tasks)
		if err != nil {
			return fmt.Errorf("evaluating alerts: %w", err)
		}

		if len(alerts) == 0 {
			fmt.Println("No active alerts.")
			return nil
		}

		fmt.Printf("%d active alert(s):\n\n", len(alerts))
		for _, alert := range alerts {
			severity := strings.ToUpper(string(alert.Severity))
			fmt.Printf("  [%s] %s\n", severity, alert.Message)
			fmt.Printf("         triggered at %s\n\n", alert.TriggeredAt.Format("2006-01-02 15:04 UTC"))
		}

		if alertsNotify {
			if Notifier == nil {
				return fmt.Errorf("notifier not configured (set notifications.webhook_url)")
			}
			if err := Notifier.Notify(alerts); err != nil {
				return fmt.Errorf("sending notifications: %w", err)
			}
			fmt.Println("Notifications sent.")
		}

		return nil
	},
}

func init() {
	alertsCmd.Flags().BoolVar(&alertsNotify, "notify", false, "Forward triggered alerts to the configured webhook")
	rootCmd.AddCommand(alertsCmd)
}
