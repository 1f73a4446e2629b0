package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Aura - personal operating system for tasks, time, and ventures",
	Long: `Aura is a personal operating system that turns a flat task list into a
time-blocked plan. Tasks are scheduled into fixed daily slots, each slot
carries an hour capacity, and the day and week views show at a glance
where you are overcommitted.

It provides CLI commands for managing tasks, scheduling them into slots,
reviewing capacity, and keeping daily intentions and reviews.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aura %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
