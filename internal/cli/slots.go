package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the slot catalog",
	Long: `List the fixed daily slots tasks can be scheduled into, with their
time windows and hour capacities.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("slot catalog not initialized")
		}

		for _, slot := range Catalog.Slots() {
			fmt.Printf("  %-15s %-14s %s-%s  %.1fh\n",
				slot.Key, slot.Label, slot.Start, slot.End, slot.CapacityHours)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd)
}
