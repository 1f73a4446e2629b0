package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/pkg/models"
)

var ventureCmd = &cobra.Command{
	Use:   "venture",
	Short: "Manage ventures (areas of life and work)",
	Long: `Ventures group tasks into long-running areas of life or work.

They carry a name, an optional color, and an icon, and are used for
grouping and filtering only; scheduling never looks at them.`,
}

var (
	ventureAddColor string
	ventureAddIcon  string
)

var ventureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new venture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Ventures == nil {
			return fmt.Errorf("venture store not initialized")
		}
		if err := Ventures.Load(); err != nil {
			return fmt.Errorf("loading ventures: %w", err)
		}

		id, err := nextVentureID()
		if err != nil {
			return fmt.Errorf("generating venture id: %w", err)
		}

		venture := models.Venture{
			ID:    id,
			Name:  args[0],
			Color: ventureAddColor,
			Icon:  ventureAddIcon,
		}
		if err := Ventures.AddVenture(venture); err != nil {
			return fmt.Errorf("adding venture: %w", err)
		}
		if err := Ventures.Save(); err != nil {
			return fmt.Errorf("saving ventures: %w", err)
		}

		fmt.Printf("Added venture %s (%s)\n", venture.ID, venture.Name)
		return nil
	},
}

var ventureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ventures with their open task counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Ventures == nil {
			return fmt.Errorf("venture store not initialized")
		}
		if err := Ventures.Load(); err != nil {
			return fmt.Errorf("loading ventures: %w", err)
		}

		ventures, err := Ventures.GetAllVentures()
		if err != nil {
			return fmt.Errorf("listing ventures: %w", err)
		}
		if len(ventures) == 0 {
			fmt.Println("No ventures found.")
			return nil
		}

		open := map[string]int{}
		if Tasks != nil {
			if err := Tasks.Load(); err == nil {
				if tasks, err := Tasks.GetAllTasks(); err == nil {
					for _, t := range tasks {
						if !t.Status.Terminal() {
							open[t.VentureID]++
						}
					}
				}
			}
		}

		for _, v := range ventures {
			line := fmt.Sprintf("  %-10s %s", v.ID, v.Name)
			if v.Icon != "" {
				line = fmt.Sprintf("  %-10s %s %s", v.ID, v.Icon, v.Name)
			}
			if n := open[v.ID]; n > 0 {
				line += fmt.Sprintf("  (%d open)", n)
			}
			fmt.Println(line)
		}
		return nil
	},
}

// nextVentureID continues the V-NNN sequence past the highest existing id.
func nextVentureID() (string, error) {
	ventures, err := Ventures.GetAllVentures()
	if err != nil {
		return "", err
	}
	max := 0
	for _, v := range ventures {
		num, ok := strings.CutPrefix(v.ID, "V-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(num); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("V-%03d", max+1), nil
}

func init() {
	ventureAddCmd.Flags().StringVar(&ventureAddColor, "color", "", "Display color (hex or ANSI name)")
	ventureAddCmd.Flags().StringVar(&ventureAddIcon, "icon", "", "Display icon (emoji)")

	ventureCmd.AddCommand(ventureAddCmd)
	ventureCmd.AddCommand(ventureListCmd)
	rootCmd.AddCommand(ventureCmd)
}
