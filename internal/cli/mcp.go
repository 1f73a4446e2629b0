package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	auramcp "github.com/sayedbaharun/aura/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the Aura MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Aura MCP server on stdio",
	Long: `Start the Aura MCP server on stdio transport.

The server exposes Aura functionality as MCP tools that AI assistants
can call: list_unscheduled, schedule_tasks, unschedule_task, day_plan,
week_capacity.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil || Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		srv := auramcp.NewServer(auramcp.Deps{
			Tasks:      Tasks,
			Scheduler:  Scheduler,
			Catalog:    Catalog,
			Thresholds: CapThresholds,
			Today:      Today,
		}, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
