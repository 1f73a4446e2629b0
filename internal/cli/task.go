package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/internal/storage"
	"github.com/sayedbaharun/aura/pkg/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks (add, list, update, done, cancel)",
	Long: `Unified task management commands.

Add new tasks, list and filter the registry, update fields,
and close tasks out as done or cancelled.`,
}

var (
	taskAddType     string
	taskAddPriority string
	taskAddEffort   float64
	taskAddDue      string
	taskAddVenture  string
	taskAddProject  string
)

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task with the given title.

The task starts unscheduled in the todo status. Use --due to give it a
due date, --effort for an hour estimate, and --venture to attach it to
a venture. Schedule it into a slot with "aura schedule".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task store not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		var due models.Date
		if taskAddDue != "" {
			parsed, err := models.ParseDate(taskAddDue)
			if err != nil {
				return fmt.Errorf("parsing --due: %w", err)
			}
			due = parsed
		}

		id, err := nextTaskID()
		if err != nil {
			return fmt.Errorf("generating task id: %w", err)
		}

		task := models.Task{
			ID:        id,
			Title:     args[0],
			Type:      models.TaskType(taskAddType),
			Status:    models.StatusTodo,
			Priority:  models.Priority(taskAddPriority),
			EstEffort: taskAddEffort,
			DueDate:   due,
			VentureID: taskAddVenture,
			ProjectID: taskAddProject,
		}
		if err := Tasks.AddTask(task); err != nil {
			return fmt.Errorf("adding task: %w", err)
		}
		if err := Tasks.Save(); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}

		logCLIEvent("task.created", map[string]any{
			"task_id":  task.ID,
			"type":     string(task.Type),
			"priority": string(task.Priority),
		})

		fmt.Printf("Added task %s\n", task.ID)
		fmt.Printf("  Title:    %s\n", task.Title)
		fmt.Printf("  Priority: %s\n", task.Priority)
		if task.EstEffort > 0 {
			fmt.Printf("  Effort:   %.1fh\n", task.EstEffort)
		}
		if !task.DueDate.IsZero() {
			fmt.Printf("  Due:      %s\n", task.DueDate)
		}
		return nil
	},
}

var (
	taskListStatus  string
	taskListVenture string
	taskListType    string
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task store not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		filter := storage.TaskFilter{
			VentureID: taskListVenture,
			Type:      models.TaskType(taskListType),
		}
		if taskListStatus != "" {
			filter.Status = []models.TaskStatus{models.NormalizeStatus(taskListStatus)}
		}

		tasks, err := Tasks.FilterTasks(filter)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		for _, t := range tasks {
			line := fmt.Sprintf("  %-10s %-4s %-12s %s", t.ID, t.Priority, t.Status, t.Title)
			if t.Scheduled() {
				line += fmt.Sprintf("  [%s %s]", t.FocusDate, t.FocusSlot)
			}
			if !t.DueDate.IsZero() {
				line += fmt.Sprintf("  due %s", t.DueDate)
			}
			fmt.Println(line)
		}
		fmt.Printf("\n%d task(s)\n", len(tasks))
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:               "done <task-id>",
	Short:             "Mark a task as done",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(models.StatusDone, models.StatusCancelled),
	RunE: func(cmd *cobra.Command, args []string) error {
		return closeTask(args[0], models.StatusDone)
	},
}

var taskCancelCmd = &cobra.Command{
	Use:               "cancel <task-id>",
	Short:             "Cancel a task",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(models.StatusDone, models.StatusCancelled),
	RunE: func(cmd *cobra.Command, args []string) error {
		return closeTask(args[0], models.StatusCancelled)
	},
}

// closeTask moves a task to a terminal status. Done work keeps its focus
// assignment for the day's record; cancelled work is taken off the board.
func closeTask(id string, status models.TaskStatus) error {
	if Tasks == nil {
		return fmt.Errorf("task store not initialized")
	}
	if err := Tasks.Load(); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if err := Tasks.UpdateTask(id, storage.TaskPatch{Status: status}); err != nil {
		return fmt.Errorf("closing task %s: %w", id, err)
	}
	if err := Tasks.Save(); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	if status == models.StatusDone {
		logCLIEvent("task.completed", map[string]any{"task_id": id})
	}

	fmt.Printf("Task %s marked %s\n", id, status)
	return nil
}

var (
	taskUpdateTitle    string
	taskUpdatePriority string
	taskUpdateStatus   string
	taskUpdateEffort   float64
	taskUpdateDue      string
)

var taskUpdateCmd = &cobra.Command{
	Use:               "update <task-id>",
	Short:             "Update fields of a task",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task store not initialized")
		}
		if err := Tasks.Load(); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		patch := storage.TaskPatch{
			Title:    taskUpdateTitle,
			Priority: models.Priority(taskUpdatePriority),
			Status:   models.TaskStatus(taskUpdateStatus),
		}
		if cmd.Flags().Changed("effort") {
			patch.EstEffort = &taskUpdateEffort
		}
		if cmd.Flags().Changed("due") {
			due := models.Date("")
			if taskUpdateDue != "" {
				parsed, err := models.ParseDate(taskUpdateDue)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				due = parsed
			}
			patch.DueDate = &due
		}

		if err := Tasks.UpdateTask(args[0], patch); err != nil {
			return fmt.Errorf("updating task %s: %w", args[0], err)
		}
		if err := Tasks.Save(); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}

		fmt.Printf("Updated task %s\n", args[0])
		return nil
	},
}

// nextTaskID scans the registry for the highest numeric suffix and returns
// the next id in the T-NNN sequence.
func nextTaskID() (string, error) {
	tasks, err := Tasks.GetAllTasks()
	if err != nil {
		return "", err
	}
	max := 0
	for _, t := range tasks {
		num, ok := strings.CutPrefix(t.ID, "T-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(num); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("T-%03d", max+1), nil
}

// logCLIEvent writes an event if the log is wired; failures never block
// the command.
func logCLIEvent(eventType string, data map[string]any) {
	if EventLog == nil {
		return
	}
	_ = EventLog.LogEvent(eventType, data)
}

func init() {
	taskAddCmd.Flags().StringVar(&taskAddType, "type", string(models.TypeAdmin), "Task type (deep_work, admin, habit, errand)")
	taskAddCmd.Flags().StringVar(&taskAddPriority, "priority", string(models.P2), "Priority (P0-P3)")
	taskAddCmd.Flags().Float64Var(&taskAddEffort, "effort", 0, "Estimated effort in hours")
	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskAddVenture, "venture", "", "Venture ID")
	taskAddCmd.Flags().StringVar(&taskAddProject, "project", "", "Project ID")
	_ = taskAddCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	_ = taskAddCmd.RegisterFlagCompletionFunc("type", completeTypes)

	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	taskListCmd.Flags().StringVar(&taskListVenture, "venture", "", "Filter by venture ID")
	taskListCmd.Flags().StringVar(&taskListType, "type", "", "Filter by type")
	_ = taskListCmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = taskListCmd.RegisterFlagCompletionFunc("type", completeTypes)

	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVar(&taskUpdatePriority, "priority", "", "New priority (P0-P3)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateStatus, "status", "", "New status")
	taskUpdateCmd.Flags().Float64Var(&taskUpdateEffort, "effort", 0, "New effort estimate in hours")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "New due date (YYYY-MM-DD, empty to clear)")
	_ = taskUpdateCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	_ = taskUpdateCmd.RegisterFlagCompletionFunc("status", completeStatuses)

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskCancelCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	rootCmd.AddCommand(taskCmd)
}
