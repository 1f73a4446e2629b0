// Package mcp provides an MCP (Model Context Protocol) server that exposes
// Aura scheduling functionality as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/internal/storage"
	"github.com/sayedbaharun/aura/pkg/models"
)

// Deps are the Aura services the MCP tools are built on.
type Deps struct {
	Tasks      storage.TaskStore
	Scheduler  *core.Scheduler
	Catalog    *core.Catalog
	Thresholds core.Thresholds
	Today      func() models.Date
}

// Server wraps Aura services and exposes them as MCP tools.
type Server struct {
	server *gomcp.Server
	deps   Deps
}

// NewServer creates a new MCP server with the given Aura service
// dependencies.
func NewServer(deps Deps, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{deps: deps}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "aura", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Type      string  `json:"type,omitempty"`
	Status    string  `json:"status"`
	Priority  string  `json:"priority,omitempty"`
	EstEffort float64 `json:"est_effort,omitempty"`
	DueDate   string  `json:"due_date,omitempty"`
	Urgency   string  `json:"urgency,omitempty"`
	FocusDate string  `json:"focus_date,omitempty"`
	FocusSlot string  `json:"focus_slot,omitempty"`
	VentureID string  `json:"venture_id,omitempty"`
}

type listUnscheduledInput struct {
	Priority string `json:"priority,omitempty" jsonschema:"filter by priority (P0, P1, P2, P3)"`
	Venture  string `json:"venture,omitempty" jsonschema:"filter by venture id"`
	Search   string `json:"search,omitempty" jsonschema:"filter by case-insensitive title substring"`
}

type listUnscheduledOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type scheduleTasksInput struct {
	TaskIDs []string `json:"task_ids" jsonschema:"required,the ids of the tasks to schedule"`
	Date    string   `json:"date" jsonschema:"required,target date in YYYY-MM-DD form"`
	Slot    string   `json:"slot" jsonschema:"required,target slot key (e.g. morning, afternoon, evening)"`
}

type scheduleTasksOutput struct {
	Scheduled int      `json:"scheduled"`
	FailedIDs []string `json:"failed_ids,omitempty"`
	Message   string   `json:"message"`
}

type unscheduleTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the id of the task to return to the queue"`
}

type unscheduleTaskOutput struct {
	Message string `json:"message"`
}

type dayPlanInput struct {
	Date string `json:"date,omitempty" jsonschema:"date in YYYY-MM-DD form; defaults to today"`
}

type slotPlanOutput struct {
	Slot          string       `json:"slot"`
	Label         string       `json:"label"`
	CapacityHours float64      `json:"capacity_hours"`
	UsedHours     float64      `json:"used_hours"`
	Level         string       `json:"level"`
	Tasks         []taskOutput `json:"tasks,omitempty"`
}

type dayPlanOutput struct {
	Date       string           `json:"date"`
	Slots      []slotPlanOutput `json:"slots"`
	TotalHours float64          `json:"total_hours"`
	TaskCount  int              `json:"task_count"`
}

type weekCapacityInput struct {
	Start string `json:"start,omitempty" jsonschema:"first day of the week in YYYY-MM-DD form; defaults to today"`
}

type weekCellOutput struct {
	Date      string  `json:"date"`
	Slot      string  `json:"slot"`
	UsedHours float64 `json:"used_hours"`
	TaskCount int     `json:"task_count"`
	Level     string  `json:"level"`
}

type weekCapacityOutput struct {
	Start      string           `json:"start"`
	Days       int              `json:"days"`
	Cells      []weekCellOutput `json:"cells"`
	TotalHours float64          `json:"total_hours"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_unscheduled",
		Description: "List open tasks that are not scheduled into a slot, ordered by urgency (nearest due date first, then priority).",
	}, s.handleListUnscheduled)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "schedule_tasks",
		Description: "Schedule one or more tasks into a (date, slot) cell. The batch is applied all-or-nothing.",
	}, s.handleScheduleTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "unschedule_task",
		Description: "Clear a task's slot assignment, returning it to the unscheduled queue. A no-op for tasks not on the board.",
	}, s.handleUnscheduleTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "day_plan",
		Description: "Get one day's plan: every slot with its tasks, used hours, capacity, and capacity level (ok, warning, over).",
	}, s.handleDayPlan)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "week_capacity",
		Description: "Get the 7-day capacity summary: per-cell used hours, task counts, and capacity levels.",
	}, s.handleWeekCapacity)
}

// --- Tool handlers ---

func (s *Server) handleListUnscheduled(_ context.Context, _ *gomcp.CallToolRequest, input listUnscheduledInput) (*gomcp.CallToolResult, listUnscheduledOutput, error) {
	if err := s.deps.Tasks.Load(); err != nil {
		return errorResult(fmt.Sprintf("loading tasks: %s", err)), listUnscheduledOutput{}, nil
	}
	all, err := s.deps.Tasks.GetAllTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("reading tasks: %s", err)), listUnscheduledOutput{}, nil
	}

	today := s.deps.Today()
	queue := core.UnscheduledTasks(all, core.QueueFilter{
		Priority:  models.Priority(input.Priority),
		VentureID: input.Venture,
		Search:    input.Search,
	}, today)

	out := listUnscheduledOutput{
		Tasks: make([]taskOutput, len(queue)),
		Count: len(queue),
	}
	for i, t := range queue {
		out.Tasks[i] = taskToOutput(t, today)
	}
	return nil, out, nil
}

func (s *Server) handleScheduleTasks(_ context.Context, _ *gomcp.CallToolRequest, input scheduleTasksInput) (*gomcp.CallToolResult, scheduleTasksOutput, error) {
	if len(input.TaskIDs) == 0 {
		return errorResult("task_ids is required"), scheduleTasksOutput{}, nil
	}
	date, err := models.ParseDate(input.Date)
	if err != nil || date.IsZero() {
		return errorResult(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", input.Date)), scheduleTasksOutput{}, nil
	}
	if s.deps.Catalog != nil && !s.deps.Catalog.IsValidSlot(input.Slot) {
		return errorResult(fmt.Sprintf("unknown slot %q", input.Slot)), scheduleTasksOutput{}, nil
	}

	result, err := s.deps.Scheduler.ScheduleTasks(input.TaskIDs, date, input.Slot)
	if err != nil {
		out := scheduleTasksOutput{}
		if result != nil {
			out.FailedIDs = result.FailedIDs
		}
		return errorResult(fmt.Sprintf("scheduling tasks: %s", err)), out, nil
	}

	out := scheduleTasksOutput{
		Scheduled: result.Count,
		Message:   fmt.Sprintf("scheduled %d task(s) into %s %s", result.Count, date, input.Slot),
	}
	return nil, out, nil
}

func (s *Server) handleUnscheduleTask(_ context.Context, _ *gomcp.CallToolRequest, input unscheduleTaskInput) (*gomcp.CallToolResult, unscheduleTaskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), unscheduleTaskOutput{}, nil
	}

	result, err := s.deps.Scheduler.UnscheduleTask(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("unscheduling task %s: %s", input.TaskID, err)), unscheduleTaskOutput{}, nil
	}

	msg := fmt.Sprintf("task %s returned to the queue", input.TaskID)
	if result.Count == 0 {
		msg = fmt.Sprintf("task %s was not scheduled", input.TaskID)
	}
	return nil, unscheduleTaskOutput{Message: msg}, nil
}

func (s *Server) handleDayPlan(_ context.Context, _ *gomcp.CallToolRequest, input dayPlanInput) (*gomcp.CallToolResult, dayPlanOutput, error) {
	date, errResult := s.resolveDate(input.Date)
	if errResult != nil {
		return errResult, dayPlanOutput{}, nil
	}

	if err := s.deps.Tasks.Load(); err != nil {
		return errorResult(fmt.Sprintf("loading tasks: %s", err)), dayPlanOutput{}, nil
	}
	all, err := s.deps.Tasks.GetAllTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("reading tasks: %s", err)), dayPlanOutput{}, nil
	}

	grid := core.BuildWeek(all, date, 1, s.deps.Catalog, s.deps.Thresholds)
	today := s.deps.Today()

	out := dayPlanOutput{Date: string(date)}
	for _, slot := range s.deps.Catalog.Slots() {
		cell := grid.Cell(date, slot.Key)
		sp := slotPlanOutput{
			Slot:          slot.Key,
			Label:         slot.Label,
			CapacityHours: slot.CapacityHours,
			UsedHours:     cell.Usage.UsedHours,
			Level:         string(cell.Status.Level),
		}
		for _, t := range cell.Tasks {
			sp.Tasks = append(sp.Tasks, taskToOutput(t, today))
		}
		out.Slots = append(out.Slots, sp)
	}
	usage := grid.DayUsage(date)
	out.TotalHours = usage.UsedHours
	out.TaskCount = usage.TaskCount

	return nil, out, nil
}

func (s *Server) handleWeekCapacity(_ context.Context, _ *gomcp.CallToolRequest, input weekCapacityInput) (*gomcp.CallToolResult, weekCapacityOutput, error) {
	start, errResult := s.resolveDate(input.Start)
	if errResult != nil {
		return errResult, weekCapacityOutput{}, nil
	}

	if err := s.deps.Tasks.Load(); err != nil {
		return errorResult(fmt.Sprintf("loading tasks: %s", err)), weekCapacityOutput{}, nil
	}
	all, err := s.deps.Tasks.GetAllTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("reading tasks: %s", err)), weekCapacityOutput{}, nil
	}

	grid := core.BuildWeek(all, start, 7, s.deps.Catalog, s.deps.Thresholds)

	out := weekCapacityOutput{Start: string(start), Days: 7}
	for _, d := range grid.Dates() {
		for _, slot := range s.deps.Catalog.Slots() {
			cell := grid.Cell(d, slot.Key)
			if cell.Usage.TaskCount == 0 {
				continue
			}
			out.Cells = append(out.Cells, weekCellOutput{
				Date:      string(d),
				Slot:      slot.Key,
				UsedHours: cell.Usage.UsedHours,
				TaskCount: cell.Usage.TaskCount,
				Level:     string(cell.Status.Level),
			})
		}
		out.TotalHours += grid.DayUsage(d).UsedHours
	}

	return nil, out, nil
}

// --- Helpers ---

// resolveDate parses an optional date input, defaulting to today.
func (s *Server) resolveDate(raw string) (models.Date, *gomcp.CallToolResult) {
	if raw == "" {
		return s.deps.Today(), nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return "", errorResult(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", raw))
	}
	return date, nil
}

func taskToOutput(t models.Task, today models.Date) taskOutput {
	out := taskOutput{
		ID:        t.ID,
		Title:     t.Title,
		Type:      string(t.Type),
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		EstEffort: t.EstEffort,
		DueDate:   string(t.DueDate),
		FocusDate: string(t.FocusDate),
		FocusSlot: t.FocusSlot,
		VentureID: t.VentureID,
	}
	if badge := core.Urgency(t.DueDate, today); badge != nil {
		out.Urgency = string(badge.Bucket)
	}
	return out
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
