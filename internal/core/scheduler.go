package core

import (
	"errors"
	"fmt"

	"github.com/sayedbaharun/aura/pkg/models"
)

// DayIDFor derives the identifier of the day record owning a focus date.
// The derivation is a fixed convention shared with the persistence layer.
func DayIDFor(date models.Date) string {
	return "day_" + string(date)
}

// FocusChange sets or clears one task's focus assignment. A change with a
// zero FocusDate clears the assignment; otherwise all three fields are
// set together. The two focus fields never change independently.
type FocusChange struct {
	TaskID    string
	FocusDate models.Date
	FocusSlot string
	DayID     string
}

// ScheduleStore is the subset of storage.TaskStore the scheduler needs.
// Defining it here keeps core independent of the storage package.
type ScheduleStore interface {
	Load() error
	GetTask(id string) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	ApplyFocus(changes []FocusChange) error
}

// BatchFailure is implemented by store errors that can name which task
// updates failed. When the store cannot distinguish, the whole batch is
// reported as a generic failure.
type BatchFailure interface {
	FailedTaskIDs() []string
}

// EventLogger records scheduling events for observability. May be nil.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// ScheduleResult is the structured outcome the host renders as a toast.
// Count is the number of tasks the operation affected.
type ScheduleResult struct {
	OK        bool     `json:"ok"`
	Count     int      `json:"count"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}

// Scheduler binds tasks to (date, slot) cells through the store boundary.
// Batches commit all-or-nothing: a rejected batch leaves no task with a
// partially applied assignment.
type Scheduler struct {
	store  ScheduleStore
	events EventLogger
}

// NewScheduler creates a Scheduler. events may be nil to disable event
// logging.
func NewScheduler(store ScheduleStore, events EventLogger) *Scheduler {
	return &Scheduler{store: store, events: events}
}

// ScheduleTasks assigns every task in ids to the given (date, slot) cell.
// Validation failures are returned before any store call. On a store
// failure the returned result carries OK=false and the ids the store
// could identify as failing; no task in the batch is left partially
// scheduled. Duplicate ids are collapsed.
func (s *Scheduler) ScheduleTasks(ids []string, date models.Date, slot string) (*ScheduleResult, error) {
	if len(ids) == 0 {
		return nil, &ValidationError{Reason: "no tasks selected"}
	}
	if date.IsZero() {
		return nil, &ValidationError{Reason: "date is required"}
	}
	if slot == "" {
		return nil, &ValidationError{Reason: "slot is required"}
	}

	if err := s.store.Load(); err != nil {
		return nil, fmt.Errorf("scheduling tasks: %w", err)
	}

	seen := make(map[string]struct{}, len(ids))
	changes := make([]FocusChange, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, err := s.store.GetTask(id); err != nil {
			return nil, &NotFoundError{Kind: "task", ID: id}
		}
		changes = append(changes, FocusChange{
			TaskID:    id,
			FocusDate: date,
			FocusSlot: slot,
			DayID:     DayIDFor(date),
		})
	}

	if err := s.store.ApplyFocus(changes); err != nil {
		perr := &PersistenceError{Op: "scheduling tasks", FailedIDs: failedIDs(err), Err: err}
		return &ScheduleResult{OK: false, FailedIDs: perr.FailedIDs}, perr
	}

	s.logEvent("schedule.batch", map[string]any{
		"count": len(changes),
		"date":  string(date),
		"slot":  slot,
	})

	return &ScheduleResult{OK: true, Count: len(changes)}, nil
}

// UnscheduleTask clears a task's focus date and slot together. Calling it
// on an already unscheduled task is a no-op success.
func (s *Scheduler) UnscheduleTask(id string) (*ScheduleResult, error) {
	if err := s.store.Load(); err != nil {
		return nil, fmt.Errorf("unscheduling task %s: %w", id, err)
	}

	task, err := s.store.GetTask(id)
	if err != nil {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	if !task.Scheduled() {
		return &ScheduleResult{OK: true, Count: 0}, nil
	}

	if err := s.store.ApplyFocus([]FocusChange{{TaskID: id}}); err != nil {
		perr := &PersistenceError{Op: "unscheduling task " + id, FailedIDs: failedIDs(err), Err: err}
		return &ScheduleResult{OK: false, FailedIDs: perr.FailedIDs}, perr
	}

	s.logEvent("task.unscheduled", map[string]any{"task_id": id})

	return &ScheduleResult{OK: true, Count: 1}, nil
}

// ClearSlot unschedules every task currently in the (date, slot) cell.
func (s *Scheduler) ClearSlot(date models.Date, slot string) (*ScheduleResult, error) {
	if date.IsZero() {
		return nil, &ValidationError{Reason: "date is required"}
	}
	if slot == "" {
		return nil, &ValidationError{Reason: "slot is required"}
	}

	if err := s.store.Load(); err != nil {
		return nil, fmt.Errorf("clearing slot %s %s: %w", date, slot, err)
	}

	all, err := s.store.GetAllTasks()
	if err != nil {
		return nil, fmt.Errorf("clearing slot %s %s: %w", date, slot, err)
	}

	var changes []FocusChange
	for _, t := range all {
		if t.FocusDate == date && t.FocusSlot == slot {
			changes = append(changes, FocusChange{TaskID: t.ID})
		}
	}
	if len(changes) == 0 {
		return &ScheduleResult{OK: true, Count: 0}, nil
	}

	if err := s.store.ApplyFocus(changes); err != nil {
		perr := &PersistenceError{Op: fmt.Sprintf("clearing slot %s %s", date, slot), FailedIDs: failedIDs(err), Err: err}
		return &ScheduleResult{OK: false, FailedIDs: perr.FailedIDs}, perr
	}

	s.logEvent("slot.cleared", map[string]any{
		"count": len(changes),
		"date":  string(date),
		"slot":  slot,
	})

	return &ScheduleResult{OK: true, Count: len(changes)}, nil
}

func (s *Scheduler) logEvent(eventType string, data map[string]any) {
	if s.events == nil {
		return
	}
	_ = s.events.LogEvent(eventType, data) // Non-fatal: scheduling already committed.
}

// failedIDs extracts per-task failure ids from a store error, if the
// store can distinguish them.
func failedIDs(err error) []string {
	var bf BatchFailure
	if errors.As(err, &bf) {
		return bf.FailedTaskIDs()
	}
	return nil
}
