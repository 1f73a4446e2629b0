package models

import "time"

// TaskType classifies the kind of work a task involves.
type TaskType string

const (
	TypeDeepWork TaskType = "deep_work"
	TypeAdmin    TaskType = "admin"
	TypeHabit    TaskType = "habit"
	TypeErrand   TaskType = "errand"
)

// TaskStatus represents the current lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusOnHold     TaskStatus = "on_hold"
	StatusCancelled  TaskStatus = "cancelled"
)

// NormalizeStatus maps raw status strings from older data files onto the
// canonical vocabulary. "completed" is an alias for "done" that some
// exports still use.
func NormalizeStatus(raw string) TaskStatus {
	switch raw {
	case "completed", "complete":
		return StatusDone
	case "canceled":
		return StatusCancelled
	case "":
		return StatusTodo
	}
	return TaskStatus(raw)
}

// Terminal reports whether the task is finished or abandoned. Terminal
// tasks are never eligible for scheduling.
func (s TaskStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// Priority represents the urgency level of a task. P0 is the most urgent.
type Priority string

const (
	P0 Priority = "P0"
	P1 Priority = "P1"
	P2 Priority = "P2"
	P3 Priority = "P3"
)

// Rank returns the sort weight of a priority. P0 ranks first; an unset
// priority ranks after P3.
func (p Priority) Rank() int {
	switch p {
	case P0:
		return 0
	case P1:
		return 1
	case P2:
		return 2
	case P3:
		return 3
	}
	return 4
}

// Task represents a single unit of work. A task is scheduled when it has
// been assigned a focus date and focus slot; the two fields are always set
// or cleared together.
type Task struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Type      TaskType   `yaml:"type,omitempty"`
	Status    TaskStatus `yaml:"status"`
	Priority  Priority   `yaml:"priority,omitempty"`
	EstEffort float64    `yaml:"est_effort,omitempty"`
	DueDate   Date       `yaml:"due_date,omitempty"`
	FocusDate Date       `yaml:"focus_date,omitempty"`
	FocusSlot string     `yaml:"focus_slot,omitempty"`
	DayID     string     `yaml:"day_id,omitempty"`
	VentureID string     `yaml:"venture_id,omitempty"`
	ProjectID string     `yaml:"project_id,omitempty"`
	Created   time.Time  `yaml:"created"`
	Updated   time.Time  `yaml:"updated"`
}

// Scheduled reports whether the task occupies a (date, slot) cell.
func (t *Task) Scheduled() bool {
	return !t.FocusDate.IsZero()
}
