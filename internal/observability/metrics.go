package observability

import (
	"fmt"
	"time"
)

// Metrics holds calculated metrics derived from the event log.
type Metrics struct {
	TasksCreated     int            `json:"tasks_created"`
	TasksCompleted   int            `json:"tasks_completed"`
	TasksScheduled   int            `json:"tasks_scheduled"`
	TasksUnscheduled int            `json:"tasks_unscheduled"`
	ScheduleBatches  int            `json:"schedule_batches"`
	SlotsCleared     int            `json:"slots_cleared"`
	ScheduledBySlot  map[string]int `json:"scheduled_by_slot"`
	EventCount       int            `json:"event_count"`
	OldestEvent      *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent      *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator that reads from the
// given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into
// metrics. Batch events carry the number of tasks they touched in their
// "count" field.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		ScheduledBySlot: make(map[string]int),
	}

	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case "task.created":
			m.TasksCreated++
		case "task.completed":
			m.TasksCompleted++
		case "schedule.batch":
			m.ScheduleBatches++
			n := eventCount(event)
			m.TasksScheduled += n
			if slot, ok := event.Data["slot"].(string); ok {
				m.ScheduledBySlot[slot] += n
			}
		case "task.unscheduled":
			m.TasksUnscheduled++
		case "slot.cleared":
			m.SlotsCleared++
			m.TasksUnscheduled += eventCount(event)
		}
	}

	return m, nil
}

// eventCount reads the "count" field of a batch event. JSON decoding turns
// numbers into float64.
func eventCount(event Event) int {
	switch v := event.Data["count"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
