package observability

import (
	"fmt"
	"sort"
	"time"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/pkg/models"
)

// AlertSeverity represents the urgency of an alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Alert represents a triggered alert condition.
type Alert struct {
	ID          string        `json:"id"`
	Condition   string        `json:"condition"`
	Severity    AlertSeverity `json:"severity"`
	Message     string        `json:"message"`
	TriggeredAt time.Time     `json:"triggered_at"`
}

// AlertThresholds configures when alerts should fire.
type AlertThresholds struct {
	MaxQueueSize    int `yaml:"max_queue_size" json:"max_queue_size"`
	OverdueMaxCount int `yaml:"overdue_max_count" json:"overdue_max_count"`
}

// DefaultAlertThresholds returns sensible defaults for alert thresholds.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		MaxQueueSize:    15,
		OverdueMaxCount: 3,
	}
}

// AlertEngine evaluates alert conditions against a snapshot of the task
// registry.
type AlertEngine interface {
	Evaluate(tasks []models.Task) ([]Alert, error)
}

// alertEngine implements AlertEngine by checking the task snapshot against
// the configured thresholds and slot capacities.
type alertEngine struct {
	catalog    *core.Catalog
	capacity   core.Thresholds
	thresholds AlertThresholds
	today      func() models.Date
	now        func() time.Time
}

// NewAlertEngine creates an AlertEngine with the given slot catalog,
// capacity thresholds, and alert thresholds. today supplies the reference
// date for overdue checks.
func NewAlertEngine(catalog *core.Catalog, capacity core.Thresholds, thresholds AlertThresholds, today func() models.Date) AlertEngine {
	return &alertEngine{
		catalog:    catalog,
		capacity:   capacity,
		thresholds: thresholds,
		today:      today,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Evaluate checks all alert conditions against the given task snapshot and
// returns any triggered alerts.
func (ae *alertEngine) Evaluate(tasks []models.Task) ([]Alert, error) {
	now := ae.now()
	today := ae.today()

	var alerts []Alert
	alerts = append(alerts, ae.checkOverdueBacklog(tasks, today, now)...)
	alerts = append(alerts, ae.checkQueueSize(tasks, today, now)...)
	alerts = append(alerts, ae.checkOverbookedSlots(tasks, today, now)...)
	return alerts, nil
}

// checkOverdueBacklog counts open tasks whose due date has passed and
// alerts when the pile exceeds the threshold.
func (ae *alertEngine) checkOverdueBacklog(tasks []models.Task, today models.Date, now time.Time) []Alert {
	overdue := 0
	for _, t := range tasks {
		if t.Status.Terminal() || t.DueDate.IsZero() {
			continue
		}
		if t.DueDate < today {
			overdue++
		}
	}

	if overdue <= ae.thresholds.OverdueMaxCount {
		return nil
	}
	return []Alert{{
		ID:          "overdue-backlog",
		Condition:   "overdue_backlog",
		Severity:    SeverityHigh,
		Message:     fmt.Sprintf("%d open tasks are past their due date, exceeding the maximum of %d", overdue, ae.thresholds.OverdueMaxCount),
		TriggeredAt: now,
	}}
}

// checkQueueSize counts open unscheduled tasks and alerts when the queue
// grows past the threshold.
func (ae *alertEngine) checkQueueSize(tasks []models.Task, today models.Date, now time.Time) []Alert {
	queued := len(core.UnscheduledTasks(tasks, core.QueueFilter{}, today))
	if queued <= ae.thresholds.MaxQueueSize {
		return nil
	}
	return []Alert{{
		ID:          "queue-size",
		Condition:   "queue_too_large",
		Severity:    SeverityLow,
		Message:     fmt.Sprintf("the unscheduled queue holds %d tasks, exceeding the maximum of %d", queued, ae.thresholds.MaxQueueSize),
		TriggeredAt: now,
	}}
}

// checkOverbookedSlots groups scheduled tasks by (date, slot) cell and
// alerts on every cell booked past its capacity. Finished and cancelled
// work no longer occupies capacity.
func (ae *alertEngine) checkOverbookedSlots(tasks []models.Task, today models.Date, now time.Time) []Alert {
	type cellKey struct {
		date models.Date
		slot string
	}
	cells := make(map[cellKey][]models.Task)
	for _, t := range tasks {
		if !t.Scheduled() || t.Status == models.StatusCancelled {
			continue
		}
		if t.FocusDate < today {
			continue
		}
		key := cellKey{date: t.FocusDate, slot: t.FocusSlot}
		cells[key] = append(cells[key], t)
	}

	var alerts []Alert
	for key, cellTasks := range cells {
		usage := core.CellUsage(cellTasks)
		status := core.CapacityStatus(usage.UsedHours, ae.catalog.CapacityHours(key.slot), ae.capacity)
		if status.Level != core.LevelOver {
			continue
		}
		alerts = append(alerts, Alert{
			ID:          fmt.Sprintf("overbooked-%s-%s", key.date, key.slot),
			Condition:   "slot_overbooked",
			Severity:    SeverityMedium,
			Message:     fmt.Sprintf("slot %s on %s is booked for %.1fh against a capacity of %.1fh", key.slot, key.date, usage.UsedHours, ae.catalog.CapacityHours(key.slot)),
			TriggeredAt: now,
		})
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })
	return alerts
}
