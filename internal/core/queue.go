package core

import (
	"sort"
	"strings"

	"github.com/sayedbaharun/aura/pkg/models"
)

// QueueFilter narrows the unscheduled-task queue. All specified fields use
// AND logic; zero values mean "no constraint".
type QueueFilter struct {
	Priority  models.Priority
	VentureID string
	Type      models.TaskType
	Search    string // case-insensitive title substring
}

// UnscheduledTasks returns the tasks eligible for scheduling, ordered by
// due-date urgency then priority. Eligible means: no focus date yet and a
// non-terminal status. The input slice is never mutated; the result is a
// fresh slice and the function is safe to call repeatedly over the same
// snapshot.
func UnscheduledTasks(all []models.Task, filter QueueFilter, today models.Date) []models.Task {
	search := strings.ToLower(filter.Search)

	var out []models.Task
	for _, t := range all {
		if t.Scheduled() || t.Status.Terminal() {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.VentureID != "" && t.VentureID != filter.VentureID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessUrgent(out[i], out[j], today)
	})
	return out
}

// lessUrgent orders task a before task b when a needs attention sooner.
// Due-dated tasks come before undated ones; among dated tasks the soonest
// (or most overdue) due date wins, with priority as the tiebreaker.
// Undated tasks order by priority alone.
func lessUrgent(a, b models.Task, today models.Date) bool {
	aDated, bDated := !a.DueDate.IsZero(), !b.DueDate.IsZero()
	switch {
	case aDated && !bDated:
		return true
	case !aDated && bDated:
		return false
	case aDated && bDated:
		da := models.DaysBetween(today, a.DueDate)
		db := models.DaysBetween(today, b.DueDate)
		if da != db {
			return da < db
		}
	}
	return a.Priority.Rank() < b.Priority.Rank()
}
