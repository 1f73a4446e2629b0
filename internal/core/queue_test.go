package core

import (
	"testing"

	"github.com/sayedbaharun/aura/pkg/models"
)

const queueToday = models.Date("2026-08-24")

func TestUnscheduledTasksOrdering(t *testing.T) {
	// A due tomorrow at P2, B undated at P0, C two days overdue at P1,
	// D due tomorrow at P0. Expected: overdue first, then the two
	// tomorrow tasks by priority, undated last.
	tasks := []models.Task{
		{ID: "A", Title: "a", Status: models.StatusTodo, Priority: models.P2, DueDate: queueToday.AddDays(1)},
		{ID: "B", Title: "b", Status: models.StatusTodo, Priority: models.P0},
		{ID: "C", Title: "c", Status: models.StatusTodo, Priority: models.P1, DueDate: queueToday.AddDays(-2)},
		{ID: "D", Title: "d", Status: models.StatusTodo, Priority: models.P0, DueDate: queueToday.AddDays(1)},
	}

	got := UnscheduledTasks(tasks, QueueFilter{}, queueToday)

	want := []string{"C", "D", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestUnscheduledTasksEligibility(t *testing.T) {
	tasks := []models.Task{
		{ID: "open", Status: models.StatusTodo},
		{ID: "working", Status: models.StatusInProgress},
		{ID: "paused", Status: models.StatusOnHold},
		{ID: "finished", Status: models.StatusDone},
		{ID: "dropped", Status: models.StatusCancelled},
		{ID: "already-placed", Status: models.StatusTodo, FocusDate: queueToday, FocusSlot: "morning"},
	}

	got := UnscheduledTasks(tasks, QueueFilter{}, queueToday)

	ids := make(map[string]bool, len(got))
	for _, task := range got {
		ids[task.ID] = true
	}

	for _, want := range []string{"open", "working", "paused"} {
		if !ids[want] {
			t.Errorf("expected %s in queue", want)
		}
	}
	for _, reject := range []string{"finished", "dropped", "already-placed"} {
		if ids[reject] {
			t.Errorf("%s must not be eligible for scheduling", reject)
		}
	}
}

func TestUnscheduledTasksFilters(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Write weekly review", Status: models.StatusTodo, Priority: models.P1, VentureID: "v1", Type: models.TypeDeepWork},
		{ID: "2", Title: "Book dentist", Status: models.StatusTodo, Priority: models.P2, VentureID: "v2", Type: models.TypeErrand},
		{ID: "3", Title: "Review pull requests", Status: models.StatusTodo, Priority: models.P1, VentureID: "v1", Type: models.TypeAdmin},
	}

	tests := []struct {
		name   string
		filter QueueFilter
		want   []string
	}{
		{name: "no filter", filter: QueueFilter{}, want: []string{"1", "3", "2"}},
		{name: "by priority", filter: QueueFilter{Priority: models.P1}, want: []string{"1", "3"}},
		{name: "by venture", filter: QueueFilter{VentureID: "v2"}, want: []string{"2"}},
		{name: "by type", filter: QueueFilter{Type: models.TypeAdmin}, want: []string{"3"}},
		{name: "search is case-insensitive", filter: QueueFilter{Search: "REVIEW"}, want: []string{"1", "3"}},
		{name: "combined", filter: QueueFilter{Priority: models.P1, Search: "pull"}, want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnscheduledTasks(tasks, tt.filter, queueToday)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tasks, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestUnscheduledTasksDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "z", Status: models.StatusTodo, Priority: models.P3},
		{ID: "a", Status: models.StatusTodo, Priority: models.P0},
	}

	first := UnscheduledTasks(tasks, QueueFilter{}, queueToday)
	second := UnscheduledTasks(tasks, QueueFilter{}, queueToday)

	if tasks[0].ID != "z" || tasks[1].ID != "a" {
		t.Error("input snapshot must not be reordered")
	}
	if len(first) != 2 || len(second) != 2 || first[0].ID != second[0].ID {
		t.Error("repeated calls over the same snapshot must agree")
	}
}
