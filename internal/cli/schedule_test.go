package cli

import (
	"strings"
	"testing"

	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/internal/storage"
	"github.com/sayedbaharun/aura/pkg/models"
)

const cliToday = models.Date("2026-08-24")

// schedStoreAdapter bridges the task store to the scheduler's store
// interface, mirroring the wiring in app.go.
type schedStoreAdapter struct {
	store storage.TaskStore
}

func (a *schedStoreAdapter) Load() error                             { return a.store.Load() }
func (a *schedStoreAdapter) GetTask(id string) (*models.Task, error) { return a.store.GetTask(id) }
func (a *schedStoreAdapter) GetAllTasks() ([]models.Task, error)     { return a.store.GetAllTasks() }
func (a *schedStoreAdapter) ApplyFocus(changes []core.FocusChange) error {
	sc := make([]storage.FocusChange, len(changes))
	for i, c := range changes {
		sc[i] = storage.FocusChange{
			TaskID:    c.TaskID,
			FocusDate: c.FocusDate,
			FocusSlot: c.FocusSlot,
			DayID:     c.DayID,
		}
	}
	return a.store.ApplyFocus(sc)
}

// setupPlanner swaps the planner service vars for a real temp-dir store
// seeded with the given tasks, restoring the originals on cleanup.
func setupPlanner(t *testing.T, tasks ...models.Task) storage.TaskStore {
	t.Helper()

	origTasks := Tasks
	origScheduler := Scheduler
	origCatalog := Catalog
	origThresholds := CapThresholds
	origToday := Today
	t.Cleanup(func() {
		Tasks = origTasks
		Scheduler = origScheduler
		Catalog = origCatalog
		CapThresholds = origThresholds
		Today = origToday
	})

	store := storage.NewTaskStore(t.TempDir())
	for _, task := range tasks {
		if err := store.AddTask(task); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}
	if err := store.Save(); err != nil {
		t.Fatalf("saving store: %v", err)
	}

	Tasks = store
	Scheduler = core.NewScheduler(&schedStoreAdapter{store: store}, nil)
	Catalog = core.NewCatalog()
	CapThresholds = core.DefaultThresholds()
	Today = func() models.Date { return cliToday }
	return store
}

func todoTask(id string) models.Task {
	return models.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   models.StatusTodo,
		Priority: models.P2,
	}
}

func setScheduleFlags(t *testing.T, date, slot string) {
	t.Helper()
	origDate, origSlot := scheduleDate, scheduleSlot
	t.Cleanup(func() {
		scheduleDate = origDate
		scheduleSlot = origSlot
	})
	scheduleDate = date
	scheduleSlot = slot
}

func TestScheduleCmd_NilScheduler(t *testing.T) {
	orig := Scheduler
	defer func() { Scheduler = orig }()
	Scheduler = nil

	err := scheduleCmd.RunE(scheduleCmd, []string{"T-001"})
	if err == nil {
		t.Fatal("expected error when Scheduler is nil")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScheduleCmd_UnknownSlot(t *testing.T) {
	setupPlanner(t, todoTask("T-001"))
	setScheduleFlags(t, "2026-08-24", "midnight_snack")

	err := scheduleCmd.RunE(scheduleCmd, []string{"T-001"})
	if err == nil {
		t.Fatal("expected error for unknown slot")
	}
	if !strings.Contains(err.Error(), "unknown slot") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScheduleCmd_BadDate(t *testing.T) {
	setupPlanner(t, todoTask("T-001"))
	setScheduleFlags(t, "24/08/2026", "morning")

	err := scheduleCmd.RunE(scheduleCmd, []string{"T-001"})
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !strings.Contains(err.Error(), "parsing --date") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScheduleCmd_Success(t *testing.T) {
	store := setupPlanner(t, todoTask("T-001"), todoTask("T-002"))
	setScheduleFlags(t, "2026-08-24", "morning")

	err := scheduleCmd.RunE(scheduleCmd, []string{"T-001", "T-002"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"T-001", "T-002"} {
		task, err := store.GetTask(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.FocusDate != "2026-08-24" || task.FocusSlot != "morning" {
			t.Errorf("task %s not scheduled: %+v", id, task)
		}
		if task.DayID != "day_2026-08-24" {
			t.Errorf("task %s missing day reference: %q", id, task.DayID)
		}
	}
}

func TestScheduleCmd_DefaultsToToday(t *testing.T) {
	store := setupPlanner(t, todoTask("T-001"))
	setScheduleFlags(t, "", "evening")

	err := scheduleCmd.RunE(scheduleCmd, []string{"T-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task, _ := store.GetTask("T-001")
	if task.FocusDate != cliToday {
		t.Errorf("expected focus on %s, got %s", cliToday, task.FocusDate)
	}
}

func TestScheduleCmd_UnknownTaskRejectsBatch(t *testing.T) {
	store := setupPlanner(t, todoTask("T-001"))
	setScheduleFlags(t, "2026-08-24", "morning")

	err := scheduleCmd.RunE(scheduleCmd, []string{"T-001", "T-404"})
	if err == nil {
		t.Fatal("expected error for unknown task in batch")
	}
	if !strings.Contains(err.Error(), "T-404") {
		t.Errorf("expected failing id in error, got: %v", err)
	}

	// The whole batch is rejected; the known task stays unscheduled.
	task, _ := store.GetTask("T-001")
	if task.FocusDate != "" {
		t.Errorf("rejected batch left a partial assignment: %+v", task)
	}
}

func TestUnscheduleCmd(t *testing.T) {
	scheduled := todoTask("T-001")
	scheduled.FocusDate = cliToday
	scheduled.FocusSlot = "morning"
	scheduled.DayID = "day_2026-08-24"
	store := setupPlanner(t, scheduled)

	err := unscheduleCmd.RunE(unscheduleCmd, []string{"T-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task, _ := store.GetTask("T-001")
	if task.FocusDate != "" || task.FocusSlot != "" || task.DayID != "" {
		t.Errorf("expected focus cleared, got %+v", task)
	}
}

func TestUnscheduleCmd_NotScheduledIsNoOp(t *testing.T) {
	setupPlanner(t, todoTask("T-001"))

	if err := unscheduleCmd.RunE(unscheduleCmd, []string{"T-001"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnscheduleCmd_UnknownTask(t *testing.T) {
	setupPlanner(t)

	err := unscheduleCmd.RunE(unscheduleCmd, []string{"T-404"})
	if err == nil {
		t.Fatal("expected error for unknown task")
	}
}

func TestClearSlotCmd(t *testing.T) {
	a := todoTask("T-001")
	a.FocusDate = cliToday
	a.FocusSlot = "morning"
	a.DayID = "day_2026-08-24"
	b := todoTask("T-002")
	b.FocusDate = cliToday
	b.FocusSlot = "evening"
	b.DayID = "day_2026-08-24"
	store := setupPlanner(t, a, b)

	origDate, origSlot := clearSlotDate, clearSlotSlot
	defer func() {
		clearSlotDate = origDate
		clearSlotSlot = origSlot
	}()
	clearSlotDate = "2026-08-24"
	clearSlotSlot = "morning"

	if err := clearSlotCmd.RunE(clearSlotCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cleared, _ := store.GetTask("T-001")
	if cleared.FocusSlot != "" {
		t.Errorf("expected T-001 cleared, got %+v", cleared)
	}
	untouched, _ := store.GetTask("T-002")
	if untouched.FocusSlot != "evening" {
		t.Errorf("expected T-002 untouched, got %+v", untouched)
	}
}

func TestResolveDate(t *testing.T) {
	origToday := Today
	defer func() { Today = origToday }()
	Today = func() models.Date { return cliToday }

	tests := []struct {
		name    string
		flag    string
		want    models.Date
		wantErr bool
	}{
		{name: "empty defaults to today", flag: "", want: cliToday},
		{name: "today keyword", flag: "today", want: cliToday},
		{name: "tomorrow keyword", flag: "tomorrow", want: "2026-08-25"},
		{name: "explicit date", flag: "2026-09-01", want: "2026-09-01"},
		{name: "malformed date", flag: "not-a-date", wantErr: true},
		{name: "wrong format", flag: "24/08/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDate(tt.flag)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.flag)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveDate(%q) = %s, want %s", tt.flag, got, tt.want)
			}
		})
	}
}
