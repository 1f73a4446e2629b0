package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sayedbaharun/aura/pkg/models"
)

func newTestTaskStore(t *testing.T) *fileTaskStore {
	t.Helper()
	return NewTaskStore(t.TempDir()).(*fileTaskStore)
}

func sampleTask(id string) models.Task {
	return models.Task{
		ID:       id,
		Title:    "Test task " + id,
		Status:   models.StatusTodo,
		Priority: models.P2,
		Type:     models.TypeDeepWork,
	}
}

func TestAddTask(t *testing.T) {
	store := newTestTaskStore(t)
	task := sampleTask("T-001")

	if err := store.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetTask("T-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != task.Title {
		t.Fatalf("expected title %q, got %q", task.Title, got.Title)
	}
	if got.Created.IsZero() || got.Updated.IsZero() {
		t.Error("expected timestamps stamped on add")
	}
}

func TestAddTask_EmptyID(t *testing.T) {
	store := newTestTaskStore(t)
	if err := store.AddTask(models.Task{Title: "no id"}); err == nil {
		t.Fatal("expected error for empty ID")
	}
}

func TestAddTask_DuplicateID(t *testing.T) {
	store := newTestTaskStore(t)
	task := sampleTask("T-001")

	if err := store.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.AddTask(task); err == nil {
		t.Fatal("expected error for duplicate ID")
	}
}

func TestAddTask_RejectsLopsidedFocus(t *testing.T) {
	store := newTestTaskStore(t)

	task := sampleTask("T-001")
	task.FocusDate = "2026-08-24"
	// FocusSlot deliberately left empty.
	if err := store.AddTask(task); err == nil {
		t.Fatal("expected error for focus date without slot")
	}

	task = sampleTask("T-002")
	task.FocusSlot = "morning"
	if err := store.AddTask(task); err == nil {
		t.Fatal("expected error for focus slot without date")
	}
}

func TestUpdateTask(t *testing.T) {
	store := newTestTaskStore(t)
	if err := store.AddTask(sampleTask("T-001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	effort := 2.5
	due := models.Date("2026-09-01")
	err := store.UpdateTask("T-001", TaskPatch{
		Title:     "Updated title",
		Status:    models.StatusInProgress,
		EstEffort: &effort,
		DueDate:   &due,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.GetTask("T-001")
	if got.Title != "Updated title" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if got.Status != models.StatusInProgress {
		t.Errorf("expected status in_progress, got %q", got.Status)
	}
	if got.EstEffort != 2.5 {
		t.Errorf("expected effort 2.5, got %g", got.EstEffort)
	}
	if got.DueDate != due {
		t.Errorf("expected due date %s, got %s", due, got.DueDate)
	}
	// Fields not in the patch should be preserved.
	if got.Priority != models.P2 {
		t.Errorf("expected priority preserved, got %q", got.Priority)
	}
}

func TestUpdateTask_NormalizesStatus(t *testing.T) {
	store := newTestTaskStore(t)
	if err := store.AddTask(sampleTask("T-001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.UpdateTask("T-001", TaskPatch{Status: "completed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := store.GetTask("T-001")
	if got.Status != models.StatusDone {
		t.Errorf(`expected "completed" normalized to done, got %q`, got.Status)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	store := newTestTaskStore(t)
	err := store.UpdateTask("T-404", TaskPatch{Title: "nope"})
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFilterTasks(t *testing.T) {
	store := newTestTaskStore(t)
	a := sampleTask("T-001")
	a.VentureID = "v1"
	b := sampleTask("T-002")
	b.Status = models.StatusDone
	b.Priority = models.P0
	c := sampleTask("T-003")
	c.Type = models.TypeErrand
	for _, task := range []models.Task{a, b, c} {
		if err := store.AddTask(task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := store.FilterTasks(TaskFilter{Status: []models.TaskStatus{models.StatusDone}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "T-002" {
		t.Errorf("expected only T-002, got %v", got)
	}

	got, _ = store.FilterTasks(TaskFilter{VentureID: "v1"})
	if len(got) != 1 || got[0].ID != "T-001" {
		t.Errorf("expected only T-001, got %v", got)
	}

	got, _ = store.FilterTasks(TaskFilter{Type: models.TypeErrand})
	if len(got) != 1 || got[0].ID != "T-003" {
		t.Errorf("expected only T-003, got %v", got)
	}
}

func TestApplyFocus(t *testing.T) {
	store := newTestTaskStore(t)
	for _, id := range []string{"T-001", "T-002"} {
		if err := store.AddTask(sampleTask(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	changes := []FocusChange{
		{TaskID: "T-001", FocusDate: "2026-08-24", FocusSlot: "morning", DayID: "day_2026-08-24"},
		{TaskID: "T-002", FocusDate: "2026-08-24", FocusSlot: "morning", DayID: "day_2026-08-24"},
	}
	if err := store.ApplyFocus(changes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"T-001", "T-002"} {
		got, _ := store.GetTask(id)
		if got.FocusDate != "2026-08-24" || got.FocusSlot != "morning" || got.DayID != "day_2026-08-24" {
			t.Errorf("%s: focus not applied: %+v", id, got)
		}
	}

	// The batch is persisted: a fresh store over the same directory
	// sees the assignments.
	fresh := NewTaskStore(store.basePath)
	if err := fresh.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fresh.GetTask("T-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FocusDate != "2026-08-24" {
		t.Error("expected focus change persisted to disk")
	}
}

func TestApplyFocus_Clear(t *testing.T) {
	store := newTestTaskStore(t)
	task := sampleTask("T-001")
	task.FocusDate = "2026-08-24"
	task.FocusSlot = "morning"
	task.DayID = "day_2026-08-24"
	if err := store.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.ApplyFocus([]FocusChange{{TaskID: "T-001"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.GetTask("T-001")
	if got.FocusDate != "" || got.FocusSlot != "" || got.DayID != "" {
		t.Errorf("expected all focus fields cleared together, got %+v", got)
	}
}

func TestApplyFocus_UnknownIDRejectsWholeBatch(t *testing.T) {
	store := newTestTaskStore(t)
	if err := store.AddTask(sampleTask("T-001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changes := []FocusChange{
		{TaskID: "T-001", FocusDate: "2026-08-24", FocusSlot: "morning", DayID: "day_2026-08-24"},
		{TaskID: "T-404", FocusDate: "2026-08-24", FocusSlot: "morning", DayID: "day_2026-08-24"},
	}
	err := store.ApplyFocus(changes)

	var berr *BatchError
	if !errors.As(err, &berr) {
		t.Fatalf("expected BatchError, got %v", err)
	}
	if len(berr.FailedTaskIDs()) != 1 || berr.FailedTaskIDs()[0] != "T-404" {
		t.Errorf("expected T-404 named as failing, got %v", berr.FailedTaskIDs())
	}

	// The valid half of the batch must not have been applied.
	got, _ := store.GetTask("T-001")
	if got.FocusDate != "" || got.FocusSlot != "" {
		t.Errorf("rejected batch left a partial assignment: %+v", got)
	}
}

func TestLoadNormalizesLegacyStatuses(t *testing.T) {
	dir := t.TempDir()
	content := `
version: "1.0"
tasks:
  T-001:
    id: T-001
    title: Legacy export
    status: completed
  T-002:
    id: T-002
    title: Another legacy export
    status: canceled
`
	if err := os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	store := NewTaskStore(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetTask("T-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusDone {
		t.Errorf(`expected "completed" normalized to done, got %q`, got.Status)
	}

	got, _ = store.GetTask("T-002")
	if got.Status != models.StatusCancelled {
		t.Errorf(`expected "canceled" normalized to cancelled, got %q`, got.Status)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewTaskStore(t.TempDir())
	if err := store.Load(); err != nil {
		t.Fatalf("missing file should load as empty store, got %v", err)
	}
	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty store, got %d tasks", len(tasks))
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	store := NewTaskStore(dir)
	if err := store.AddTask(sampleTask("T-001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh := NewTaskStore(dir)
	if err := fresh.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fresh.GetTask("T-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Test task T-001" {
		t.Errorf("expected round-tripped task, got %+v", got)
	}
}
