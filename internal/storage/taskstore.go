// Package storage provides the file-backed persistence layer for Aura:
// YAML stores for tasks, ventures, and day records.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sayedbaharun/aura/pkg/models"
	"gopkg.in/yaml.v3"
)

// FocusChange sets or clears one task's focus assignment. A change with a
// zero FocusDate clears date, slot, and day reference together.
type FocusChange struct {
	TaskID    string
	FocusDate models.Date
	FocusSlot string
	DayID     string
}

// TaskPatch describes a partial task update. Zero-valued fields are left
// unchanged; pointer fields distinguish "clear" from "leave alone".
type TaskPatch struct {
	Title     string
	Type      models.TaskType
	Status    models.TaskStatus
	Priority  models.Priority
	EstEffort *float64
	DueDate   *models.Date
	VentureID string
	ProjectID string
}

// TaskFilter specifies criteria for filtering tasks. All specified fields
// use AND logic.
type TaskFilter struct {
	Status    []models.TaskStatus
	Priority  []models.Priority
	VentureID string
	Type      models.TaskType
	FocusDate models.Date
}

// TaskStore defines the interface for the task registry.
type TaskStore interface {
	AddTask(t models.Task) error
	UpdateTask(id string, patch TaskPatch) error
	RemoveTask(id string) error
	GetTask(id string) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	FilterTasks(filter TaskFilter) ([]models.Task, error)
	ApplyFocus(changes []FocusChange) error
	Load() error
	Save() error
}

// taskFile represents the top-level structure of tasks.yaml.
type taskFile struct {
	Version string                 `yaml:"version"`
	Tasks   map[string]models.Task `yaml:"tasks"`
}

type fileTaskStore struct {
	basePath string
	now      func() time.Time
	data     taskFile
}

// NewTaskStore creates a TaskStore backed by a tasks.yaml file in the
// given base directory.
func NewTaskStore(basePath string) TaskStore {
	return &fileTaskStore{
		basePath: basePath,
		now:      func() time.Time { return time.Now().UTC() },
		data: taskFile{
			Version: "1.0",
			Tasks:   make(map[string]models.Task),
		},
	}
}

func (s *fileTaskStore) filePath() string {
	return filepath.Join(s.basePath, "tasks.yaml")
}

func (s *fileTaskStore) AddTask(t models.Task) error {
	if t.ID == "" {
		return fmt.Errorf("adding task: ID must not be empty")
	}
	if _, exists := s.data.Tasks[t.ID]; exists {
		return fmt.Errorf("adding task: task %s already exists", t.ID)
	}
	// The two focus fields are set or cleared together; reject records
	// that would break the invariant at the door.
	if t.FocusDate.IsZero() != (t.FocusSlot == "") {
		return fmt.Errorf("adding task %s: focus date and slot must be set together", t.ID)
	}
	t.Status = models.NormalizeStatus(string(t.Status))
	if t.Created.IsZero() {
		t.Created = s.now()
	}
	t.Updated = s.now()
	s.data.Tasks[t.ID] = t
	return nil
}

func (s *fileTaskStore) UpdateTask(id string, patch TaskPatch) error {
	existing, exists := s.data.Tasks[id]
	if !exists {
		return &NotFoundError{Kind: "task", ID: id}
	}

	if patch.Title != "" {
		existing.Title = patch.Title
	}
	if patch.Type != "" {
		existing.Type = patch.Type
	}
	if patch.Status != "" {
		existing.Status = models.NormalizeStatus(string(patch.Status))
	}
	if patch.Priority != "" {
		existing.Priority = patch.Priority
	}
	if patch.EstEffort != nil {
		existing.EstEffort = *patch.EstEffort
	}
	if patch.DueDate != nil {
		existing.DueDate = *patch.DueDate
	}
	if patch.VentureID != "" {
		existing.VentureID = patch.VentureID
	}
	if patch.ProjectID != "" {
		existing.ProjectID = patch.ProjectID
	}
	existing.Updated = s.now()

	s.data.Tasks[id] = existing
	return nil
}

func (s *fileTaskStore) RemoveTask(id string) error {
	if _, exists := s.data.Tasks[id]; !exists {
		return &NotFoundError{Kind: "task", ID: id}
	}
	delete(s.data.Tasks, id)
	return nil
}

func (s *fileTaskStore) GetTask(id string) (*models.Task, error) {
	t, exists := s.data.Tasks[id]
	if !exists {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	return &t, nil
}

func (s *fileTaskStore) GetAllTasks() ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(s.data.Tasks))
	for _, t := range s.data.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (s *fileTaskStore) FilterTasks(filter TaskFilter) ([]models.Task, error) {
	all, err := s.GetAllTasks()
	if err != nil {
		return nil, err
	}

	var result []models.Task
	for _, t := range all {
		if matchesTaskFilter(t, filter) {
			result = append(result, t)
		}
	}
	return result, nil
}

func matchesTaskFilter(t models.Task, filter TaskFilter) bool {
	if len(filter.Status) > 0 && !containsStatus(filter.Status, t.Status) {
		return false
	}
	if len(filter.Priority) > 0 && !containsPriority(filter.Priority, t.Priority) {
		return false
	}
	if filter.VentureID != "" && t.VentureID != filter.VentureID {
		return false
	}
	if filter.Type != "" && t.Type != filter.Type {
		return false
	}
	if !filter.FocusDate.IsZero() && t.FocusDate != filter.FocusDate {
		return false
	}
	return true
}

func containsStatus(haystack []models.TaskStatus, needle models.TaskStatus) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsPriority(haystack []models.Priority, needle models.Priority) bool {
	for _, p := range haystack {
		if p == needle {
			return true
		}
	}
	return false
}

// ApplyFocus applies a batch of focus changes all-or-nothing: the batch is
// staged against a copy of the task map, persisted once, and the in-memory
// state is swapped only after the write succeeds. A failed batch leaves
// both the file and the in-memory state untouched.
func (s *fileTaskStore) ApplyFocus(changes []FocusChange) error {
	if len(changes) == 0 {
		return nil
	}

	// Reject the whole batch up front if any id is unknown.
	var missing []string
	for _, c := range changes {
		if _, ok := s.data.Tasks[c.TaskID]; !ok {
			missing = append(missing, c.TaskID)
		}
	}
	if len(missing) > 0 {
		return &BatchError{Op: "applying focus changes", FailedIDs: missing}
	}

	staged := make(map[string]models.Task, len(s.data.Tasks))
	for id, t := range s.data.Tasks {
		staged[id] = t
	}

	now := s.now()
	for _, c := range changes {
		t := staged[c.TaskID]
		if c.FocusDate.IsZero() {
			t.FocusDate = ""
			t.FocusSlot = ""
			t.DayID = ""
		} else {
			t.FocusDate = c.FocusDate
			t.FocusSlot = c.FocusSlot
			t.DayID = c.DayID
		}
		t.Updated = now
		staged[c.TaskID] = t
	}

	stagedFile := taskFile{Version: s.data.Version, Tasks: staged}
	if err := s.writeFile(stagedFile); err != nil {
		return fmt.Errorf("applying focus changes: %w", err)
	}

	s.data = stagedFile
	return nil
}

func (s *fileTaskStore) Load() error {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			s.data = taskFile{
				Version: "1.0",
				Tasks:   make(map[string]models.Task),
			}
			return nil
		}
		return fmt.Errorf("loading tasks: %w", err)
	}

	var tf taskFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("loading tasks: parsing YAML: %w", err)
	}
	if tf.Tasks == nil {
		tf.Tasks = make(map[string]models.Task)
	}

	// Older exports use "completed" where the canonical vocabulary says
	// "done"; normalize at the boundary so core logic sees one value.
	for id, t := range tf.Tasks {
		t.Status = models.NormalizeStatus(string(t.Status))
		tf.Tasks[id] = t
	}

	s.data = tf
	return nil
}

func (s *fileTaskStore) Save() error {
	if err := s.writeFile(s.data); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

func (s *fileTaskStore) writeFile(tf taskFile) error {
	if err := os.MkdirAll(s.basePath, 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	data, err := yaml.Marshal(&tf)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// NotFoundError reports a lookup for an id the store does not hold.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// BatchError reports a rejected batch along with the ids that caused the
// rejection. It satisfies the scheduler's BatchFailure interface so the
// failing tasks can be surfaced to the user.
type BatchError struct {
	Op        string
	FailedIDs []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: tasks not found: %s", e.Op, strings.Join(e.FailedIDs, ", "))
}

// FailedTaskIDs returns the ids of the task updates that failed.
func (e *BatchError) FailedTaskIDs() []string {
	return e.FailedIDs
}
