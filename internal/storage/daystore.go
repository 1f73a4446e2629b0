package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sayedbaharun/aura/pkg/models"
	"gopkg.in/yaml.v3"
)

// DayStore defines the interface for per-date journal records. Records
// are keyed by the derived day id ("day_" + ISO date), the same id that
// scheduled tasks back-reference.
type DayStore interface {
	GetDay(id string) (*models.Day, error)
	GetDayByDate(date models.Date) (*models.Day, error)
	GetAllDays() ([]models.Day, error)
	SetMorningIntention(date models.Date, text string) (*models.Day, error)
	SetEveningReview(date models.Date, text string) (*models.Day, error)
	Load() error
	Save() error
}

// dayFile represents the top-level structure of days.yaml.
type dayFile struct {
	Version string                `yaml:"version"`
	Days    map[string]models.Day `yaml:"days"`
}

type fileDayStore struct {
	basePath string
	now      func() time.Time
	data     dayFile
}

// NewDayStore creates a DayStore backed by a days.yaml file in the given
// base directory.
func NewDayStore(basePath string) DayStore {
	return &fileDayStore{
		basePath: basePath,
		now:      func() time.Time { return time.Now().UTC() },
		data: dayFile{
			Version: "1.0",
			Days:    make(map[string]models.Day),
		},
	}
}

func (s *fileDayStore) filePath() string {
	return filepath.Join(s.basePath, "days.yaml")
}

// dayIDFor mirrors the scheduler's derivation so the store can be used
// without importing core.
func dayIDFor(date models.Date) string {
	return "day_" + string(date)
}

func (s *fileDayStore) GetDay(id string) (*models.Day, error) {
	d, exists := s.data.Days[id]
	if !exists {
		return nil, &NotFoundError{Kind: "day", ID: id}
	}
	return &d, nil
}

func (s *fileDayStore) GetDayByDate(date models.Date) (*models.Day, error) {
	return s.GetDay(dayIDFor(date))
}

func (s *fileDayStore) GetAllDays() ([]models.Day, error) {
	days := make([]models.Day, 0, len(s.data.Days))
	for _, d := range s.data.Days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days, nil
}

// upsert fetches or creates the record for a date and applies mutate.
func (s *fileDayStore) upsert(date models.Date, mutate func(*models.Day)) (*models.Day, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("updating day record: date is required")
	}
	id := dayIDFor(date)
	d, exists := s.data.Days[id]
	if !exists {
		d = models.Day{ID: id, Date: date}
	}
	mutate(&d)
	d.Updated = s.now()
	s.data.Days[id] = d
	return &d, nil
}

func (s *fileDayStore) SetMorningIntention(date models.Date, text string) (*models.Day, error) {
	return s.upsert(date, func(d *models.Day) { d.MorningIntention = text })
}

func (s *fileDayStore) SetEveningReview(date models.Date, text string) (*models.Day, error) {
	return s.upsert(date, func(d *models.Day) { d.EveningReview = text })
}

func (s *fileDayStore) Load() error {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			s.data = dayFile{
				Version: "1.0",
				Days:    make(map[string]models.Day),
			}
			return nil
		}
		return fmt.Errorf("loading days: %w", err)
	}

	var df dayFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return fmt.Errorf("loading days: parsing YAML: %w", err)
	}
	if df.Days == nil {
		df.Days = make(map[string]models.Day)
	}
	s.data = df
	return nil
}

func (s *fileDayStore) Save() error {
	if err := os.MkdirAll(s.basePath, 0o750); err != nil {
		return fmt.Errorf("saving days: creating directory: %w", err)
	}
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("saving days: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving days: writing file: %w", err)
	}
	return nil
}
