package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sayedbaharun/aura/pkg/models"
	"gopkg.in/yaml.v3"
)

// VentureStore defines the interface for the read-mostly venture registry.
type VentureStore interface {
	AddVenture(v models.Venture) error
	GetVenture(id string) (*models.Venture, error)
	GetAllVentures() ([]models.Venture, error)
	Load() error
	Save() error
}

// ventureFile represents the top-level structure of ventures.yaml.
type ventureFile struct {
	Version  string                    `yaml:"version"`
	Ventures map[string]models.Venture `yaml:"ventures"`
}

type fileVentureStore struct {
	basePath string
	data     ventureFile
}

// NewVentureStore creates a VentureStore backed by a ventures.yaml file in
// the given base directory.
func NewVentureStore(basePath string) VentureStore {
	return &fileVentureStore{
		basePath: basePath,
		data: ventureFile{
			Version:  "1.0",
			Ventures: make(map[string]models.Venture),
		},
	}
}

func (s *fileVentureStore) filePath() string {
	return filepath.Join(s.basePath, "ventures.yaml")
}

func (s *fileVentureStore) AddVenture(v models.Venture) error {
	if v.ID == "" {
		return fmt.Errorf("adding venture: ID must not be empty")
	}
	if _, exists := s.data.Ventures[v.ID]; exists {
		return fmt.Errorf("adding venture: venture %s already exists", v.ID)
	}
	s.data.Ventures[v.ID] = v
	return nil
}

func (s *fileVentureStore) GetVenture(id string) (*models.Venture, error) {
	v, exists := s.data.Ventures[id]
	if !exists {
		return nil, &NotFoundError{Kind: "venture", ID: id}
	}
	return &v, nil
}

func (s *fileVentureStore) GetAllVentures() ([]models.Venture, error) {
	ventures := make([]models.Venture, 0, len(s.data.Ventures))
	for _, v := range s.data.Ventures {
		ventures = append(ventures, v)
	}
	sort.Slice(ventures, func(i, j int) bool {
		return ventures[i].Name < ventures[j].Name
	})
	return ventures, nil
}

func (s *fileVentureStore) Load() error {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			s.data = ventureFile{
				Version:  "1.0",
				Ventures: make(map[string]models.Venture),
			}
			return nil
		}
		return fmt.Errorf("loading ventures: %w", err)
	}

	var vf ventureFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return fmt.Errorf("loading ventures: parsing YAML: %w", err)
	}
	if vf.Ventures == nil {
		vf.Ventures = make(map[string]models.Venture)
	}
	s.data = vf
	return nil
}

func (s *fileVentureStore) Save() error {
	if err := os.MkdirAll(s.basePath, 0o750); err != nil {
		return fmt.Errorf("saving ventures: creating directory: %w", err)
	}
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("saving ventures: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving ventures: writing file: %w", err)
	}
	return nil
}
