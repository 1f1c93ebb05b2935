package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/julianstephens/weeklit/internal/models"
)

const jsonStoreVersion = 1

// document is the on-disk shape of a JSONStore.
type document struct {
	Version  int                        `json:"version"`
	Settings models.Settings            `json:"settings"`
	Weeks    map[string]models.WeekData `json:"weeks"`
}

// JSONStore keeps every week in a single JSON file. It suits portable setups
// and tests; the SQLite store is the default.
var _ FileStore = (*JSONStore)(nil)

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Re-running init keeps existing data
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.doc = &document{
		Version:  jsonStoreVersion,
		Settings: models.DefaultSettings(),
		Weeks:    make(map[string]models.WeekData),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonStoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d", doc.Version, jsonStoreVersion)
	}
	if doc.Weeks == nil {
		doc.Weeks = make(map[string]models.WeekData)
	}
	models.ApplyDefaultSettings(&doc.Settings)

	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a temporary file and renames it over the store.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetWeek(weekID string) (models.WeekData, error) {
	if err := s.loaded(); err != nil {
		return models.WeekData{}, err
	}
	w, ok := s.doc.Weeks[weekID]
	if !ok {
		return models.WeekData{}, fmt.Errorf("%w: %s", ErrWeekNotFound, weekID)
	}
	return w.Clone(), nil
}

func (s *JSONStore) GetAllWeeks() ([]models.WeekData, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	weeks := make([]models.WeekData, 0, len(s.doc.Weeks))
	for _, w := range s.doc.Weeks {
		weeks = append(weeks, w.Clone())
	}
	sortWeeks(weeks)
	return weeks, nil
}

func (s *JSONStore) SaveWeek(w models.WeekData) error {
	return s.SaveWeeks([]models.WeekData{w})
}

// SaveWeeks upserts every week and writes the file once, so either all of
// them are persisted or none are.
func (s *JSONStore) SaveWeeks(weeks []models.WeekData) error {
	if err := s.loaded(); err != nil {
		return err
	}

	prev := make(map[string]models.WeekData, len(weeks))
	for _, w := range weeks {
		if w.WeekID == "" {
			return fmt.Errorf("cannot save week without an id")
		}
		if old, ok := s.doc.Weeks[w.WeekID]; ok {
			prev[w.WeekID] = old
		}
	}

	for _, w := range weeks {
		s.doc.Weeks[w.WeekID] = w.Clone()
	}
	if err := s.save(); err != nil {
		for _, w := range weeks {
			if old, ok := prev[w.WeekID]; ok {
				s.doc.Weeks[w.WeekID] = old
			} else {
				delete(s.doc.Weeks, w.WeekID)
			}
		}
		return err
	}
	return nil
}

func (s *JSONStore) FindWeeksOverlapping(dates []string) ([]models.WeekData, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var weeks []models.WeekData
	for _, w := range s.doc.Weeks {
		if Overlaps(w, dates) {
			weeks = append(weeks, w.Clone())
		}
	}
	sortWeeks(weeks)
	return weeks, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func sortWeeks(weeks []models.WeekData) {
	slices.SortFunc(weeks, func(a, b models.WeekData) int {
		return strings.Compare(a.WeekID, b.WeekID)
	})
}

func (s *JSONStore) FilePath() string {
	return s.path
}
