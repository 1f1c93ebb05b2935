// Package transfer runs export, import and week-opening against a store.
package transfer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/weeklit/internal/analyzer"
	"github.com/julianstephens/weeklit/internal/backup"
	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/logger"
	"github.com/julianstephens/weeklit/internal/markdown"
	"github.com/julianstephens/weeklit/internal/merge"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/pdf"
	"github.com/julianstephens/weeklit/internal/storage"
	"github.com/julianstephens/weeklit/internal/utils"
	"github.com/julianstephens/weeklit/internal/week"
)

var (
	ErrNotMarkdown     = errors.New("import file must be a .md file")
	ErrNothingToExport = errors.New("no weeks to export")
	ErrUnknownFormat   = errors.New("unknown export format")
)

const (
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// Snapshotter saves a copy of the store before an import is applied.
type Snapshotter interface {
	CreateBackup() (string, error)
}

type Service struct {
	Store    storage.Provider
	Exporter *markdown.Exporter
	Renderer *pdf.Renderer
	// Backups is nil for stores that are not a local file.
	Backups Snapshotter
	Now     func() time.Time
}

// NewService wires a service to store. File-backed stores get automatic
// backups before imports; PostgreSQL stores do not.
func NewService(store storage.Provider) *Service {
	s := &Service{
		Store:    store,
		Exporter: markdown.NewExporter(),
		Renderer: pdf.NewRenderer(),
		Now:      time.Now,
	}
	if fs, ok := store.(storage.FileStore); ok {
		s.Backups = backup.NewManager(fs.FilePath())
	}
	return s
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartDay returns the configured first day of the week.
func (s *Service) StartDay() (time.Weekday, error) {
	settings, err := s.Store.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := utils.ValidateWeekStartDay(settings.WeekStartDay); err != nil {
		return 0, err
	}
	return time.Weekday(settings.WeekStartDay), nil
}

// Clock returns the service clock expressed in the configured timezone, so
// calendar dates derived from it match what the user sees as today.
func (s *Service) Clock() (func() time.Time, error) {
	settings, err := s.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return func() time.Time { return s.now().In(loc) }, nil
}

// OpenWeek returns the stored week containing date. When none is stored it
// builds one from the entries of overlapping weeks and saves it.
func (s *Service) OpenWeek(date time.Time) (models.WeekData, error) {
	startDay, err := s.StartDay()
	if err != nil {
		return models.WeekData{}, err
	}

	id := utils.WeekID(utils.WeekStart(date, startDay))
	w, err := s.Store.GetWeek(id)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, storage.ErrWeekNotFound) {
		return models.WeekData{}, fmt.Errorf("failed to load week %s: %w", id, err)
	}

	overlapping, err := s.Store.FindWeeksOverlapping(week.DatesForWeek(date, startDay))
	if err != nil {
		return models.WeekData{}, fmt.Errorf("failed to find overlapping weeks: %w", err)
	}
	w = week.ReconstructFromOverlapping(date, startDay, s.now(), overlapping)
	if err := s.Store.SaveWeek(w); err != nil {
		return models.WeekData{}, fmt.Errorf("failed to save week %s: %w", id, err)
	}
	logger.Debug("Created week", "weekId", id, "overlapping", len(overlapping))
	return w, nil
}

// UpdateWeek validates and stores w.
func (s *Service) UpdateWeek(w models.WeekData) error {
	if err := week.Validate(w); err != nil {
		return err
	}
	return s.Store.SaveWeek(w)
}

// WeeksWithContent lists non-empty stored weeks, newest first.
func (s *Service) WeeksWithContent() ([]analyzer.WeekSummary, error) {
	weeks, err := s.Store.GetAllWeeks()
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks: %w", err)
	}
	return analyzer.WeeksWithContent(weeks), nil
}

// ExportRequest selects weeks and the output format.
type ExportRequest struct {
	WeekIDs []string
	Format  string
	PDF     pdf.Options
}

// Export is a rendered document and its suggested filename.
type Export struct {
	Filename string
	Content  []byte
	Weeks    []models.WeekData
}

// Export renders the requested weeks. Empty WeekIDs exports every week with
// content.
func (s *Service) Export(req ExportRequest) (Export, error) {
	weeks, err := s.selectWeeks(req.WeekIDs)
	if err != nil {
		return Export{}, err
	}
	if len(weeks) == 0 {
		return Export{}, ErrNothingToExport
	}

	switch strings.ToLower(req.Format) {
	case "", FormatMarkdown:
		var content string
		if len(weeks) == 1 {
			content, err = s.Exporter.ExportWeek(weeks[0])
		} else {
			content, err = s.Exporter.ExportWeeks(weeks)
		}
		if err != nil {
			return Export{}, fmt.Errorf("failed to export markdown: %w", err)
		}
		return Export{Filename: markdown.Filename(weeks), Content: []byte(content), Weeks: weeks}, nil
	case FormatPDF:
		opts := req.PDF
		opts.WeekIDs = nil
		content, err := s.Renderer.Render(weeks, opts)
		if err != nil {
			return Export{}, err
		}
		name := strings.TrimSuffix(markdown.Filename(weeks), constants.MarkdownExtension) + ".pdf"
		return Export{Filename: name, Content: content, Weeks: weeks}, nil
	default:
		return Export{}, fmt.Errorf("%w: %s", ErrUnknownFormat, req.Format)
	}
}

func (s *Service) selectWeeks(ids []string) ([]models.WeekData, error) {
	if len(ids) == 0 {
		all, err := s.Store.GetAllWeeks()
		if err != nil {
			return nil, fmt.Errorf("failed to load weeks: %w", err)
		}
		var out []models.WeekData
		for _, w := range all {
			if analyzer.HasContent(w) {
				out = append(out, w)
			}
		}
		return out, nil
	}

	out := make([]models.WeekData, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		w, err := s.Store.GetWeek(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load week %s: %w", id, err)
		}
		out = append(out, w)
	}
	return out, nil
}

// Preview is a parsed import awaiting confirmation.
type Preview struct {
	Source    string
	Weeks     []models.WeekData
	Summaries []analyzer.WeekSummary
	Conflicts []analyzer.ConflictInfo
	Metadata  markdown.Metadata
}

// Preview parses an import file and reports which weeks collide with stored
// weeks that have content. Nothing is written.
func (s *Service) Preview(name, content string) (Preview, error) {
	if !strings.EqualFold(filepath.Ext(name), constants.MarkdownExtension) {
		return Preview{}, fmt.Errorf("%w: %s", ErrNotMarkdown, filepath.Base(name))
	}
	startDay, err := s.StartDay()
	if err != nil {
		return Preview{}, err
	}

	clock, err := s.Clock()
	if err != nil {
		return Preview{}, err
	}

	res, err := markdown.ParseImportFile(content, markdown.ParseOptions{StartDay: startDay, Now: clock})
	if err != nil {
		return Preview{}, err
	}

	var existing []models.WeekData
	for _, w := range res.Weeks {
		stored, err := s.Store.GetWeek(w.WeekID)
		if errors.Is(err, storage.ErrWeekNotFound) {
			continue
		}
		if err != nil {
			return Preview{}, fmt.Errorf("failed to load week %s: %w", w.WeekID, err)
		}
		existing = append(existing, stored)
	}

	summaries := make([]analyzer.WeekSummary, len(res.Weeks))
	for i, w := range res.Weeks {
		summaries[i] = analyzer.Summarize(w)
	}

	return Preview{
		Source:    name,
		Weeks:     res.Weeks,
		Summaries: summaries,
		Conflicts: analyzer.DetectConflicts(res.Weeks, existing),
		Metadata:  res.Metadata,
	}, nil
}

// PreviewFile reads path and previews it.
func (s *Service) PreviewFile(path string) (Preview, error) {
	if !strings.EqualFold(filepath.Ext(path), constants.MarkdownExtension) {
		return Preview{}, fmt.Errorf("%w: %s", ErrNotMarkdown, filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Preview{}, fmt.Errorf("failed to read import file: %w", err)
	}
	return s.Preview(path, string(data))
}

// ApplyResult reports what an import changed.
type ApplyResult struct {
	Merged   []string
	Inserted []string
	Backup   string
}

// Apply stores every previewed week, merging into stored weeks with the same
// id. The store is snapshotted first and all weeks are saved together.
func (s *Service) Apply(p Preview) (ApplyResult, error) {
	var res ApplyResult
	if len(p.Weeks) == 0 {
		return res, markdown.ErrNoWeekData
	}

	if s.Backups != nil {
		path, err := s.Backups.CreateBackup()
		if err != nil {
			return res, fmt.Errorf("failed to back up before import: %w", err)
		}
		res.Backup = path
	}

	now := s.now()
	byID := map[string]int{}
	var out []models.WeekData
	for _, imported := range p.Weeks {
		if i, ok := byID[imported.WeekID]; ok {
			out[i] = merge.MergeWeekAt(out[i], imported, now)
			continue
		}

		stored, err := s.Store.GetWeek(imported.WeekID)
		switch {
		case err == nil:
			out = append(out, merge.MergeWeekAt(stored, imported, now))
			res.Merged = append(res.Merged, imported.WeekID)
		case errors.Is(err, storage.ErrWeekNotFound):
			out = append(out, imported.Clone())
			res.Inserted = append(res.Inserted, imported.WeekID)
		default:
			return res, fmt.Errorf("failed to load week %s: %w", imported.WeekID, err)
		}
		byID[imported.WeekID] = len(out) - 1
	}

	if err := s.Store.SaveWeeks(out); err != nil {
		return res, fmt.Errorf("failed to save imported weeks: %w", err)
	}
	logger.Info("Import applied", "source", p.Source, "merged", len(res.Merged), "inserted", len(res.Inserted))
	return res, nil
}
