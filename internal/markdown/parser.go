package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/logger"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

// ErrNoWeekData is returned when a file yields no importable week.
var ErrNoWeekData = errors.New("no valid week data found")

const (
	weekHeaderPrefix = "# Week of "
	dayHeaderPrefix  = "## "
	listHeaderPrefix = "### "
	weekLevelMarker  = "Week-Level"
	metadataPrefix   = "<!-- METADATA"
)

var entryPattern = regexp.MustCompile(`^-\s+\[([ x])\]\s+(.+)$`)

// ParseOptions configures the fallback used when a section has no metadata.
type ParseOptions struct {
	// StartDay is the configured week start, used only to compute the current
	// week for files without metadata.
	StartDay time.Weekday
	// Now supplies the current time; nil means time.Now.
	Now func() time.Time
}

func (o ParseOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Result is the outcome of parsing an import file.
type Result struct {
	Weeks    []models.WeekData
	Metadata Metadata
}

// ParseImportFile parses an exported Markdown file into weeks. Malformed
// fragments are skipped. A file that yields no weeks, or whose parsing fails
// unexpectedly, returns ErrNoWeekData.
func ParseImportFile(content string, opts ParseOptions) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Parsing import file failed", "panic", r)
			res, err = Result{}, ErrNoWeekData
		}
	}()

	content = strings.ReplaceAll(content, "\r\n", "\n")

	meta, metaErr := ExtractMetadata(content)
	if metaErr != nil {
		logger.Warn("Ignoring malformed metadata", "error", metaErr)
	}
	res.Metadata = meta

	if meta.Kind == MultiWeek {
		sections := splitSections(content)
		n := min(len(sections), len(meta.Multi.Weeks))
		if len(sections) != len(meta.Multi.Weeks) {
			logger.Warn("Section count does not match metadata",
				"sections", len(sections), "weeks", len(meta.Multi.Weeks), "using", n)
		}
		for i := 0; i < n; i++ {
			ref := meta.Multi.Weeks[i]
			res.Weeks = append(res.Weeks, parseSection(sections[i], &ref, meta.Multi.ExportDate, opts))
		}
	} else {
		var ref *WeekRef
		var exportDate string
		if meta.Kind == SingleWeek {
			exportDate = meta.Single.ExportDate
			if meta.Single.WeekID != "" {
				r := meta.Single.WeekRef
				ref = &r
			}
		}
		res.Weeks = append(res.Weeks, parseSection(content, ref, exportDate, opts))
	}

	if len(res.Weeks) == 0 {
		return res, ErrNoWeekData
	}
	logger.Debug("Parsed import file", "weeks", len(res.Weeks), "metadata", meta.Kind)
	return res, nil
}

// splitSections cuts content before every line that starts a week header,
// keeping the header with its section. Text before the first header is dropped.
func splitSections(content string) []string {
	var sections []string
	var cur strings.Builder
	flush := func() {
		s := strings.TrimSpace(cur.String())
		if strings.HasPrefix(s, strings.TrimSpace(weekHeaderPrefix)) {
			sections = append(sections, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, weekHeaderPrefix) {
			flush()
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
	}
	flush()
	return sections
}

// skeleton builds the empty week a section is parsed into.
func skeleton(ref *WeekRef, exportDate string, opts ParseOptions) models.WeekData {
	now := opts.now()
	ts := utils.Timestamp(now)

	var (
		weekID, startDate, endDate string
		start                      time.Time
	)
	if ref != nil {
		parsed, err := utils.ParseDate(ref.StartDate)
		if err == nil {
			weekID, startDate, endDate, start = ref.WeekID, ref.StartDate, ref.EndDate, parsed
		} else {
			logger.Warn("Ignoring section metadata with invalid start date", "weekId", ref.WeekID, "startDate", ref.StartDate)
			ref = nil
		}
	}
	if ref == nil {
		start = utils.WeekStart(now, opts.StartDay)
		weekID = utils.WeekID(start)
		startDate = utils.FormatDate(start)
		endDate = utils.FormatDate(start.AddDate(0, 0, 6))
		logger.Debug("No section metadata, using current week", "weekId", weekID)
	}

	days := make([]models.Day, 7)
	for i, d := range utils.DatesFrom(start) {
		days[i] = models.Day{
			Date:      utils.FormatDate(d),
			DayOfWeek: d.Weekday().String(),
			Entries:   []models.Entry{},
		}
	}

	createdAt := exportDate
	if createdAt == "" {
		createdAt = ts
	}

	return models.WeekData{
		WeekID:     weekID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		FieldLists: []models.FieldList{},
		Metadata: models.WeekMetadata{
			CreatedAt:    createdAt,
			LastModified: ts,
		},
	}
}

type sectionKind int

const (
	noSection sectionKind = iota
	daySection
	weekLevelSection
)

// sectionParser walks the lines of one week section.
type sectionParser struct {
	week           models.WeekData
	section        sectionKind
	dayIndex       int
	list           int // index into week.FieldLists, -1 when none
	inDailyEntries bool
}

func parseSection(content string, ref *WeekRef, exportDate string, opts ParseOptions) models.WeekData {
	p := &sectionParser{
		week:     skeleton(ref, exportDate, opts),
		dayIndex: -1,
		list:     -1,
	}
	for n, line := range strings.Split(content, "\n") {
		p.line(n+1, strings.TrimSpace(line))
	}
	return p.week
}

func (p *sectionParser) line(n int, line string) {
	switch {
	case line == "", strings.HasPrefix(line, strings.TrimSpace(weekHeaderPrefix)), strings.HasPrefix(line, metadataPrefix):
		return

	case strings.HasPrefix(line, dayHeaderPrefix) && !strings.Contains(line, weekLevelMarker):
		p.section = daySection
		p.dayIndex++
		if p.dayIndex > 6 {
			logger.Debug("Extra day header clamped to last day", "line", n)
			p.dayIndex = 6
		}
		p.list = -1
		p.inDailyEntries = false

	case strings.HasPrefix(line, dayHeaderPrefix+weekLevelMarker):
		p.section = weekLevelSection
		p.dayIndex = -1
		p.list = -1
		p.inDailyEntries = false

	case strings.HasPrefix(line, listHeaderPrefix):
		title := strings.TrimPrefix(line, listHeaderPrefix)
		if title == constants.DailyEntriesTitle {
			p.inDailyEntries = true
			p.list = -1
			return
		}
		p.inDailyEntries = false
		fl := models.FieldList{
			ID:      utils.NewID(),
			Title:   title,
			Entries: []models.Entry{},
		}
		if p.section == daySection && p.dayIndex >= 0 {
			fl.RelatedDay = models.StringPtr(p.week.Days[p.dayIndex].Date)
		}
		p.week.FieldLists = append(p.week.FieldLists, fl)
		p.list = len(p.week.FieldLists) - 1

	default:
		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			logger.Debug("Skipping unrecognized line", "line", n, "text", line)
			return
		}
		entry := models.Entry{
			ID:        utils.NewID(),
			Text:      m[2],
			Completed: m[1] == "x",
			Color:     models.ColorNone,
		}
		switch {
		case p.inDailyEntries && p.dayIndex >= 0:
			p.week.Days[p.dayIndex].Entries = append(p.week.Days[p.dayIndex].Entries, entry)
		case p.list >= 0:
			p.week.FieldLists[p.list].Entries = append(p.week.FieldLists[p.list].Entries, entry)
		default:
			logger.Debug("Skipping entry outside any list", "line", n, "text", fmt.Sprintf("%.40s", line))
		}
	}
}
