// Package week holds the pure transformations applied to a models.WeekData.
// Every function returns a new value and leaves its input untouched.
package week

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
)

var (
	ErrDayNotFound        = errors.New("day not found in week")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrFieldListNotFound  = errors.New("field list not found")
	ErrEmptyText          = errors.New("text cannot be empty")
	ErrMultilineText      = errors.New("text must fit on a single line")
	ErrReservedTitle      = errors.New("title is reserved")
	ErrInvalidColor       = errors.New("invalid entry color")
	ErrInvalidRelatedDay  = errors.New("related day is not part of the week")
	ErrMalformedWeek      = errors.New("malformed week")
	errUnexpectedDayCount = fmt.Errorf("%w: week must have exactly 7 days", ErrMalformedWeek)
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

// NewEmptyWeek builds the empty week containing date for the given week start
// day, stamped with now.
func NewEmptyWeek(date time.Time, startDay time.Weekday, now time.Time) models.WeekData {
	start := utils.WeekStart(date, startDay)
	dates := utils.DatesFrom(start)
	days := make([]models.Day, len(dates))
	for i, d := range dates {
		days[i] = models.Day{
			Date:      utils.FormatDate(d),
			DayOfWeek: d.Weekday().String(),
			Entries:   []models.Entry{},
		}
	}

	ts := utils.Timestamp(now)
	return models.WeekData{
		WeekID:     utils.WeekID(start),
		StartDate:  utils.FormatDate(dates[0]),
		EndDate:    utils.FormatDate(dates[6]),
		Days:       days,
		FieldLists: []models.FieldList{},
		Metadata: models.WeekMetadata{
			CreatedAt:    ts,
			LastModified: ts,
		},
	}
}

// Validate checks the structural invariants of a week.
func Validate(w models.WeekData) error {
	if len(w.Days) != 7 {
		return errUnexpectedDayCount
	}
	if w.Days[0].Date != w.StartDate {
		return fmt.Errorf("%w: first day %s does not match start date %s", ErrMalformedWeek, w.Days[0].Date, w.StartDate)
	}
	if w.Days[6].Date != w.EndDate {
		return fmt.Errorf("%w: last day %s does not match end date %s", ErrMalformedWeek, w.Days[6].Date, w.EndDate)
	}
	prev, err := utils.ParseDate(w.Days[0].Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedWeek, err)
	}
	for _, d := range w.Days[1:] {
		cur, err := utils.ParseDate(d.Date)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedWeek, err)
		}
		if utils.FormatDate(prev.AddDate(0, 0, 1)) != d.Date {
			return fmt.Errorf("%w: days are not consecutive at %s", ErrMalformedWeek, d.Date)
		}
		prev = cur
	}
	for _, fl := range w.FieldLists {
		if fl.RelatedDay != nil && w.DayIndex(*fl.RelatedDay) < 0 {
			return fmt.Errorf("%w: field list %q references %s", ErrInvalidRelatedDay, fl.Title, *fl.RelatedDay)
		}
	}
	return nil
}

// touch refreshes lastModified on an already cloned week.
func touch(w *models.WeekData) {
	w.Metadata.LastModified = utils.Timestamp(nowFunc())
}

// cleanText trims text and rejects values a Markdown line cannot hold.
func cleanText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if strings.ContainsAny(text, "\r\n") {
		return "", ErrMultilineText
	}
	return text, nil
}

// cleanTitle is cleanText for list titles. The day entries header is not
// available as a title since it would read back as the day's own entries.
func cleanTitle(title string) (string, error) {
	title, err := cleanText(title)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(title, constants.DailyEntriesTitle) {
		return "", fmt.Errorf("%w: %q", ErrReservedTitle, title)
	}
	return title, nil
}

func newEntry(text string) (models.Entry, error) {
	text, err := cleanText(text)
	if err != nil {
		return models.Entry{}, err
	}
	return models.Entry{
		ID:    utils.NewID(),
		Text:  text,
		Color: models.ColorNone,
	}, nil
}
