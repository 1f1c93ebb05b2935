package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/storage"
	"github.com/julianstephens/weeklit/internal/transfer"
	"github.com/julianstephens/weeklit/internal/utils"
)

var ErrNoBackups = errors.New("backups are only available for file-based storage")

type Context struct {
	Store   storage.Provider
	Service *transfer.Service
	Out     io.Writer
	Now     func() time.Time
}

func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:   store,
		Service: transfer.NewService(store),
		Out:     os.Stdout,
		Now:     time.Now,
	}
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// Today returns the current date in the configured timezone.
func (c *Context) Today() (time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	// Week math runs on local calendar dates.
	y, m, d := now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

// ResolveDate parses YYYY-MM-DD, or returns today for an empty string.
func (c *Context) ResolveDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return c.Today()
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// OpenWeek opens the week containing the date given as YYYY-MM-DD (or today).
func (c *Context) OpenWeek(date string) (models.WeekData, error) {
	d, err := c.ResolveDate(date)
	if err != nil {
		return models.WeekData{}, err
	}
	return c.Service.OpenWeek(d)
}

// ParseWeekStart accepts a weekday name, abbreviation or number. Only
// Sunday, Monday and Saturday are allowed.
func ParseWeekStart(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	names := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"sat": 6, "saturday": 6,
	}
	day, ok := names[s]
	if !ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid week start day: %s", s)
		}
		day = n
	}
	if err := utils.ValidateWeekStartDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

// ResolveEntry finds an entry by 1-based position or by id prefix.
func ResolveEntry(entries []models.Entry, ref string) (models.Entry, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(entries) {
			return models.Entry{}, fmt.Errorf("entry %d out of range (1-%d)", n, len(entries))
		}
		return entries[n-1], nil
	}
	var found []models.Entry
	for _, e := range entries {
		if strings.HasPrefix(e.ID, ref) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return models.Entry{}, fmt.Errorf("no entry matches %q", ref)
	case 1:
		return found[0], nil
	default:
		return models.Entry{}, fmt.Errorf("%q matches %d entries, use a longer id", ref, len(found))
	}
}

// ResolveFieldList finds a list by 1-based position, exact title or id prefix.
func ResolveFieldList(lists []models.FieldList, ref string) (models.FieldList, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(lists) {
			return models.FieldList{}, fmt.Errorf("list %d out of range (1-%d)", n, len(lists))
		}
		return lists[n-1], nil
	}
	for _, fl := range lists {
		if strings.EqualFold(strings.TrimSpace(fl.Title), strings.TrimSpace(ref)) {
			return fl, nil
		}
	}
	var found []models.FieldList
	for _, fl := range lists {
		if strings.HasPrefix(fl.ID, ref) {
			found = append(found, fl)
		}
	}
	if len(found) == 1 {
		return found[0], nil
	}
	if len(found) > 1 {
		return models.FieldList{}, fmt.Errorf("%q matches %d lists, use a longer id", ref, len(found))
	}
	return models.FieldList{}, fmt.Errorf("no list matches %q", ref)
}
