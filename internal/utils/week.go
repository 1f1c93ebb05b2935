package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/weeklit/internal/constants"
)

// ValidWeekStartDays are the week start days a user may pick during setup.
var ValidWeekStartDays = []time.Weekday{time.Sunday, time.Monday, time.Saturday}

// ValidateWeekStartDay returns an error unless day is Sunday (0), Monday (1) or Saturday (6).
func ValidateWeekStartDay(day int) error {
	for _, d := range ValidWeekStartDays {
		if int(d) == day {
			return nil
		}
	}
	return fmt.Errorf("invalid week start day %d: must be 0 (Sunday), 1 (Monday) or 6 (Saturday)", day)
}

// ISOWeekID returns the ISO-8601 week identifier (YYYY-WNN) of date. The year is
// the ISO week-numbering year, which differs from the calendar year around January 1st.
func ISOWeekID(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekID returns the storage key of the week starting at start. The key is the
// ISO week of the fourth day, which is the ISO week of start itself for Monday
// starts and the ISO week holding most of the days otherwise.
func WeekID(start time.Time) string {
	return ISOWeekID(start.AddDate(0, 0, 3))
}

// StartOfDay truncates t to local midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart rewinds date to the most recent (or same) day whose weekday is startDay,
// at midnight.
func WeekStart(date time.Time, startDay time.Weekday) time.Time {
	day := StartOfDay(date)
	diff := (int(day.Weekday()) - int(startDay) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// WeekEnd returns the last instant of the week containing date.
func WeekEnd(date time.Time, startDay time.Weekday) time.Time {
	start := WeekStart(date, startDay)
	y, m, d := start.AddDate(0, 0, 6).Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), start.Location())
}

// WeekDates returns the seven calendar days of the week containing date.
func WeekDates(date time.Time, startDay time.Weekday) []time.Time {
	return DatesFrom(WeekStart(date, startDay))
}

// DatesFrom returns seven consecutive days beginning at start.
func DatesFrom(start time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// FormatDate renders the local calendar date of t as YYYY-MM-DD. It never converts
// to UTC first, so a date parsed with ParseDate always formats back to itself.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses YYYY-MM-DD as local midnight.
func ParseDate(s string) (time.Time, error) {
	return ParseDateInLocation(s, time.Local)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// WeekDayNames returns the seven weekday names beginning with startDay.
func WeekDayNames(startDay time.Weekday) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(startDay) + i) % 7).String()
	}
	return names
}

// FormatWeekRange renders a week header range, e.g. "January 5-11, 2026" or
// "December 29 - January 4, 2026". The year is taken from end.
func FormatWeekRange(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d-%d, %d", start.Month(), start.Day(), end.Day(), end.Year())
	}
	return fmt.Sprintf("%s %d - %s %d, %d", start.Month(), start.Day(), end.Month(), end.Day(), end.Year())
}

// FormatDayHeading renders a day as "<Month> <day>", e.g. "January 5".
func FormatDayHeading(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Day())
}
