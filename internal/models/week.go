package models

import "slices"

// Color is the highlight applied to an entry.
type Color string

const (
	ColorNone   Color = "none"
	ColorYellow Color = "yellow"
	ColorCyan   Color = "cyan"
	ColorPink   Color = "pink"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// Colors lists every valid entry color in display order.
var Colors = []Color{ColorNone, ColorYellow, ColorCyan, ColorPink, ColorGreen, ColorPurple, ColorOrange}

// Valid reports whether c is a known color. The empty string counts as none.
func (c Color) Valid() bool {
	return c == "" || slices.Contains(Colors, c)
}

type Entry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Color     Color  `json:"color,omitempty"`
}

type Day struct {
	Date      string  `json:"date"`      // YYYY-MM-DD format
	DayOfWeek string  `json:"dayOfWeek"` // e.g. "Monday"
	Entries   []Entry `json:"entries"`
}

// FieldList is an auxiliary checklist. A nil RelatedDay scopes it to the whole week.
type FieldList struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	RelatedDay *string `json:"relatedDay"` // YYYY-MM-DD of one of the week's days, or null
	Entries    []Entry `json:"entries"`
}

// IsWeekLevel reports whether the list belongs to the week rather than a single day.
func (fl FieldList) IsWeekLevel() bool {
	return fl.RelatedDay == nil
}

// IsForDay reports whether the list is attached to the given date.
func (fl FieldList) IsForDay(date string) bool {
	return fl.RelatedDay != nil && *fl.RelatedDay == date
}

type WeekMetadata struct {
	CreatedAt    string `json:"createdAt"`    // ISO-8601 timestamp, immutable
	LastModified string `json:"lastModified"` // ISO-8601 timestamp
}

// WeekData is the unit of storage: seven days plus field lists, keyed by ISO week id.
type WeekData struct {
	WeekID     string       `json:"weekId"`    // YYYY-WNN
	StartDate  string       `json:"startDate"` // YYYY-MM-DD
	EndDate    string       `json:"endDate"`   // YYYY-MM-DD
	Days       []Day        `json:"days"`
	FieldLists []FieldList  `json:"fieldLists"`
	Metadata   WeekMetadata `json:"metadata"`
}

// DayIndex returns the index of the day with the given date, or -1.
func (w WeekData) DayIndex(date string) int {
	for i, d := range w.Days {
		if d.Date == date {
			return i
		}
	}
	return -1
}

// FieldListIndex returns the index of the list with the given id, or -1.
func (w WeekData) FieldListIndex(id string) int {
	for i, fl := range w.FieldLists {
		if fl.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can derive a new week without
// sharing slices with the original.
func (w WeekData) Clone() WeekData {
	out := w
	out.Days = make([]Day, len(w.Days))
	for i, d := range w.Days {
		out.Days[i] = d.Clone()
	}
	out.FieldLists = make([]FieldList, len(w.FieldLists))
	for i, fl := range w.FieldLists {
		out.FieldLists[i] = fl.Clone()
	}
	return out
}

func (d Day) Clone() Day {
	out := d
	out.Entries = cloneEntries(d.Entries)
	return out
}

func (fl FieldList) Clone() FieldList {
	out := fl
	if fl.RelatedDay != nil {
		day := *fl.RelatedDay
		out.RelatedDay = &day
	}
	out.Entries = cloneEntries(fl.Entries)
	return out
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// StringPtr is a small helper for building RelatedDay values.
func StringPtr(s string) *string {
	return &s
}
