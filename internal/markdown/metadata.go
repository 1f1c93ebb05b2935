package markdown

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/julianstephens/weeklit/internal/models"
)

var metadataPattern = regexp.MustCompile(`<!-- METADATA: (.+) -->`)

// MetadataKind distinguishes the two metadata comment shapes.
type MetadataKind int

const (
	// NoMetadata means the file carries no usable metadata comment.
	NoMetadata MetadataKind = iota
	SingleWeek
	MultiWeek
)

func (k MetadataKind) String() string {
	switch k {
	case SingleWeek:
		return "single-week"
	case MultiWeek:
		return "multi-week"
	default:
		return "none"
	}
}

// WeekRef identifies one exported week.
type WeekRef struct {
	WeekID    string `json:"weekId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func refOf(w models.WeekData) WeekRef {
	return WeekRef{WeekID: w.WeekID, StartDate: w.StartDate, EndDate: w.EndDate}
}

// SingleWeekMetadata is the comment appended to a one-week export.
type SingleWeekMetadata struct {
	WeekRef
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
}

// MultiWeekMetadata is the comment appended once to a multi-week export.
type MultiWeekMetadata struct {
	Weeks      []WeekRef `json:"weeks"`
	ExportDate string    `json:"exportDate"`
	Version    string    `json:"version"`
	MultiWeek  bool      `json:"multiWeek"`
}

// Metadata is the decoded metadata comment. Exactly one of Single and Multi is
// set unless Kind is NoMetadata.
type Metadata struct {
	Kind   MetadataKind
	Single *SingleWeekMetadata
	Multi  *MultiWeekMetadata
}

// ExportDate returns the export timestamp of either shape, or "".
func (m Metadata) ExportDate() string {
	switch m.Kind {
	case SingleWeek:
		return m.Single.ExportDate
	case MultiWeek:
		return m.Multi.ExportDate
	}
	return ""
}

// Version returns the format version of either shape, or "".
func (m Metadata) Version() string {
	switch m.Kind {
	case SingleWeek:
		return m.Single.Version
	case MultiWeek:
		return m.Multi.Version
	}
	return ""
}

// rawMetadata accepts both shapes so the comment can be decoded in one pass.
type rawMetadata struct {
	WeekID     string    `json:"weekId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Weeks      []WeekRef `json:"weeks"`
	ExportDate string    `json:"exportDate"`
	Version    string    `json:"version"`
	MultiWeek  bool      `json:"multiWeek"`
}

// ExtractMetadata finds and decodes the metadata comment in content. A missing
// comment yields NoMetadata and a nil error; malformed JSON yields NoMetadata and
// an error the caller may log and otherwise ignore.
func ExtractMetadata(content string) (Metadata, error) {
	match := metadataPattern.FindStringSubmatch(content)
	if match == nil {
		return Metadata{Kind: NoMetadata}, nil
	}

	var raw rawMetadata
	if err := json.Unmarshal([]byte(match[1]), &raw); err != nil {
		return Metadata{Kind: NoMetadata}, fmt.Errorf("decoding metadata comment: %w", err)
	}

	if raw.MultiWeek && raw.Weeks != nil {
		return Metadata{Kind: MultiWeek, Multi: &MultiWeekMetadata{
			Weeks:      raw.Weeks,
			ExportDate: raw.ExportDate,
			Version:    raw.Version,
			MultiWeek:  true,
		}}, nil
	}

	return Metadata{Kind: SingleWeek, Single: &SingleWeekMetadata{
		WeekRef:    WeekRef{WeekID: raw.WeekID, StartDate: raw.StartDate, EndDate: raw.EndDate},
		ExportDate: raw.ExportDate,
		Version:    raw.Version,
	}}, nil
}

func metadataComment(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding metadata comment: %w", err)
	}
	return "<!-- METADATA: " + string(b) + " -->", nil
}
