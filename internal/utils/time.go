package utils

import (
	"time"

	"github.com/julianstephens/weeklit/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// Timestamp renders t as a UTC ISO-8601 timestamp with millisecond precision.
// Timestamps in this format sort correctly as plain strings.
func Timestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}
