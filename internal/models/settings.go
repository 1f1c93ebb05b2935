package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/weeklit/internal/constants"
)

// Settings represents user-wide settings
type Settings struct {
	WeekStartDay  int    `json:"week_start_day"` // 0=Sunday, 1=Monday, 6=Saturday
	SetupComplete bool   `json:"setup_complete"` // week_start_day is frozen once true
	Timezone      string `json:"timezone"`       // IANA timezone name or "Local"
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{WeekStartDay: constants.DefaultWeekStartDay}

	for key, value := range data {
		switch key {
		case constants.SettingWeekStartDay:
			day, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing week_start_day: %w", err)
			}
			settings.WeekStartDay = day
		case constants.SettingSetupComplete:
			settings.SetupComplete = value == "true"
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingWeekStartDay:  strconv.Itoa(settings.WeekStartDay),
		constants.SettingSetupComplete: strconv.FormatBool(settings.SetupComplete),
		constants.SettingTimezone:      settings.Timezone,
	}
}

// DefaultSettings returns the settings a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		WeekStartDay: constants.DefaultWeekStartDay,
		Timezone:     constants.DefaultTimezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
