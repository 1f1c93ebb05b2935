package constants

const (
	SettingWeekStartDay  = "week_start_day"
	SettingSetupComplete = "setup_complete"
	SettingTimezone      = "timezone"

	// Default Settings Values
	DefaultWeekStartDay = 1 // Monday
	DefaultTimezone     = "Local"
)
