package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/utils"
)

// ErrWeekStartLocked is returned when changing the week start after setup.
var ErrWeekStartLocked = errors.New("the week start day cannot be changed after setup")

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WeekStart *string `help:"First day of the week (only before setup is complete)."`
	Timezone  *string `help:"IANA timezone name, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Week Start Day:  %s\n", time.Weekday(settings.WeekStartDay))
		ctx.Printf("  Timezone:        %s\n", settings.Timezone)
		ctx.Printf("  Setup Complete:  %v\n", settings.SetupComplete)
		return nil
	}

	updated := false
	if c.WeekStart != nil {
		day, err := cli.ParseWeekStart(*c.WeekStart)
		if err != nil {
			return err
		}
		if day != settings.WeekStartDay {
			if settings.SetupComplete {
				return ErrWeekStartLocked
			}
			settings.WeekStartDay = day
			updated = true
		}
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
