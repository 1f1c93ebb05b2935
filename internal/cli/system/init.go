package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/tui"
	"github.com/julianstephens/weeklit/internal/utils"
)

type InitCmd struct {
	WeekStart   string `help:"First day of the week: monday, sunday or saturday." default:"monday"`
	Timezone    string `help:"IANA timezone name, or Local." default:"Local"`
	Interactive bool   `help:"Ask for the settings interactively." short:"i"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.SetupComplete {
		ctx.Printf("weeklit storage already initialized at: %s\n", ctx.Store.GetConfigPath())
		return nil
	}

	answers := tui.SetupAnswers{Timezone: c.Timezone}
	answers.WeekStartDay, err = cli.ParseWeekStart(c.WeekStart)
	if err != nil {
		return err
	}
	if c.Interactive {
		if err := tui.NewSetupForm(&answers).Run(); err != nil {
			return err
		}
	}
	if err := utils.ValidateWeekStartDay(answers.WeekStartDay); err != nil {
		return err
	}
	if !utils.ValidateTimezone(answers.Timezone) {
		return fmt.Errorf("invalid timezone: %s", answers.Timezone)
	}

	settings.WeekStartDay = answers.WeekStartDay
	settings.Timezone = answers.Timezone
	settings.SetupComplete = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	ctx.Printf("Initialized weeklit storage at: %s\n", ctx.Store.GetConfigPath())
	ctx.Printf("Weeks start on %s.\n", time.Weekday(settings.WeekStartDay))
	return nil
}
