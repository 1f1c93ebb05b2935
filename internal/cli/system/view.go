package system

import (
	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/tui"
)

type ViewCmd struct {
	Date string `help:"Any date in the week to open (YYYY-MM-DD). Defaults to today."`
}

func (c *ViewCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	return tui.Run(ctx.Service, date)
}
