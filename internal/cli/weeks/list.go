package weeks

import (
	"fmt"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
	"github.com/julianstephens/weeklit/internal/week"
)

type ListAddCmd struct {
	Title string `arg:"" help:"List title."`
	Date  string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
	Day   string `help:"Attach the list to this day (YYYY-MM-DD) instead of the whole week."`
}

func (c *ListAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = c.Day
	}
	w, err := ctx.OpenWeek(date)
	if err != nil {
		return err
	}

	var related *string
	if c.Day != "" {
		d, err := utils.ParseDate(c.Day)
		if err != nil {
			return fmt.Errorf("invalid day %q, expected YYYY-MM-DD", c.Day)
		}
		related = models.StringPtr(utils.FormatDate(d))
	}

	w, err = week.AddFieldList(w, c.Title, related)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Added list %d: %s\n", len(w.FieldLists), w.FieldLists[len(w.FieldLists)-1].Title)
	return nil
}

type ListRenameCmd struct {
	List  string `arg:"" help:"List number, title or id."`
	Title string `arg:"" help:"New title."`
	Date  string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
}

func (c *ListRenameCmd) Run(ctx *cli.Context) error {
	w, err := ctx.OpenWeek(c.Date)
	if err != nil {
		return err
	}
	fl, err := cli.ResolveFieldList(w.FieldLists, c.List)
	if err != nil {
		return err
	}
	w, err = week.RenameFieldList(w, fl.ID, c.Title)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Renamed %q\n", fl.Title)
	return nil
}

type ListDeleteCmd struct {
	List string `arg:"" help:"List number, title or id."`
	Date string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
}

func (c *ListDeleteCmd) Run(ctx *cli.Context) error {
	w, err := ctx.OpenWeek(c.Date)
	if err != nil {
		return err
	}
	fl, err := cli.ResolveFieldList(w.FieldLists, c.List)
	if err != nil {
		return err
	}
	w, err = week.DeleteFieldList(w, fl.ID)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Deleted list %q\n", fl.Title)
	return nil
}

type ListEntryCmd struct {
	Add    ListEntryAddCmd    `cmd:"" help:"Add an entry to a list."`
	Toggle ListEntryToggleCmd `cmd:"" help:"Toggle a list entry."`
	Delete ListEntryDeleteCmd `cmd:"" help:"Delete a list entry."`
}

type ListEntryAddCmd struct {
	List string `arg:"" help:"List number, title or id."`
	Text string `arg:"" help:"Entry text."`
	Date string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
}

func (c *ListEntryAddCmd) Run(ctx *cli.Context) error {
	w, err := ctx.OpenWeek(c.Date)
	if err != nil {
		return err
	}
	fl, err := cli.ResolveFieldList(w.FieldLists, c.List)
	if err != nil {
		return err
	}
	w, err = week.AddFieldListEntry(w, fl.ID, c.Text)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Added entry to %s\n", fl.Title)
	return nil
}

type ListEntryToggleCmd struct {
	List  string `arg:"" help:"List number, title or id."`
	Entry string `arg:"" help:"Entry number or id."`
	Date  string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
}

func (c *ListEntryToggleCmd) Run(ctx *cli.Context) error {
	w, err := ctx.OpenWeek(c.Date)
	if err != nil {
		return err
	}
	fl, err := cli.ResolveFieldList(w.FieldLists, c.List)
	if err != nil {
		return err
	}
	e, err := cli.ResolveEntry(fl.Entries, c.Entry)
	if err != nil {
		return err
	}
	w, err = week.ToggleFieldListEntry(w, fl.ID, e.ID)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Toggled %q\n", e.Text)
	return nil
}

type ListEntryDeleteCmd struct {
	List  string `arg:"" help:"List number, title or id."`
	Entry string `arg:"" help:"Entry number or id."`
	Date  string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
}

func (c *ListEntryDeleteCmd) Run(ctx *cli.Context) error {
	w, err := ctx.OpenWeek(c.Date)
	if err != nil {
		return err
	}
	fl, err := cli.ResolveFieldList(w.FieldLists, c.List)
	if err != nil {
		return err
	}
	e, err := cli.ResolveEntry(fl.Entries, c.Entry)
	if err != nil {
		return err
	}
	w, err = week.DeleteFieldListEntry(w, fl.ID, e.ID)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Deleted %q from %s\n", e.Text, fl.Title)
	return nil
}
