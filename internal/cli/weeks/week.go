package weeks

import (
	"fmt"

	"github.com/julianstephens/weeklit/internal/analyzer"
	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/utils"
	"github.com/julianstephens/weeklit/internal/week"
)

// openDay opens the week containing date and returns it with the day's
// YYYY-MM-DD key.
func openDay(ctx *cli.Context, date string) (models.WeekData, string, error) {
	d, err := ctx.ResolveDate(date)
	if err != nil {
		return models.WeekData{}, "", err
	}
	w, err := ctx.Service.OpenWeek(d)
	if err != nil {
		return models.WeekData{}, "", err
	}
	return w, utils.FormatDate(d), nil
}

func dayEntries(w models.WeekData, date string) []models.Entry {
	if i := w.DayIndex(date); i >= 0 {
		return w.Days[i].Entries
	}
	return nil
}

type WeekShowCmd struct {
	Date string `help:"Any date in the week (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekShowCmd) Run(ctx *cli.Context) error {
	w, err := ctx.OpenWeek(c.Date)
	if err != nil {
		return err
	}
	printWeek(ctx, w)
	return nil
}

func printWeek(ctx *cli.Context, w models.WeekData) {
	ctx.Printf("%s (%s to %s)\n", w.WeekID, w.StartDate, w.EndDate)
	for _, d := range w.Days {
		ctx.Printf("\n%s %s\n", d.DayOfWeek, d.Date)
		printEntries(ctx, d.Entries, "  ")
		for i, fl := range w.FieldLists {
			if fl.IsForDay(d.Date) {
				ctx.Printf("  List %d: %s\n", i+1, fl.Title)
				printEntries(ctx, fl.Entries, "    ")
			}
		}
	}

	first := true
	for i, fl := range w.FieldLists {
		if !fl.IsWeekLevel() {
			continue
		}
		if first {
			ctx.Println("\nWeek-level lists")
			first = false
		}
		ctx.Printf("  List %d: %s\n", i+1, fl.Title)
		printEntries(ctx, fl.Entries, "    ")
	}

	ctx.Printf("\n%d entries\n", analyzer.EntryCount(w))
}

func printEntries(ctx *cli.Context, entries []models.Entry, indent string) {
	for i, e := range entries {
		box := "[ ]"
		if e.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%d. %s %s", indent, i+1, box, e.Text)
		if e.Color != "" && e.Color != models.ColorNone {
			line += fmt.Sprintf(" (%s)", e.Color)
		}
		ctx.Println(line)
	}
}

type WeekAddCmd struct {
	Text string `arg:"" help:"Entry text."`
	Date string `help:"Day to add the entry to (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekAddCmd) Run(ctx *cli.Context) error {
	w, date, err := openDay(ctx, c.Date)
	if err != nil {
		return err
	}
	w, err = week.AddEntryToDay(w, date, c.Text)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	entries := dayEntries(w, date)
	ctx.Printf("Added entry to %s: %s\n", date, entries[len(entries)-1].Text)
	return nil
}

type WeekToggleCmd struct {
	Entry string `arg:"" help:"Entry number or id."`
	Date  string `help:"Day of the entry (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekToggleCmd) Run(ctx *cli.Context) error {
	w, date, err := openDay(ctx, c.Date)
	if err != nil {
		return err
	}
	e, err := cli.ResolveEntry(dayEntries(w, date), c.Entry)
	if err != nil {
		return err
	}
	w, err = week.ToggleEntry(w, date, e.ID)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	state := "done"
	if e.Completed {
		state = "not done"
	}
	ctx.Printf("Marked %q %s\n", e.Text, state)
	return nil
}

type WeekEditCmd struct {
	Entry string `arg:"" help:"Entry number or id."`
	Text  string `arg:"" help:"New entry text."`
	Date  string `help:"Day of the entry (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekEditCmd) Run(ctx *cli.Context) error {
	w, date, err := openDay(ctx, c.Date)
	if err != nil {
		return err
	}
	e, err := cli.ResolveEntry(dayEntries(w, date), c.Entry)
	if err != nil {
		return err
	}
	w, err = week.UpdateEntryText(w, date, e.ID, c.Text)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Println("Entry updated.")
	return nil
}

type WeekColorCmd struct {
	Entry string `arg:"" help:"Entry number or id."`
	Color string `arg:"" enum:"none,yellow,cyan,pink,green,purple,orange" help:"Highlight color (none,yellow,cyan,pink,green,purple,orange)."`
	Date  string `help:"Day of the entry (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekColorCmd) Run(ctx *cli.Context) error {
	w, date, err := openDay(ctx, c.Date)
	if err != nil {
		return err
	}
	e, err := cli.ResolveEntry(dayEntries(w, date), c.Entry)
	if err != nil {
		return err
	}
	w, err = week.SetEntryColor(w, date, e.ID, models.Color(c.Color))
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Entry %q is now %s.\n", e.Text, c.Color)
	return nil
}

type WeekDeleteCmd struct {
	Entry string `arg:"" help:"Entry number or id."`
	Date  string `help:"Day of the entry (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekDeleteCmd) Run(ctx *cli.Context) error {
	w, date, err := openDay(ctx, c.Date)
	if err != nil {
		return err
	}
	e, err := cli.ResolveEntry(dayEntries(w, date), c.Entry)
	if err != nil {
		return err
	}
	w, err = week.DeleteEntry(w, date, e.ID)
	if err != nil {
		return err
	}
	if err := ctx.Service.UpdateWeek(w); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	ctx.Printf("Deleted entry %q\n", e.Text)
	return nil
}
