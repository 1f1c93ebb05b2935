package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/constants"
	"github.com/julianstephens/weeklit/internal/pdf"
	"github.com/julianstephens/weeklit/internal/transfer"
	"github.com/julianstephens/weeklit/internal/tui"
)

type ExportCmd struct {
	Week         []string `help:"Week id to export (YYYY-WNN). Repeatable." name:"week"`
	All          bool     `help:"Export every week with content."`
	Interactive  bool     `help:"Pick the weeks from a list." short:"i"`
	Output       string   `help:"Output file or directory. Use - for stdout." short:"o"`
	Format       string   `help:"Output format." enum:"markdown,pdf" default:"markdown"`
	Paper        string   `help:"PDF paper size." enum:"a4,letter" default:"a4"`
	NoFieldLists bool     `help:"Leave field lists out of PDF exports."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	ids, err := c.weekIDs(ctx)
	if err != nil {
		return err
	}

	out, err := ctx.Service.Export(transfer.ExportRequest{
		WeekIDs: ids,
		Format:  c.Format,
		PDF: pdf.Options{
			TemplateID:        constants.PDFTemplateBasic,
			IncludeFieldLists: !c.NoFieldLists,
			PaperSize:         c.Paper,
		},
	})
	if err != nil {
		if errors.Is(err, transfer.ErrNothingToExport) {
			return fmt.Errorf("%w: add some entries first", err)
		}
		return err
	}

	if c.Output == "-" {
		_, err := ctx.Out.Write(out.Content)
		return err
	}

	path := out.Filename
	if c.Output != "" {
		path = c.Output
		if info, err := os.Stat(c.Output); err == nil && info.IsDir() {
			path = filepath.Join(c.Output, out.Filename)
		}
	}
	if err := os.WriteFile(path, out.Content, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.Printf("✓ Exported %d week(s) to %s\n", len(out.Weeks), path)
	return nil
}

// weekIDs returns the explicit selection, nil for all weeks with content, or
// the current week when nothing was asked for.
func (c *ExportCmd) weekIDs(ctx *cli.Context) ([]string, error) {
	switch {
	case len(c.Week) > 0:
		return c.Week, nil
	case c.All:
		return nil, nil
	case c.Interactive:
		summaries, err := ctx.Service.WeeksWithContent()
		if err != nil {
			return nil, err
		}
		if len(summaries) == 0 {
			return nil, transfer.ErrNothingToExport
		}
		return tui.SelectWeeks(summaries)
	default:
		w, err := ctx.OpenWeek("")
		if err != nil {
			return nil, err
		}
		return []string{w.WeekID}, nil
	}
}
