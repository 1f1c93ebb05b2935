package files

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/tui"
)

type ImportCmd struct {
	File   string `arg:"" help:"Markdown file previously exported by weeklit." type:"path"`
	Yes    bool   `help:"Apply without asking for confirmation." short:"y"`
	DryRun bool   `help:"Show what would be imported and stop."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	preview, err := ctx.Service.PreviewFile(c.File)
	if err != nil {
		return fmt.Errorf("cannot import %s: %w", filepath.Base(c.File), err)
	}

	ctx.Println(tui.RenderPreview(preview))
	ctx.Println()
	if c.DryRun {
		ctx.Println("Dry run, nothing imported.")
		return nil
	}

	if !c.Yes {
		ok, err := tui.ConfirmImport(preview)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Import cancelled.")
			return nil
		}
	}

	res, err := ctx.Service.Apply(preview)
	if err != nil {
		return err
	}
	if res.Backup != "" {
		ctx.Printf("Backup saved: %s\n", filepath.Base(res.Backup))
	}
	ctx.Printf("✓ Imported %d week(s): %d merged, %d new\n", len(res.Merged)+len(res.Inserted), len(res.Merged), len(res.Inserted))
	return nil
}
