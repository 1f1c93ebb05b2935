package backups

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/storage"
	"github.com/julianstephens/weeklit/internal/storage/postgres"
	"github.com/julianstephens/weeklit/internal/storage/sqlite"
	"github.com/julianstephens/weeklit/internal/week"
)

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "weeklit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := cli.NewContext(store)
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

func TestBackupCreateListRestore(t *testing.T) {
	ctx, out := setupContext(t)

	w := week.NewEmptyWeek(time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local), time.Monday, time.Now())
	w, err := week.AddEntryToDay(w, w.StartDate, "keep me")
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SaveWeek(w); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	name := strings.TrimSpace(strings.TrimPrefix(out.String(), "✓ Backup created:"))
	if !strings.HasPrefix(name, "weeklit-") || !strings.HasSuffix(name, ".db") {
		t.Fatalf("unexpected backup name %q", name)
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), name) {
		t.Errorf("list output missing %s:\n%s", name, out.String())
	}

	changed, err := week.AddEntryToDay(w, w.StartDate, "added after backup")
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SaveWeek(changed); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	got, err := ctx.Store.GetWeek(w.WeekID)
	if err != nil {
		t.Fatalf("week not restored: %v", err)
	}
	if len(got.Days[0].Entries) != 1 || got.Days[0].Entries[0].Text != "keep me" {
		t.Errorf("unexpected restored week %+v", got.Days[0])
	}
	if !strings.Contains(out.String(), "Previous data saved as") {
		t.Errorf("unexpected restore output:\n%s", out.String())
	}
}

func TestBackupListEmpty(t *testing.T) {
	ctx, out := setupContext(t)
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestBackupRequiresFileStore(t *testing.T) {
	var store storage.Provider = postgres.New("postgres://me@localhost/weeklit")
	ctx := cli.NewContext(store)
	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, cli.ErrNoBackups) {
		t.Errorf("expected ErrNoBackups, got %v", err)
	}
}
