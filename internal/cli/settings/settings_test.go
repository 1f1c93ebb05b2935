package settings

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := cli.NewContext(store)
	out := &bytes.Buffer{}
	ctx.Out = out

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, out, cleanup
}

func strPtr(s string) *string { return &s }

func TestSettingsCmd_List(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Monday") {
		t.Errorf("expected default Monday start in %q", out.String())
	}
}

func TestSettingsCmd_UpdateBeforeSetup(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{WeekStart: strPtr("saturday"), Timezone: strPtr("Europe/Paris")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.WeekStartDay != 6 {
		t.Errorf("WeekStartDay = %d, want 6", settings.WeekStartDay)
	}
	if settings.Timezone != "Europe/Paris" {
		t.Errorf("Timezone = %s, want Europe/Paris", settings.Timezone)
	}
}

func TestSettingsCmd_WeekStartLockedAfterSetup(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	settings, _ := ctx.Store.GetSettings()
	settings.SetupComplete = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	err := (&SettingsCmd{WeekStart: strPtr("sunday")}).Run(ctx)
	if !errors.Is(err, ErrWeekStartLocked) {
		t.Errorf("expected ErrWeekStartLocked, got %v", err)
	}

	// Re-stating the current value is not a change.
	if err := (&SettingsCmd{WeekStart: strPtr("monday")}).Run(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSettingsCmd_InvalidTimezone(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{Timezone: strPtr("Nowhere/Land")}).Run(ctx); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
