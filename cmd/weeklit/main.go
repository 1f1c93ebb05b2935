package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/julianstephens/weeklit/internal/cli"
	"github.com/julianstephens/weeklit/internal/cli/backups"
	"github.com/julianstephens/weeklit/internal/cli/files"
	"github.com/julianstephens/weeklit/internal/cli/settings"
	"github.com/julianstephens/weeklit/internal/cli/system"
	"github.com/julianstephens/weeklit/internal/cli/weeks"
	"github.com/julianstephens/weeklit/internal/constants"
	werrors "github.com/julianstephens/weeklit/internal/errors"
	"github.com/julianstephens/weeklit/internal/keyring"
	"github.com/julianstephens/weeklit/internal/logger"
	"github.com/julianstephens/weeklit/internal/storage"
	"github.com/julianstephens/weeklit/internal/storage/postgres"
	"github.com/julianstephens/weeklit/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage location: a SQLite file, a .json file, or a PostgreSQL connection string. PostgreSQL passwords must NOT be embedded; use the OS keyring or WEEKLIT_DB_CONNECTION instead." type:"string" default:"${config}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize weeklit storage."`
	View     system.ViewCmd       `cmd:"" help:"Browse weeks interactively." default:"1"`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Week     struct {
		Show   weeks.WeekShowCmd   `cmd:"" help:"Show a week." default:"1"`
		Add    weeks.WeekAddCmd    `cmd:"" help:"Add an entry to a day."`
		Toggle weeks.WeekToggleCmd `cmd:"" help:"Mark an entry done or not done."`
		Edit   weeks.WeekEditCmd   `cmd:"" help:"Change the text of an entry."`
		Color  weeks.WeekColorCmd  `cmd:"" help:"Highlight an entry."`
		Delete weeks.WeekDeleteCmd `cmd:"" help:"Delete an entry."`
	} `cmd:"" help:"Manage the entries of a week."`
	List struct {
		Add    weeks.ListAddCmd    `cmd:"" help:"Add a field list to a week or day."`
		Rename weeks.ListRenameCmd `cmd:"" help:"Rename a field list."`
		Delete weeks.ListDeleteCmd `cmd:"" help:"Delete a field list."`
		Entry  weeks.ListEntryCmd  `cmd:"" help:"Manage the entries of a field list."`
	} `cmd:"" help:"Manage field lists."`
	Export files.ExportCmd `cmd:"" help:"Export weeks to Markdown or PDF."`
	Import files.ImportCmd `cmd:"" help:"Import weeks from an exported Markdown file."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the connection string from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is available."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly planner with Markdown and PDF import/export"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(CLI.Config)}); err != nil {
		// Logging is best effort
		logger.SetOutput(os.Stderr, log.WarnLevel)
	}

	store, err := openStore(CLI.Config)
	if err != nil {
		werrors.Fatal(err)
	}
	defer store.Close()

	// Init creates the store; everything else needs it to exist already
	if cmd := ctx.Command(); !strings.HasPrefix(cmd, "init") && !strings.HasPrefix(cmd, "keyring") {
		if err := store.Load(); err != nil {
			if errors.Is(err, storage.ErrNotInitialized) {
				err = werrors.WithHint(err, "run 'weeklit init' to create your planner")
			}
			werrors.Fatal(err)
		}
	}

	werrors.Fatal(ctx.Run(cli.NewContext(store)))
}

// openStore picks the provider for config: PostgreSQL for connection
// strings, the JSON store for .json files and SQLite otherwise.
func openStore(config string) (storage.Provider, error) {
	if !postgres.IsConnString(config) {
		path := expandHome(config)
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return storage.NewJSONStore(path), nil
		}
		return sqlite.NewStore(path), nil
	}

	if err := postgres.ValidateConnString(config); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, werrors.WithHint(err,
				"store the full connection string with 'weeklit keyring set', export "+constants.EnvDBConnection+", or use a .pgpass file")
		}
		return nil, err
	}

	connStr := config
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		connStr = env
	} else if secret, err := keyring.Default.Get(); err == nil {
		connStr = secret
	} else if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return postgres.New(connStr), nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// logDir keeps logs next to a file store, or in the default config
// directory for PostgreSQL.
func logDir(config string) string {
	if postgres.IsConnString(config) {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(expandHome(config))
}
