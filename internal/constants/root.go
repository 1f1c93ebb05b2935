package constants

const (
	AppName            = "weeklit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/weeklit/weeklit.db"
	Version            = "v0.1.0"

	// EnvDBConnection overrides a PostgreSQL config with a full connection string.
	EnvDBConnection = "WEEKLIT_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat matches the millisecond ISO-8601 timestamps stored in week metadata.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	// Backup constants
	MaxBackups       = 5
	BackupDirName    = "backups"
	BackupFilePrefix = "weeklit-"
	BackupFileSuffix = ".db"

	// Markdown export constants
	MarkdownExtension     = ".md"
	ExportFormatVersion   = "1.0"
	EmptyExportFilename   = "weeks-export.md"
	DailyEntriesTitle     = "Daily Entries"
	WeekLevelSectionTitle = "Week-Level Field Lists"

	// PDF constants
	PDFTemplateBasic = "basic"
	PaperA4          = "a4"
	PaperLetter      = "letter"
)
