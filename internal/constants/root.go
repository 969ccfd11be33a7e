package constants

import "time"

const (
	AppName    = "hurryup"
	AppVersion = "1.0"
	Version    = "v0.1.0"

	DefaultConfigDir  = "~/.config/hurryup"
	DefaultConfigFile = "config.yaml"

	// StorageKey is the key the application state document is stored under.
	StorageKey = "dailyReportData"

	// DateFormat is the day key format used for same-day detection and heatmap cells (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "hurryup-backup-"
	BackupFileSuffix = ".json"

	// Session lock
	SessionLockfileName = "hurryup.lock"

	// DefaultQuotaBytes mirrors the 5 MiB browser localStorage budget.
	DefaultQuotaBytes = 5 * 1024 * 1024

	// CullAge is how old a report must be before its images are dropped on quota pressure.
	CullAge = 30 * 24 * time.Hour

	// Heatmap year range
	HeatmapMinYear = 2023
	HeatmapMaxYear = 2026

	// Image limits
	MaxImageBytes         = 2 * 1024 * 1024
	AttachmentMaxWidth    = 800
	AttachmentQuality     = 70
	ProfileImageMaxWidth  = 400
	ProfileImageQuality   = 80
	DefaultImproveTimeout = 30 * time.Second

	// Keyring
	DefaultKeyringUser = "anthropic-api-key"
)
