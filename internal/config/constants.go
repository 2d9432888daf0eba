package config

import "time"

// Application settings.
const (
	AppName        = "custimer"
	DBFileName     = "timer_data.db"
	LogFileName    = "custimer.log"
	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
	ReportFileName = "timer_roster.pdf"
)

// Completion alert.
const (
	AlertRepetitions = 10
	AlertInterval    = 500 * time.Millisecond

	MaxAlertRepetitions = 100
	MinAlertInterval    = 50 * time.Millisecond
	MaxAlertInterval    = 10 * time.Second
)

// Themes.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Event bridge.
const (
	DefaultNATSSubject = "custimer"
)

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
