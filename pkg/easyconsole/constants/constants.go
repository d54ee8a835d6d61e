package constants

import (
	"os"
	"time"
)

const (
	DefaultMaxConcurrentTasks = 10
	DefaultTaskStartDelay     = time.Duration(0)
	DefaultColumnMaxWidth     = 20
	DefaultListPageSize       = 100
	DefaultTerminalWidth      = 80
	DefaultTerminalHeight     = 24
)

const (
	BreadcrumbSeparator = " > "
	HeaderRule          = "---"
	NullText            = "null"
	ListSeparator       = ", "
	PromptEnd           = ": "
	GoBackOptionName    = "Go back"
)

// Environment variables read by Init and the terminal helpers.
const (
	LogLevelEnvVar = "EASYCONSOLE_LOG_LEVEL"
	DebugEnvVar    = "EASYCONSOLE_DEBUG"
	ColumnsEnvVar  = "COLUMNS"
	NoColorEnvVar  = "NO_COLOR"
)

func IsDebugMode() bool {
	return os.Getenv(DebugEnvVar) != ""
}
