package easyconsole

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/i18n"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

type Options struct {
	LogDirectory string   // Directory for LogFilename, defaults to logs
	LogFilename  string   // Empty discards log records
	LogLevel     string   // debug, info, warn or error
	Language     string   // BCP 47 tag, empty means English
	MessageFiles []string // Extra go-i18n message files
	Theme        *Theme
	Monochrome   bool
}

// Init configures logging, translations and colours. It is optional; without
// it logs are discarded and prompts are in English.
func Init(options Options) error {
	if options.LogDirectory != "" {
		internal.SetLogDirectory(options.LogDirectory)
	}
	if options.LogFilename != "" {
		if err := internal.SetLogFilename(options.LogFilename); err != nil {
			return err
		}
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		internal.SetInternalLogLevel(internal.ParseLogLevel(raw))
	} else if constants.IsDebugMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.Language != "" || len(options.MessageFiles) > 0 {
		if err := i18n.InitI18N(options.Language, options.MessageFiles...); err != nil {
			return err
		}
	}

	switch {
	case options.Monochrome || os.Getenv(constants.NoColorEnvVar) != "":
		internal.SetTheme(internal.MonochromeTheme())
	case options.Theme != nil:
		internal.SetTheme(*options.Theme)
	}

	internal.GetInternalLogger().Debug("easyconsole initialised", "language", options.Language, "log_level", options.LogLevel)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

func SetLogFilename(filename string) error {
	return internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
