package internal

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"golang.org/x/term"
)

// TerminalWidth reports the column count of the terminal behind fd. When fd is
// not a terminal it falls back to $COLUMNS and then to 80.
func TerminalWidth(fd int) int {
	if term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return cols
		}
	}

	if v := os.Getenv(constants.ColumnsEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			return n
		}
		GetInternalLogger().Warn("Invalid COLUMNS; using default", "value", v, "error", err)
	}

	return constants.DefaultTerminalWidth
}

func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// MakeRaw puts fd into raw mode and returns the function that restores it.
func MakeRaw(fd int) (func() error, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
