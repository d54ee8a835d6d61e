package internal

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme colours use ANSI 16-colour codes so they survive limited terminals.
type Theme struct {
	TitleColor   lipgloss.Color // Table title text
	HeaderColor  lipgloss.Color // Table header labels
	RowColor     lipgloss.Color // Table cell text
	BorderColor  lipgloss.Color // Box-drawing glyphs
	PromptColor  lipgloss.Color // Prompt text, empty means terminal default
	ErrorColor   lipgloss.Color // Reported errors
	SuccessColor lipgloss.Color // Confirmations in demos
}

func DefaultTheme() Theme {
	return Theme{
		TitleColor:   lipgloss.Color("15"),
		HeaderColor:  lipgloss.Color("14"),
		RowColor:     lipgloss.Color("7"),
		BorderColor:  lipgloss.Color("8"),
		PromptColor:  lipgloss.Color(""),
		ErrorColor:   lipgloss.Color("9"),
		SuccessColor: lipgloss.Color("10"),
	}
}

// MonochromeTheme leaves every colour at the terminal default.
func MonochromeTheme() Theme {
	return Theme{}
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

func SetTheme(theme Theme) {
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
}

func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
