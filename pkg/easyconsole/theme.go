package easyconsole

import "github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"

// Theme holds the colours used by tables, prompts and error reports.
type Theme = internal.Theme

func DefaultTheme() Theme { return internal.DefaultTheme() }

func MonochromeTheme() Theme { return internal.MonochromeTheme() }

func SetTheme(theme Theme) { internal.SetTheme(theme) }

func GetTheme() Theme { return internal.GetTheme() }
