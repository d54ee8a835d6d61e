package internal

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// StringWidth is the number of terminal cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CleanText expands tabs to spaces and drops control characters other than
// line breaks. Widths measured on the result match what the terminal draws.
func CleanText(s string) string {
	if !strings.ContainsFunc(s, isDroppedControl) {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case isDroppedControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDroppedControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\r'
}

// FitWidth clips or right-pads s to exactly width cells.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// CutWidth splits s after the first width cells. A rune wider than the whole
// width is still taken so callers always make progress.
func CutWidth(s string, width int) (head, tail string) {
	if width <= 0 {
		return "", s
	}

	used := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			if i == 0 {
				n := len(string(r))
				return s[:n], s[n:]
			}
			return s[:i], s[i:]
		}
		used += w
	}
	return s, ""
}

// Repeat returns glyph repeated n times, or "" for n <= 0.
func Repeat(glyph rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(glyph), n)
}

// WrapWords breaks text into lines no wider than width, splitting between
// words and honouring embedded newlines. Spacing inside a line is kept as
// written; the spaces at a break are dropped. A single word wider than width
// is left whole on its own line.
func WrapWords(text string, width int) []string {
	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		if width <= 0 || StringWidth(paragraph) <= width {
			lines = append(lines, paragraph)
			continue
		}
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(paragraph string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	spaces := ""

	for _, run := range splitSpaceRuns(paragraph) {
		if run[0] == ' ' {
			spaces += run
			continue
		}

		wordWidth := StringWidth(run)
		if lineWidth > 0 && lineWidth+len(spaces)+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
			spaces = ""
		}
		line.WriteString(spaces)
		line.WriteString(run)
		lineWidth += len(spaces) + wordWidth
		spaces = ""
	}

	if spaces != "" && lineWidth+len(spaces) <= width {
		line.WriteString(spaces)
	}
	return append(lines, line.String())
}

// splitSpaceRuns cuts s into alternating runs of spaces and non-spaces.
func splitSpaceRuns(s string) []string {
	var runs []string
	start := 0
	for i := 1; i < len(s); i++ {
		if (s[i] == ' ') != (s[i-1] == ' ') {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		runs = append(runs, s[start:])
	}
	return runs
}
