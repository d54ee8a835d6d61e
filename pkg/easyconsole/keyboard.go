package easyconsole

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
	"github.com/mattn/go-runewidth"
)

// lineEditor holds the text being edited by ReadStringWithDefault. The cursor
// always sits at the end of the buffer.
type lineEditor struct {
	console    *Console
	TextBuffer []rune
}

func sanitizeDefault(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, text)
}

// ReadStringWithDefault shows def already typed after the prompt. On a
// terminal the user edits it in place: Backspace deletes, Esc clears, Enter
// accepts and Ctrl+Z or Ctrl+D cancels. When input is redirected a blank line
// accepts def.
func (c *Console) ReadStringWithDefault(prompt, def string) (string, error) {
	def = sanitizeDefault(def)
	if strings.TrimSpace(def) == "" {
		return c.ReadString(prompt)
	}

	if !c.inTTY {
		c.DisplayPrompt(withDefault(prompt, def))
		line, err := c.ReadLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			return def, nil
		}
		return line, nil
	}

	c.DisplayPrompt(prompt)

	restore, err := internal.MakeRaw(c.inFd)
	if err != nil {
		internal.GetInternalLogger().Warn("Unable to enter raw mode; reading a plain line", "error", err)
		return c.ReadLine()
	}
	defer func() {
		if err := restore(); err != nil {
			internal.GetInternalLogger().Error("Failed to restore terminal state", "error", err)
		}
	}()

	return c.editLine(def)
}

// editLine runs the key loop over whatever the key decoder produces.
func (c *Console) editLine(initial string) (string, error) {
	editor := &lineEditor{console: c}
	editor.insertText(initial)

	for {
		event, err := c.keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrInputCancelled
			}
			return "", err
		}

		switch event.Key {
		case internal.KeyEnter:
			c.Write("\r\n")
			return string(editor.TextBuffer), nil
		case internal.KeyCancel, internal.KeyInterrupt:
			c.Write("\r\n")
			return "", ErrInputCancelled
		case internal.KeyBackspace:
			editor.backspace()
		case internal.KeyEscape:
			editor.clear()
		case internal.KeyRune:
			if unicode.IsPrint(event.Rune) {
				editor.insertText(string(event.Rune))
			}
		}
	}
}

func (e *lineEditor) insertText(text string) {
	e.TextBuffer = append(e.TextBuffer, []rune(text)...)
	e.console.Write(text)
}

func (e *lineEditor) backspace() {
	if len(e.TextBuffer) == 0 {
		return
	}
	last := e.TextBuffer[len(e.TextBuffer)-1]
	e.TextBuffer = e.TextBuffer[:len(e.TextBuffer)-1]

	cells := runewidth.RuneWidth(last)
	if cells < 1 {
		return
	}
	e.console.Write(strings.Repeat("\b", cells) + strings.Repeat(" ", cells) + strings.Repeat("\b", cells))
}

func (e *lineEditor) clear() {
	for len(e.TextBuffer) > 0 {
		e.backspace()
	}
}
