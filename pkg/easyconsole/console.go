package easyconsole

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color is an ANSI colour code or hex string, as understood by lipgloss.
type Color = lipgloss.Color

type ConsoleOptions struct {
	Width int // Fixed render width, 0 queries the terminal
}

// Console owns one input stream and one output stream. Every prompt, menu,
// table and list in this package reads and writes through a Console.
type Console struct {
	in    *bufio.Reader
	keys  *internal.KeyDecoder
	inFd  int
	inTTY bool

	out    io.Writer
	outFd  int
	outTTY bool

	renderer *lipgloss.Renderer
	options  ConsoleOptions

	mu     sync.Mutex
	column int
}

// NewConsole wraps the process's stdin and stdout.
func NewConsole() *Console {
	return NewConsoleWith(os.Stdin, os.Stdout, ConsoleOptions{})
}

func NewConsoleWith(r io.Reader, w io.Writer, options ConsoleOptions) *Console {
	in := bufio.NewReader(r)
	c := &Console{
		in:       in,
		keys:     internal.NewKeyDecoder(in),
		inFd:     -1,
		out:      w,
		outFd:    -1,
		renderer: lipgloss.NewRenderer(w),
		options:  options,
	}

	if f, ok := r.(*os.File); ok {
		c.inFd = int(f.Fd())
		c.inTTY = internal.IsTerminal(c.inFd)
	}
	if f, ok := w.(*os.File); ok {
		c.outFd = int(f.Fd())
		c.outTTY = internal.IsTerminal(c.outFd)
	}
	return c
}

// Width is the number of columns available for tables and wrapped text.
func (c *Console) Width() int {
	if c.options.Width > 0 {
		return c.options.Width
	}
	return internal.TerminalWidth(c.outFd)
}

// CursorColumn is the display column the next write will start at.
func (c *Console) CursorColumn() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.column
}

func (c *Console) Write(text string) {
	c.write("", text)
}

func (c *Console) Writef(format string, args ...any) {
	c.write("", fmt.Sprintf(format, args...))
}

func (c *Console) WriteLine(text string) {
	c.write("", text+"\n")
}

func (c *Console) WriteLinef(format string, args ...any) {
	c.write("", fmt.Sprintf(format, args...)+"\n")
}

// WriteColor writes text in color. An empty color leaves the terminal default.
func (c *Console) WriteColor(color Color, text string) {
	c.write(color, text)
}

func (c *Console) WriteLineColor(color Color, text string) {
	c.write(color, text+"\n")
}

// DisplayPrompt writes a prompt that always ends in ": ". Text that already
// ends that way is only left-trimmed; otherwise it is trimmed and any
// trailing colons are replaced.
func (c *Console) DisplayPrompt(text string) {
	c.write(internal.GetTheme().PromptColor, normalizePrompt(text))
}

func normalizePrompt(text string) string {
	if strings.HasSuffix(text, constants.PromptEnd) {
		return strings.TrimLeft(text, " \t")
	}
	return strings.TrimRight(strings.TrimSpace(text), ":") + constants.PromptEnd
}

// ReadLine reads one line without its line terminator. End of input with
// nothing typed is reported as ErrInputCancelled.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')

	c.mu.Lock()
	c.column = 0
	c.mu.Unlock()

	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputCancelled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear erases the screen when writing to a terminal. Redirected output is
// left untouched.
func (c *Console) Clear() {
	if !c.outTTY {
		return
	}
	c.write("", "\x1b[H\x1b[2J")
	c.mu.Lock()
	c.column = 0
	c.mu.Unlock()
}

// SetTitle sets the terminal window title.
func (c *Console) SetTitle(title string) {
	if !c.outTTY || title == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.out, "\x1b]0;%s\a", title); err != nil {
		internal.GetInternalLogger().Debug("Failed to set terminal title", "error", err)
	}
}

func (c *Console) write(color Color, text string) {
	if text == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rendered := text
	if color != "" {
		rendered = c.colorize(color, text)
	}
	if _, err := io.WriteString(c.out, rendered); err != nil {
		internal.GetInternalLogger().Debug("Console write failed", "error", err)
	}
	c.advance(text)
}

// colorize styles each line on its own so line breaks stay outside the
// escape sequences.
func (c *Console) colorize(color Color, text string) string {
	style := c.renderer.NewStyle().Foreground(color)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Console) advance(text string) {
	for _, r := range text {
		switch r {
		case '\n', '\r':
			c.column = 0
		case '\b':
			if c.column > 0 {
				c.column--
			}
		default:
			c.column += runewidth.RuneWidth(r)
		}
	}
}
