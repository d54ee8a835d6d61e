package easyconsole

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

// PageID names a page registered with a Program.
type PageID string

type ProgramOptions struct {
	Breadcrumb bool // Show the navigation path instead of the page title in headers
}

type historyEntry struct {
	id   PageID
	page Page
}

// Program holds the registered pages and the navigation history. The top of
// the history is the current page.
type Program struct {
	console *Console
	title   string
	options ProgramOptions
	pages   map[PageID]Page
	history []historyEntry
}

func NewProgram(c *Console, title string, options ProgramOptions) *Program {
	return &Program{
		console: c,
		title:   title,
		options: options,
		pages:   make(map[PageID]Page),
	}
}

func (p *Program) Console() *Console { return p.console }

func (p *Program) Title() string { return p.title }

func (p *Program) Breadcrumb() bool { return p.options.Breadcrumb }

// AddPage registers page under id, replacing any page already there.
func (p *Program) AddPage(id PageID, page Page) {
	p.pages[id] = page
}

// CurrentPage returns the page at the top of the history, or nil.
func (p *Program) CurrentPage() Page {
	if len(p.history) == 0 {
		return nil
	}
	return p.history[len(p.history)-1].page
}

func (p *Program) currentID() (PageID, bool) {
	if len(p.history) == 0 {
		return "", false
	}
	return p.history[len(p.history)-1].id, true
}

// NavigationEnabled reports whether there is a page to go back to.
func (p *Program) NavigationEnabled() bool {
	return len(p.history) > 1
}

// History returns the titles of the visited pages, oldest first.
func (p *Program) History() []string {
	titles := make([]string, len(p.history))
	for i, entry := range p.history {
		titles[i] = entry.page.Title()
	}
	return titles
}

// SetPage makes the page registered under id current without displaying it.
// Setting the page that is already current does nothing.
func (p *Program) SetPage(id PageID) (Page, error) {
	if current, ok := p.currentID(); ok && current == id {
		return p.CurrentPage(), nil
	}

	page, ok := p.pages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, id)
	}

	p.history = append(p.history, historyEntry{id: id, page: page})
	internal.GetInternalLogger().Debug("Page set", "page", id, "depth", len(p.history))
	return page, nil
}

// NavigateTo sets the page, clears the screen and displays it.
func (p *Program) NavigateTo(ctx context.Context, id PageID) error {
	page, err := p.SetPage(id)
	if err != nil {
		return err
	}
	p.console.Clear()
	return page.Display(ctx)
}

// NavigateBack leaves the current page and displays the previous one.
func (p *Program) NavigateBack(ctx context.Context) error {
	if !p.NavigationEnabled() {
		return ErrCannotNavigateBack
	}
	p.history = p.history[:len(p.history)-1]

	p.console.Clear()
	return p.CurrentPage().Display(ctx)
}

// NavigateHome drops everything but the first page and displays it.
func (p *Program) NavigateHome(ctx context.Context) error {
	if len(p.history) == 0 {
		return ErrNoCurrentPage
	}
	p.history = p.history[:1]

	p.console.Clear()
	return p.CurrentPage().Display(ctx)
}

// Run displays the current page. Errors and panics that escape the page are
// written to the console and logged, then returned.
func (p *Program) Run(ctx context.Context) (err error) {
	p.console.SetTitle(p.title)

	defer func() {
		if r := recover(); r != nil {
			internal.GetInternalLogger().Error("Page panicked", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("page panicked: %v", r)
		}
		if err != nil {
			p.report(err)
		}
		if constants.IsDebugMode() {
			_, _ = p.console.ReadString(localize(msgPressEnterToExit, nil))
		}
	}()

	page := p.CurrentPage()
	if page == nil {
		return ErrNoCurrentPage
	}
	return page.Display(ctx)
}

func (p *Program) report(err error) {
	internal.GetLogger().Error("Program ended with an error", "program", p.title, "error", err)
	p.console.WriteLineColor(internal.GetTheme().ErrorColor, err.Error())
}
