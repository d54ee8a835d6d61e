package easyconsole

import (
	"context"
	"strings"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
)

// Page is one screen of a Program.
type Page interface {
	Title() string
	Display(ctx context.Context) error
}

// PageBase carries the title and owning program of a page. Embed it and call
// RenderHeader at the start of Display.
type PageBase struct {
	title   string
	program *Program
}

func NewPageBase(title string, program *Program) PageBase {
	return PageBase{title: title, program: program}
}

func (p PageBase) Title() string { return p.title }

func (p PageBase) Program() *Program { return p.program }

func (p PageBase) Console() *Console { return p.program.console }

// RenderHeader prints the breadcrumb, or the page title when breadcrumbs are
// off or this is the first page, followed by a rule.
func (p PageBase) RenderHeader() {
	c := p.program.console
	if p.program.Breadcrumb() && p.program.NavigationEnabled() {
		c.WriteLine(strings.Join(p.program.History(), constants.BreadcrumbSeparator))
	} else {
		c.WriteLine(p.title)
	}
	c.WriteLine(constants.HeaderRule)
}

// Display renders the header only.
func (p PageBase) Display(context.Context) error {
	p.RenderHeader()
	return nil
}

// MenuPage is a page whose body is an action menu. Once there is somewhere to
// go back to, a "Go back" option is appended.
type MenuPage struct {
	PageBase
	Menu *ActionMenu
}

func NewMenuPage(title string, program *Program, options ...Option) *MenuPage {
	m := NewActionMenu(program.console, MenuSettings{})
	m.AddRange(options)
	return &MenuPage{PageBase: NewPageBase(title, program), Menu: m}
}

func (p *MenuPage) Display(ctx context.Context) error {
	p.RenderHeader()

	goBack := localize(msgGoBack, nil)
	if p.program.NavigationEnabled() && !p.Menu.Contains(goBack) {
		p.Menu.Add(goBack, func(ctx context.Context) error {
			return p.program.NavigateBack(ctx)
		})
	}

	return p.Menu.Display(ctx)
}
