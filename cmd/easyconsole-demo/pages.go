package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole"
)

// greetingPage says hello and returns to the main page.
type greetingPage struct {
	easyconsole.PageBase
}

func newGreetingPage(title string, program *easyconsole.Program) *greetingPage {
	return &greetingPage{PageBase: easyconsole.NewPageBase(title, program)}
}

func (p *greetingPage) Display(ctx context.Context) error {
	p.RenderHeader()
	p.Console().WriteLinef("Hello from %s", p.Title())
	return pressEnterToGoHome(ctx, p.PageBase)
}

func pressEnterToGoHome(ctx context.Context, page easyconsole.PageBase) error {
	if _, err := page.Console().ReadString("Press [Enter] to navigate home"); err != nil {
		return err
	}
	return page.Program().NavigateHome(ctx)
}

// choresPage runs several chores at once through a multi choice action menu.
type choresPage struct {
	easyconsole.PageBase
}

func newChoresPage(program *easyconsole.Program) *choresPage {
	return &choresPage{PageBase: easyconsole.NewPageBase("Page 2", program)}
}

func (p *choresPage) chore(name string, d time.Duration) easyconsole.Action {
	return func(ctx context.Context) error {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return ctx.Err()
		}
		p.Console().WriteLineColor(easyconsole.GetTheme().SuccessColor, name+" finished")
		return nil
	}
}

func (p *choresPage) Display(ctx context.Context) error {
	p.RenderHeader()

	menu := easyconsole.NewMultiChoiceActionMenu(p.Console(), easyconsole.MenuSettings{Prompt: "Which chores should run?"})
	menu.MaxConcurrentTasks = 2
	menu.DelayBeforeEachTask = 100 * time.Millisecond
	menu.Add("Brew coffee", p.chore("Coffee", 1500*time.Millisecond)).
		Add("Toast bread", p.chore("Toast", 900*time.Millisecond)).
		Add("Boil eggs", p.chore("Eggs", 2*time.Second)).
		SetDefault("Sweep the floor", p.chore("Sweeping", 500*time.Millisecond))

	if err := menu.Display(ctx); err != nil {
		return err
	}

	total, err := easyconsole.ProcessMessage(ctx, p.Console(), "Counting dishes...", easyconsole.ProcessMessageOptions{ShowElapsed: true},
		func(ctx context.Context) (int, error) {
			time.Sleep(300 * time.Millisecond)
			return 3 + rand.IntN(10), nil
		})
	if err != nil {
		return err
	}
	p.Console().WriteLinef("%d dishes left to wash", total)

	return pressEnterToGoHome(ctx, p.PageBase)
}

type fruit string

const (
	apple   fruit = "Apple"
	banana  fruit = "Banana"
	coconut fruit = "Coconut"
	grape   fruit = "Grape"
)

func fruitOptions() []easyconsole.ValueOption[fruit] {
	var options []easyconsole.ValueOption[fruit]
	for _, f := range []fruit{apple, banana, coconut, grape} {
		options = append(options, easyconsole.NewValueOption(string(f), f))
	}
	return options
}

// inputPage demonstrates every typed prompt.
type inputPage struct {
	easyconsole.PageBase
	favoritePlace string
}

func newInputPage(program *easyconsole.Program) *inputPage {
	return &inputPage{PageBase: easyconsole.NewPageBase("Input", program), favoritePlace: "Home"}
}

type inputDemo func(ctx context.Context, c *easyconsole.Console) error

func (p *inputPage) demos() []easyconsole.ValueOption[inputDemo] {
	success := easyconsole.GetTheme().SuccessColor
	selected := func(c *easyconsole.Console, v any) {
		c.WriteLineColor(success, "You selected "+easyconsole.FormatCell(v))
	}

	return []easyconsole.ValueOption[inputDemo]{
		easyconsole.NewValueOption[inputDemo]("Read option", func(ctx context.Context, c *easyconsole.Console) error {
			v, err := easyconsole.ReadOption(ctx, c, "Alpha", "Bravo", "Delta", "Charlie")
			if err == nil {
				selected(c, v)
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("Read choice", func(ctx context.Context, c *easyconsole.Console) error {
			v, err := easyconsole.ReadChoice(ctx, c, "Select a fruit", fruitOptions()...)
			if err == nil {
				selected(c, v)
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("Read choice with default", func(ctx context.Context, c *easyconsole.Console) error {
			def := easyconsole.NewValueOption(string(banana), banana)
			v, err := easyconsole.ReadChoiceDefault(ctx, c, "Select a fruit", def, fruitOptions()...)
			if err == nil {
				selected(c, v)
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("Multi choice", func(ctx context.Context, c *easyconsole.Console) error {
			v, err := easyconsole.ReadMultiChoice(ctx, c, "Select multiple fruits", fruitOptions()...)
			if err == nil {
				selected(c, v)
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("Multi choice with default", func(ctx context.Context, c *easyconsole.Console) error {
			menu := easyconsole.NewMultiChoiceMenu[fruit](c, easyconsole.MenuSettings{Prompt: "Select multiple fruits"})
			menu.AddRange(fruitOptions())
			menu.SetDefault(string(banana), banana)
			v, err := menu.Display(ctx)
			if err == nil {
				selected(c, v)
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("Multi choice integers", func(ctx context.Context, c *easyconsole.Console) error {
			r := easyconsole.NewIntRange(-10000, 10000)
			v, err := c.ReadMultiChoiceInt(fmt.Sprintf("Select numbers between %d and %d (comma delimited)", r.Min, r.Max), r)
			if err == nil {
				parts := make([]string, len(v))
				for i, n := range v {
					parts[i] = fmt.Sprint(n)
				}
				c.WriteLineColor(success, "You selected "+strings.Join(parts, "; "))
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("String", func(ctx context.Context, c *easyconsole.Console) error {
			v, err := c.ReadString("What is your favorite place?")
			if err == nil {
				p.favoritePlace = v
				c.WriteLineColor(success, fmt.Sprintf("Your favorite place is '%s'", v))
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("String with default", func(ctx context.Context, c *easyconsole.Console) error {
			v, err := c.ReadStringWithDefault("What is your favorite place?", p.favoritePlace)
			if err == nil {
				p.favoritePlace = v
				c.WriteLineColor(success, fmt.Sprintf("Your favorite place is '%s'", v))
			}
			return err
		}),
		easyconsole.NewValueOption[inputDemo]("Date/time", func(ctx context.Context, c *easyconsole.Console) error {
			v, err := c.ReadDateTimeNullable("When did you last travel?", nil)
			if err == nil {
				selected(c, v)
			}
			return err
		}),
	}
}

func (p *inputPage) Display(ctx context.Context) error {
	p.RenderHeader()
	c := p.Console()

	for {
		demo, err := easyconsole.ReadChoice(ctx, c, "Select a demo", p.demos()...)
		if err != nil {
			return err
		}
		if err := demo(ctx, c); err != nil {
			return err
		}

		more, err := c.ReadBool("More Input Demos?", true)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	return pressEnterToGoHome(ctx, p.PageBase)
}
