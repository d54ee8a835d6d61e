package easyconsole

import (
	"context"
	"fmt"
	"time"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
)

func sameValueOption[T any](a, b ValueOption[T]) bool { return a.Equal(b) }

func sameName[O choice](a, b O) bool { return a.label() == b.label() }

// ValueMenu returns the value of the single option the user picks.
type ValueMenu[T any] struct {
	*menu[ValueOption[T]]
}

func NewValueMenu[T any](c *Console, settings MenuSettings) *ValueMenu[T] {
	return &ValueMenu[T]{newMenu(c, settings, selection(singleChoice{}), sameValueOption[T])}
}

func (m *ValueMenu[T]) Add(name string, value T) *ValueMenu[T] {
	m.AddOption(NewValueOption(name, value))
	return m
}

// SetDefault makes the option the answer to a blank line, adding it to the
// menu if needed.
func (m *ValueMenu[T]) SetDefault(name string, value T) *ValueMenu[T] {
	m.setDefault(NewValueOption(name, value))
	return m
}

func (m *ValueMenu[T]) Display(ctx context.Context) (T, error) {
	chosen, err := m.choose(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return chosen[0].Value, nil
}

// MultiChoiceMenu returns the values of every option the user lists, in the
// order given. Repeated answers give repeated values.
type MultiChoiceMenu[T any] struct {
	*menu[ValueOption[T]]
}

func NewMultiChoiceMenu[T any](c *Console, settings MenuSettings) *MultiChoiceMenu[T] {
	return &MultiChoiceMenu[T]{newMenu(c, settings, selection(multiChoice{}), sameValueOption[T])}
}

func (m *MultiChoiceMenu[T]) Add(name string, value T) *MultiChoiceMenu[T] {
	m.AddOption(NewValueOption(name, value))
	return m
}

func (m *MultiChoiceMenu[T]) SetDefault(name string, value T) *MultiChoiceMenu[T] {
	m.setDefault(NewValueOption(name, value))
	return m
}

func (m *MultiChoiceMenu[T]) Display(ctx context.Context) ([]T, error) {
	chosen, err := m.choose(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, len(chosen))
	for _, o := range chosen {
		values = append(values, o.Value)
	}
	return values, nil
}

// MultiChoiceMultiValueMenu offers options that each stand for several values
// and returns the values of all chosen options, flattened in order.
type MultiChoiceMultiValueMenu[T any] struct {
	*menu[MultiValueOption[T]]
}

func NewMultiChoiceMultiValueMenu[T any](c *Console, settings MenuSettings) *MultiChoiceMultiValueMenu[T] {
	equal := func(a, b MultiValueOption[T]) bool { return a.Equal(b) }
	return &MultiChoiceMultiValueMenu[T]{newMenu(c, settings, selection(multiChoice{}), equal)}
}

// Add returns ErrNoValues when no values are given.
func (m *MultiChoiceMultiValueMenu[T]) Add(name string, values ...T) error {
	option, err := NewMultiValueOption(name, values...)
	if err != nil {
		return fmt.Errorf("option %q: %w", name, err)
	}
	m.AddOption(option)
	return nil
}

func (m *MultiChoiceMultiValueMenu[T]) SetDefault(name string, values ...T) error {
	option, err := NewMultiValueOption(name, values...)
	if err != nil {
		return fmt.Errorf("default option %q: %w", name, err)
	}
	m.setDefault(option)
	return nil
}

func (m *MultiChoiceMultiValueMenu[T]) Display(ctx context.Context) ([]T, error) {
	chosen, err := m.choose(ctx)
	if err != nil {
		return nil, err
	}
	var values []T
	for _, o := range chosen {
		values = append(values, o.Values...)
	}
	return values, nil
}

// ActionMenu runs the action of the option the user picks and returns its
// error. Options are matched by name, since actions cannot be compared.
type ActionMenu struct {
	*menu[Option]
}

func NewActionMenu(c *Console, settings MenuSettings) *ActionMenu {
	return &ActionMenu{newMenu(c, settings, selection(singleChoice{}), sameName[Option])}
}

func (m *ActionMenu) Add(name string, action Action) *ActionMenu {
	m.AddOption(NewOption(name, action))
	return m
}

func (m *ActionMenu) SetDefault(name string, action Action) *ActionMenu {
	m.setDefault(NewOption(name, action))
	return m
}

func (m *ActionMenu) Display(ctx context.Context) error {
	chosen, err := m.choose(ctx)
	if err != nil {
		return err
	}
	action := chosen[0].Value
	if action == nil {
		return nil
	}
	return action(ctx)
}

// MultiChoiceActionMenu runs the actions of every chosen option, at most
// MaxConcurrentTasks at a time.
type MultiChoiceActionMenu struct {
	*menu[Option]

	MaxConcurrentTasks  int
	DelayBeforeEachTask time.Duration
}

func NewMultiChoiceActionMenu(c *Console, settings MenuSettings) *MultiChoiceActionMenu {
	return &MultiChoiceActionMenu{
		menu:                newMenu(c, settings, selection(multiChoice{}), sameName[Option]),
		MaxConcurrentTasks:  constants.DefaultMaxConcurrentTasks,
		DelayBeforeEachTask: constants.DefaultTaskStartDelay,
	}
}

func (m *MultiChoiceActionMenu) Add(name string, action Action) *MultiChoiceActionMenu {
	m.AddOption(NewOption(name, action))
	return m
}

func (m *MultiChoiceActionMenu) SetDefault(name string, action Action) *MultiChoiceActionMenu {
	m.setDefault(NewOption(name, action))
	return m
}

func (m *MultiChoiceActionMenu) Display(ctx context.Context) error {
	if m.MaxConcurrentTasks < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidConcurrency, m.MaxConcurrentTasks)
	}

	chosen, err := m.choose(ctx)
	if err != nil {
		return err
	}

	tasks := make([]Action, 0, len(chosen))
	for _, o := range chosen {
		tasks = append(tasks, o.Value)
	}

	return Dispatch(ctx, tasks, DispatchOptions{
		MaxConcurrentTasks:  m.MaxConcurrentTasks,
		DelayBeforeEachTask: m.DelayBeforeEachTask,
		OnProgress: func(running, queued int) {
			m.console.WriteLine(localizeCount(msgTasksRunning, running) + " " + localizeCount(msgTasksQueued, queued))
		},
	})
}
