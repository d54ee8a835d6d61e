package easyconsole

import (
	"context"
	"fmt"
	"slices"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

// choice is what the menu engine needs from an option type.
type choice interface {
	label() string
	isNil() bool
}

type MenuSettings struct {
	Prompt         string // Empty uses the localized "Choose an option" text
	AllowNilValues bool
}

// menu is the engine shared by every menu type. It owns the option list and
// the default, validates them, renders the numbered list and delegates the
// reading of indices to its selection strategy.
type menu[O choice] struct {
	console   *Console
	settings  MenuSettings
	selection selection
	options   []O
	def       *O
	equal     func(a, b O) bool
}

func newMenu[O choice](c *Console, settings MenuSettings, sel selection, equal func(a, b O) bool) *menu[O] {
	return &menu[O]{
		console:   c,
		settings:  settings,
		selection: sel,
		equal:     equal,
	}
}

func (m *menu[O]) AddOption(options ...O) {
	m.options = append(m.options, options...)
}

func (m *menu[O]) AddRange(options []O) {
	m.options = append(m.options, options...)
}

// Contains reports whether an option with exactly this name exists.
func (m *menu[O]) Contains(name string) bool {
	return slices.ContainsFunc(m.options, func(o O) bool { return o.label() == name })
}

func (m *menu[O]) Len() int {
	return len(m.options)
}

// Options returns a copy of the options in display order.
func (m *menu[O]) Options() []O {
	return slices.Clone(m.options)
}

// setDefault makes o the default, appending it when it is not yet listed.
func (m *menu[O]) setDefault(o O) {
	if m.indexOf(o) < 0 {
		m.options = append(m.options, o)
	}
	m.def = &o
}

func (m *menu[O]) indexOf(o O) int {
	return slices.IndexFunc(m.options, func(candidate O) bool { return m.equal(candidate, o) })
}

func (m *menu[O]) prompt() string {
	if m.settings.Prompt != "" {
		return m.settings.Prompt
	}
	return m.selection.defaultPrompt()
}

func (m *menu[O]) validate() error {
	if len(m.options) == 0 {
		return ErrNoOptions
	}
	if !m.settings.AllowNilValues && slices.ContainsFunc(m.options, func(o O) bool { return o.isNil() }) {
		return ErrNilOptionValue
	}
	if m.def != nil && m.indexOf(*m.def) < 0 {
		return ErrDefaultNotInOptions
	}
	return nil
}

func (m *menu[O]) render() {
	for i, o := range m.options {
		m.console.WriteLinef("%d. %s", i+1, o.label())
	}
}

// choose validates, renders and prompts, and returns the chosen options in
// the order the user gave them.
func (m *menu[O]) choose(ctx context.Context) ([]O, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("menu %q: %w", m.prompt(), err)
	}

	m.render()

	labels := make([]string, len(m.options))
	for i, o := range m.options {
		labels[i] = o.label()
	}

	request := selectionRequest{
		prompt:       m.prompt(),
		customPrompt: m.settings.Prompt != "",
		labels:       labels,
	}
	if m.def != nil {
		request.defaultIndex = m.indexOf(*m.def) + 1
	}

	indices, err := m.selection.read(m.console, request)
	if err != nil {
		return nil, err
	}

	chosen := make([]O, 0, len(indices))
	for _, index := range indices {
		chosen = append(chosen, m.options[index-1])
	}

	internal.GetInternalLogger().Debug("Menu answered", "prompt", request.prompt, "indices", indices)
	return chosen, nil
}
