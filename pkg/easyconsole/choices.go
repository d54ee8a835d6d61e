package easyconsole

import "context"

// ReadOption offers each value as an option labelled with its formatted text.
func ReadOption[T any](ctx context.Context, c *Console, values ...T) (T, error) {
	options := make([]ValueOption[T], len(values))
	for i, v := range values {
		options[i] = NewValueOption(FormatCell(v), v)
	}
	return ReadValueOption(ctx, c, options...)
}

func ReadValueOption[T any](ctx context.Context, c *Console, options ...ValueOption[T]) (T, error) {
	m := NewValueMenu[T](c, MenuSettings{AllowNilValues: true})
	m.AddRange(options)
	return m.Display(ctx)
}

// ReadChoice prints prompt on its own line and lets the user pick one of the
// named values. It stands in for enum prompts.
func ReadChoice[T any](ctx context.Context, c *Console, prompt string, options ...ValueOption[T]) (T, error) {
	c.WriteLine(prompt)
	return ReadValueOption(ctx, c, options...)
}

// ReadChoiceDefault is ReadChoice where a blank line picks def. def is listed
// last if it is not among options.
func ReadChoiceDefault[T any](ctx context.Context, c *Console, prompt string, def ValueOption[T], options ...ValueOption[T]) (T, error) {
	m := NewValueMenu[T](c, MenuSettings{Prompt: prompt, AllowNilValues: true})
	m.AddRange(options)
	m.SetDefault(def.Name, def.Value)
	return m.Display(ctx)
}

func ReadMultiChoice[T any](ctx context.Context, c *Console, prompt string, options ...ValueOption[T]) ([]T, error) {
	c.WriteLine(prompt)
	m := NewMultiChoiceMenu[T](c, MenuSettings{AllowNilValues: true})
	m.AddRange(options)
	return m.Display(ctx)
}
