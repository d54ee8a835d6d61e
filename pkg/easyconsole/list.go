package easyconsole

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
)

// List prints records one field per line, pausing after every PageSize
// records to ask whether to continue.
type List[T any] struct {
	Items    []T
	Fields   []Field[T]
	PageSize int
}

func NewList[T any](items []T, pageSize int, fields ...Field[T]) (*List[T], error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	return &List[T]{Items: items, Fields: fields, PageSize: pageSize}, nil
}

// NewDefaultList pages every 100 records.
func NewDefaultList[T any](items []T, fields ...Field[T]) *List[T] {
	return &List[T]{Items: items, Fields: fields, PageSize: constants.DefaultListPageSize}
}

// Render stops early, without error, when the user declines to see more.
func (l *List[T]) Render(ctx context.Context, c *Console) error {
	pageSize := l.PageSize
	if pageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	total := len(l.Items)
	for i, item := range l.Items {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.WriteLine("")
		for _, field := range l.Fields {
			c.WriteLinef("%s: %s", field.Name, field.format(item))
		}
		c.WriteLine("")

		shown := i + 1
		if shown%pageSize != 0 || shown == total {
			continue
		}

		more, err := c.ReadBool(localize(msgDisplayMore, map[string]interface{}{
			"Shown": shown,
			"Total": total,
		}), true)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
