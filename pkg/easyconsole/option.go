package easyconsole

import (
	"context"
	"reflect"
	"slices"
)

// ValueOption is a labelled value offered by a menu. Name is what the user sees,
// Value is what the menu returns when the option is chosen.
type ValueOption[T any] struct {
	Name  string
	Value T
}

func NewValueOption[T any](name string, value T) ValueOption[T] {
	return ValueOption[T]{Name: name, Value: value}
}

// Equal compares both the name and the value.
func (o ValueOption[T]) Equal(other ValueOption[T]) bool {
	return o.Name == other.Name && reflect.DeepEqual(o.Value, other.Value)
}

func (o ValueOption[T]) String() string { return o.Name }

func (o ValueOption[T]) label() string { return o.Name }

func (o ValueOption[T]) isNil() bool { return isNilValue(o.Value) }

// Action is the work attached to an action menu option.
type Action func(ctx context.Context) error

// Option is a menu option that performs an action when chosen.
type Option = ValueOption[Action]

func NewOption(name string, action Action) Option {
	return Option{Name: name, Value: action}
}

// MultiValueOption is a single menu entry that stands for several values.
type MultiValueOption[T any] struct {
	Name   string
	Values []T
}

// NewMultiValueOption returns ErrNoValues when values is empty.
func NewMultiValueOption[T any](name string, values ...T) (MultiValueOption[T], error) {
	if len(values) == 0 {
		return MultiValueOption[T]{}, ErrNoValues
	}
	return MultiValueOption[T]{Name: name, Values: slices.Clone(values)}, nil
}

func (o MultiValueOption[T]) Equal(other MultiValueOption[T]) bool {
	return o.Name == other.Name && reflect.DeepEqual(o.Values, other.Values)
}

func (o MultiValueOption[T]) String() string { return o.Name }

func (o MultiValueOption[T]) label() string { return o.Name }

func (o MultiValueOption[T]) isNil() bool {
	if len(o.Values) == 0 {
		return true
	}
	for _, v := range o.Values {
		if isNilValue(v) {
			return true
		}
	}
	return false
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
