package easyconsole

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

// Field is one named column of a record, shown by tables and lists.
type Field[T any] struct {
	Name  string
	Value func(T) any
}

func NewField[T any](name string, value func(T) any) Field[T] {
	return Field[T]{Name: name, Value: value}
}

// format renders the field of record with tabs expanded and other control
// characters removed, so the text is as wide as it measures.
func (f Field[T]) format(record T) string {
	if f.Value == nil {
		return constants.NullText
	}
	return internal.CleanText(FormatCell(f.Value(record)))
}

// FormatCell renders a value for display. Nil values print as "null",
// sequences as their elements joined with ", " and times in RFC 3339.
func FormatCell(v any) string {
	if isNilValue(v) {
		return constants.NullText
	}

	switch value := v.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	case time.Time:
		return value.Format(time.RFC3339)
	case *time.Time:
		return value.Format(time.RFC3339)
	case fmt.Stringer:
		return value.String()
	case error:
		return value.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatCell(rv.Index(i).Interface())
		}
		return strings.Join(parts, constants.ListSeparator)
	case reflect.Pointer:
		return FormatCell(rv.Elem().Interface())
	}

	return fmt.Sprint(v)
}
