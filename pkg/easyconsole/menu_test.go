package easyconsole

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMenuDisplay(t *testing.T) {
	c, out := newTestConsole("2\n")
	m := NewValueMenu[string](c, MenuSettings{})
	m.Add("Apple", "apple").Add("Banana", "banana")

	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "banana", got)
	assert.Equal(t, "1. Apple\n2. Banana\nChoose an option: ", out.String())
}

func TestValueMenuCustomPrompt(t *testing.T) {
	c, out := newTestConsole("1\n")
	m := NewValueMenu[int](c, MenuSettings{Prompt: "Pick a number:"})
	m.Add("One", 1)

	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Pick a number: ")
}

func TestValueMenuDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"blank picks default", "\n", "banana"},
		{"explicit answer", "1\n", "apple"},
		{"out of range reprompts", "7\n\n", "banana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			m := NewValueMenu[string](c, MenuSettings{Prompt: "Fruit"})
			m.Add("Apple", "apple").Add("Banana", "banana").SetDefault("Banana", "banana")

			got, err := m.Display(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 2, m.Len())
			assert.Contains(t, out.String(), "Fruit  [2. Banana]: ")
		})
	}
}

func TestSetDefaultAppendsMissingOption(t *testing.T) {
	c, out := newTestConsole("\n")
	m := NewValueMenu[string](c, MenuSettings{})
	m.Add("Apple", "apple").SetDefault("Cherry", "cherry")

	assert.True(t, m.Contains("Cherry"))
	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cherry", got)
	assert.Contains(t, out.String(), "2. Cherry\n")
}

func TestMenuValidation(t *testing.T) {
	t.Run("no options", func(t *testing.T) {
		c, out := newTestConsole("1\n")
		_, err := NewValueMenu[string](c, MenuSettings{}).Display(context.Background())
		require.ErrorIs(t, err, ErrNoOptions)
		assert.Empty(t, out.String())
	})

	t.Run("nil value", func(t *testing.T) {
		c, _ := newTestConsole("1\n")
		m := NewValueMenu[*int](c, MenuSettings{})
		m.Add("nothing", nil)
		_, err := m.Display(context.Background())
		require.ErrorIs(t, err, ErrNilOptionValue)
	})

	t.Run("nil allowed", func(t *testing.T) {
		c, _ := newTestConsole("1\n")
		m := NewValueMenu[*int](c, MenuSettings{AllowNilValues: true})
		m.Add("nothing", nil)
		got, err := m.Display(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nil action", func(t *testing.T) {
		c, _ := newTestConsole("1\n")
		m := NewActionMenu(c, MenuSettings{})
		m.Add("nothing", nil)
		require.ErrorIs(t, m.Display(context.Background()), ErrNilOptionValue)
	})
}

func TestSingleChoiceSuggestsCloseLabel(t *testing.T) {
	c, out := newTestConsole("banan\n2\n")
	m := NewValueMenu[string](c, MenuSettings{})
	m.Add("Apple", "apple").Add("Banana", "banana")

	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "banana", got)
	assert.Contains(t, out.String(), "Did you mean 2. Banana?\n")
}

func TestMenuCancelled(t *testing.T) {
	c, _ := newTestConsole("")
	m := NewValueMenu[string](c, MenuSettings{})
	m.Add("Apple", "apple")

	_, err := m.Display(context.Background())
	require.ErrorIs(t, err, ErrInputCancelled)
}

func TestMenuHonoursCancelledContext(t *testing.T) {
	c, out := newTestConsole("1\n")
	m := NewValueMenu[string](c, MenuSettings{})
	m.Add("Apple", "apple")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Display(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestMultiChoiceMenu(t *testing.T) {
	c, out := newTestConsole("3,1,3\n")
	m := NewMultiChoiceMenu[string](c, MenuSettings{})
	m.Add("A", "a").Add("B", "b").Add("C", "c")

	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "c"}, got)
	assert.Contains(t, out.String(), "Choose options (comma delimited): ")
}

func TestMultiChoiceMenuDefault(t *testing.T) {
	c, out := newTestConsole("\n")
	m := NewMultiChoiceMenu[string](c, MenuSettings{Prompt: "Fruits"})
	m.Add("A", "a").SetDefault("B", "b")

	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)
	assert.Contains(t, out.String(), "Fruits\nChoose options (comma delimited)  [2. B]: ")
}

func TestMultiChoiceMultiValueMenu(t *testing.T) {
	c, _ := newTestConsole("2,1\n")
	m := NewMultiChoiceMultiValueMenu[int](c, MenuSettings{})
	require.NoError(t, m.Add("low", 1, 2))
	require.NoError(t, m.Add("high", 8, 9))
	require.ErrorIs(t, m.Add("none"), ErrNoValues)

	got, err := m.Display(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 1, 2}, got)
}

func TestActionMenuRunsChosenAction(t *testing.T) {
	c, _ := newTestConsole("2\n")
	var ran []string
	m := NewActionMenu(c, MenuSettings{})
	m.Add("first", func(context.Context) error { ran = append(ran, "first"); return nil }).
		Add("second", func(context.Context) error { ran = append(ran, "second"); return nil })

	require.NoError(t, m.Display(context.Background()))
	assert.Equal(t, []string{"second"}, ran)
}

func TestActionMenuPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	c, _ := newTestConsole("1\n")
	m := NewActionMenu(c, MenuSettings{})
	m.Add("explode", func(context.Context) error { return boom })

	require.ErrorIs(t, m.Display(context.Background()), boom)
}

func TestActionMenuDefaultMatchesByName(t *testing.T) {
	c, _ := newTestConsole("\n")
	var ran bool
	action := func(context.Context) error { ran = true; return nil }

	m := NewActionMenu(c, MenuSettings{})
	m.Add("go", action).SetDefault("go", action)

	assert.Equal(t, 1, m.Len())
	require.NoError(t, m.Display(context.Background()))
	assert.True(t, ran)
}
