package easyconsole

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

type pet struct {
	ID   int
	Name string
}

func petFields() []Field[pet] {
	return []Field[pet]{
		NewField("Id", func(p pet) any { return p.ID }),
		NewField("Name", func(p pet) any { return p.Name }),
	}
}

func newPetTable(t *testing.T, title string, rows ...pet) *Table[pet] {
	t.Helper()
	table, err := NewTable(title, rows, petFields()...)
	require.NoError(t, err)
	return table
}

func petTable(t *testing.T) *Table[pet] {
	return newPetTable(t, "Pets", pet{1, "Fido"}, pet{2, "Steve"})
}

func renderLines(t *testing.T, render func(c *Console)) []string {
	t.Helper()
	c, out := newTestConsole("")
	render(c)
	text := out.String()
	require.True(t, strings.HasSuffix(text, "\n"))
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestFormatCell(t *testing.T) {
	var nilSlice []int
	var nilString *string
	name := "Rex"
	when := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"nil slice", nilSlice, "null"},
		{"nil pointer", nilString, "null"},
		{"pointer", &name, "Rex"},
		{"string", "plain", "plain"},
		{"bytes", []byte("hi"), "hi"},
		{"ints", []int{1, 2, 3}, "1, 2, 3"},
		{"array", [2]string{"a", "b"}, "a, b"},
		{"nested nil", []any{nil, "x"}, "null, x"},
		{"time", when, "2024-03-04T05:06:07Z"},
		{"time pointer", &when, "2024-03-04T05:06:07Z"},
		{"stringer", NewIntRange(1, 2), "(1, 2)"},
		{"number", 42, "42"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.in))
		})
	}
}

func TestTableColumnWidths(t *testing.T) {
	table := petTable(t)
	widths := table.ColumnWidths()
	require.Len(t, widths, 2)

	assert.Equal(t, ColumnInfo{Name: "Id", DataWidth: 2, MaxWidth: 20}, widths[0])
	assert.Equal(t, ColumnInfo{Name: "Name", DataWidth: 5, MaxWidth: 20}, widths[1])

	require.NoError(t, table.SetColumnMaxWidth("Name", 3))
	assert.Equal(t, 3, table.ColumnWidths()[1].RenderWidth())
	require.ErrorIs(t, table.SetColumnMaxWidth("Age", 3), ErrColumnNotFound)
}

func TestTableRender(t *testing.T) {
	fill := func(glyph string, n int) string { return strings.Repeat(glyph, n) }
	pad := testWidth - 2 - 9

	lines := renderLines(t, petTable(t).Render)
	assert.Equal(t, []string{
		"┌────┐",
		"│Pets│",
		"├──┬─┴───" + fill("─", pad) + "┐",
		"│Id│Name " + fill(" ", pad) + "│",
		"│1 │Fido " + fill(" ", pad) + "│",
		"│2 │Steve" + fill(" ", pad) + "│",
		"└──┴─────" + fill("─", pad) + "┘",
	}, lines)
}

func TestTableTitleEdgeOnColumnBoundary(t *testing.T) {
	table := newPetTable(t, "Ab", pet{1, "Fido"})
	lines := renderLines(t, table.Render)

	// The title box closes at column 3, where the second column begins.
	assert.True(t, strings.HasPrefix(lines[2], "├──┼────"), lines[2])
}

func TestTableTitleEdgeOnFirstFillCell(t *testing.T) {
	table := newPetTable(t, "Abc", pet{1, "Fido"})
	lines := renderLines(t, table.Render)

	assert.True(t, strings.HasPrefix(lines[2], "├──┬┴────"), lines[2])
}

func TestTableTitleWiderThanColumns(t *testing.T) {
	table := newPetTable(t, "A rather long title", pet{1, "Fido"})
	lines := renderLines(t, table.Render)

	edge := []rune(lines[2])[20]
	assert.Equal(t, '┴', edge)
}

func TestTableTruncatesWithoutWordWrap(t *testing.T) {
	table := petTable(t)
	require.NoError(t, table.SetColumnMaxWidth("Name", 3))

	lines := renderLines(t, table.Render)
	assert.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[5], "│2 │Ste "), lines[5])
}

func TestTableWordWrap(t *testing.T) {
	table := newPetTable(t, "Notes", pet{1, "big red dog"})
	require.NoError(t, table.SetColumnMaxWidth("Name", 7))
	table.EnableWordWrap = true

	lines := renderLines(t, table.Render)
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[4], "│1 │big red "), lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "│  │dog     "), lines[5])
}

func TestTableWordWrapCutsLongWords(t *testing.T) {
	assert.Equal(t, []string{"Ste", "ve"}, wrapCell("Steve", 3))
	assert.Equal(t, []string{""}, wrapCell("", 3))
}

func TestTableWordWrapKeepsSpacing(t *testing.T) {
	assert.Equal(t, []string{"a   b"}, wrapCell("a   b", 10))
	assert.Equal(t, []string{"  indented"}, wrapCell("  indented", 10))
	assert.Equal(t, []string{"one  two", "three"}, wrapCell("one  two   three", 9))
}

func TestTableExpandsTabsInCells(t *testing.T) {
	table, err := NewTable("T", []string{"a\tb", "x\x1by"}, NewField("V", func(s string) any { return s }))
	require.NoError(t, err)
	assert.Equal(t, 6, table.ColumnWidths()[0].DataWidth)

	lines := renderLines(t, table.Render)
	for _, line := range lines[2:] {
		assert.Equal(t, testWidth-1, internal.StringWidth(line), line)
	}
	assert.True(t, strings.HasPrefix(lines[4], "│a    b "), lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "│xy "), lines[5])
}

func TestNewTableRequiresFields(t *testing.T) {
	_, err := NewTable[pet]("Empty", []pet{{1, "Fido"}})
	require.ErrorIs(t, err, ErrNoFields)
}

func TestTableFieldsAreCopied(t *testing.T) {
	table := petTable(t)
	fields := table.Fields()
	fields[0] = NewField[pet]("Changed", nil)

	assert.Equal(t, "Id", table.Fields()[0].Name)
	lines := renderLines(t, table.Render)
	assert.True(t, strings.HasPrefix(lines[3], "│Id│Name "), lines[3])
}

func TestTableRowSeparators(t *testing.T) {
	table := petTable(t)
	table.EnableRowSeparators = true

	lines := renderLines(t, table.Render)
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[4], "├──┼─────"), lines[4])
	assert.True(t, strings.HasSuffix(lines[4], "┤"), lines[4])
	assert.True(t, strings.HasPrefix(lines[6], "├──┼─────"), lines[6])
}

func TestTableBorderStyles(t *testing.T) {
	tests := []struct {
		style  BorderStyle
		top    string
		bottom string
	}{
		{SingleLine, "┌────┐", "└"},
		{DoubleLine, "╔════╗", "╚"},
		{DoubleLineHorizontal, "╒════╕", "╘"},
		{DoubleLineVertical, "╓────╖", "╙"},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			table := petTable(t)
			table.BorderStyle = tt.style
			lines := renderLines(t, table.Render)
			assert.Equal(t, tt.top, lines[0])
			assert.True(t, strings.HasPrefix(lines[len(lines)-1], tt.bottom))
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	style, err := ParseBorderStyle(" Double ")
	require.NoError(t, err)
	assert.Equal(t, DoubleLine, style)

	_, err = ParseBorderStyle("dotted")
	require.Error(t, err)
}
