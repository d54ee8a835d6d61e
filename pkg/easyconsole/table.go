package easyconsole

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

// ColumnInfo describes the measured width of one table column.
type ColumnInfo struct {
	Name      string
	DataWidth int // Widest of the label and every formatted cell
	MaxWidth  int
}

// RenderWidth is the width the column is drawn at.
func (c ColumnInfo) RenderWidth() int {
	return min(c.DataWidth, c.MaxWidth)
}

// Table draws records as a boxed grid spanning the console width, with a
// title box on top and one column per field.
type Table[T any] struct {
	Title               string
	Rows                []T
	BorderStyle         BorderStyle
	EnableRowSeparators bool
	EnableWordWrap      bool

	TitleColor  Color
	HeaderColor Color
	RowColor    Color
	BorderColor Color

	fields  []Field[T]
	columns []ColumnInfo
}

// NewTable measures rows once; later changes to Rows are drawn but do not
// resize the columns. At least one field is required.
func NewTable[T any](title string, rows []T, fields ...Field[T]) (*Table[T], error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	theme := internal.GetTheme()
	t := &Table[T]{
		Title:       title,
		Rows:        rows,
		fields:      slices.Clone(fields),
		BorderStyle: SingleLine,
		TitleColor:  theme.TitleColor,
		HeaderColor: theme.HeaderColor,
		RowColor:    theme.RowColor,
		BorderColor: theme.BorderColor,
	}

	for _, field := range fields {
		width := internal.StringWidth(flatten(internal.CleanText(field.Name)))
		for _, row := range rows {
			width = max(width, internal.StringWidth(flatten(field.format(row))))
		}
		t.columns = append(t.columns, ColumnInfo{
			Name:      field.Name,
			DataWidth: width,
			MaxWidth:  constants.DefaultColumnMaxWidth,
		})
	}
	return t, nil
}

// Fields returns the table's fields in column order.
func (t *Table[T]) Fields() []Field[T] {
	return slices.Clone(t.fields)
}

func (t *Table[T]) ColumnWidths() []ColumnInfo {
	return append([]ColumnInfo(nil), t.columns...)
}

func (t *Table[T]) SetColumnMaxWidth(name string, width int) error {
	for i := range t.columns {
		if t.columns[i].Name == name {
			t.columns[i].MaxWidth = max(width, 1)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// SetMaxColumnWidth applies width to every column.
func (t *Table[T]) SetMaxColumnWidth(width int) {
	for i := range t.columns {
		t.columns[i].MaxWidth = max(width, 1)
	}
}

// Render draws the table starting at the beginning of a line.
func (t *Table[T]) Render(c *Console) {
	tr := &tableRenderer[T]{table: t, console: c, width: c.Width()}
	tr.render()
}

type tableRenderer[T any] struct {
	table   *Table[T]
	console *Console
	width   int
}

func (r *tableRenderer[T]) glyph(position int) rune {
	return r.table.BorderStyle.glyph(position)
}

func (r *tableRenderer[T]) border(text string) {
	r.console.WriteColor(r.table.BorderColor, text)
}

func (r *tableRenderer[T]) borderGlyph(position int) {
	r.border(string(r.glyph(position)))
}

func (r *tableRenderer[T]) rule(count int) {
	r.border(internal.Repeat(r.glyph(glyphHorizontal), count))
}

func (r *tableRenderer[T]) render() {
	t := r.table
	title := flatten(internal.CleanText(t.Title))
	titleLength := max(min(internal.StringWidth(title), r.width-2), 0)

	r.borderGlyph(glyphTopLeft)
	r.rule(titleLength)
	r.border(string(r.glyph(glyphTopRight)) + "\n")
	r.borderGlyph(glyphVertical)
	r.console.WriteColor(t.TitleColor, internal.FitWidth(title, titleLength))
	r.border(string(r.glyph(glyphVertical)) + "\n")

	r.renderHeaderBorder(titleLength)

	for _, column := range t.columns {
		r.borderGlyph(glyphVertical)
		r.console.WriteColor(t.HeaderColor, internal.FitWidth(flatten(internal.CleanText(column.Name)), column.RenderWidth()))
	}
	r.endOfLine(' ', r.glyph(glyphVertical))

	if t.EnableRowSeparators {
		r.renderSeparator()
	}

	for i, row := range t.Rows {
		r.renderRow(row)
		if t.EnableRowSeparators && i < len(t.Rows)-1 {
			r.renderSeparator()
		}
	}

	for i, column := range t.columns {
		if i == 0 {
			r.borderGlyph(glyphBottomLeft)
		} else {
			r.borderGlyph(glyphBottomTee)
		}
		r.rule(column.RenderWidth())
	}
	r.endOfLine(r.glyph(glyphHorizontal), r.glyph(glyphBottomRight))
}

// renderHeaderBorder draws the line under the title box. Where the title
// box's right edge meets this line it places a tee, or a cross when a column
// boundary falls on the same cell.
func (r *tableRenderer[T]) renderHeaderBorder(titleLength int) {
	columns := r.table.columns
	edge := titleLength + 1
	intersection := false
	visited := false

	for i, column := range columns {
		switch {
		case intersection:
			r.borderGlyph(glyphCross)
			intersection = false
		case i == 0:
			r.borderGlyph(glyphLeftTee)
		default:
			r.borderGlyph(glyphTopTee)
		}

		cursor := r.console.CursorColumn()
		width := column.RenderWidth()
		endOfColumn := cursor + width

		if (endOfColumn > titleLength && cursor <= edge) || (i == len(columns)-1 && !visited) {
			visited = true
			r.rule(edge - cursor)

			if r.console.CursorColumn() == endOfColumn {
				intersection = true
			} else {
				r.borderGlyph(glyphBottomTee)
			}
			r.rule(endOfColumn - r.console.CursorColumn())
		} else {
			r.rule(width)
		}
	}

	if intersection {
		r.borderGlyph(glyphBottomTee)
	}
	r.endOfLine(r.glyph(glyphHorizontal), r.glyph(glyphTopRight))
}

func (r *tableRenderer[T]) renderSeparator() {
	for i, column := range r.table.columns {
		if i == 0 {
			r.borderGlyph(glyphLeftTee)
		} else {
			r.borderGlyph(glyphCross)
		}
		r.rule(column.RenderWidth())
	}
	r.endOfLine(r.glyph(glyphHorizontal), r.glyph(glyphRightTee))
}

// renderRow draws one record. With word wrap the row grows downwards until
// every cell is shown; without it cells are cut at the column width.
func (r *tableRenderer[T]) renderRow(row T) {
	t := r.table
	cells := make([][]string, len(t.columns))
	height := 1
	for j, column := range t.columns {
		text := t.fields[j].format(row)
		if t.EnableWordWrap {
			cells[j] = wrapCell(text, column.RenderWidth())
		} else {
			cells[j] = []string{flatten(text)}
		}
		height = max(height, len(cells[j]))
	}

	for line := 0; line < height; line++ {
		for j, column := range t.columns {
			r.borderGlyph(glyphVertical)
			text := ""
			if line < len(cells[j]) {
				text = cells[j][line]
			}
			r.console.WriteColor(t.RowColor, internal.FitWidth(text, column.RenderWidth()))
		}
		r.endOfLine(' ', r.glyph(glyphVertical))
	}
}

// endOfLine pads to the second to last column of the console and closes the
// line with end.
func (r *tableRenderer[T]) endOfLine(pad, end rune) {
	if cursor := r.console.CursorColumn(); cursor < r.width-2 {
		r.border(internal.Repeat(pad, r.width-2-cursor))
	}
	r.border(string(end) + "\n")
}

func flatten(text string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
}

// wrapCell breaks text on spaces, then cuts any piece still wider than width.
func wrapCell(text string, width int) []string {
	var lines []string
	for _, line := range internal.WrapWords(text, width) {
		for internal.StringWidth(line) > width {
			head, tail := internal.CutWidth(line, width)
			lines = append(lines, head)
			line = tail
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
