package easyconsole

import (
	"fmt"
	"strings"
)

// BorderStyle selects the box-drawing glyphs of a Table.
type BorderStyle int

const (
	SingleLine BorderStyle = iota
	DoubleLine
	DoubleLineHorizontal
	DoubleLineVertical
)

// Positions inside a glyph set.
const (
	glyphVertical = iota
	glyphRightTee
	glyphTopRight
	glyphBottomLeft
	glyphBottomTee
	glyphTopTee
	glyphLeftTee
	glyphHorizontal
	glyphCross
	glyphBottomRight
	glyphTopLeft
)

var borderGlyphs = map[BorderStyle][]rune{
	SingleLine:           []rune("│┤┐└┴┬├─┼┘┌"),
	DoubleLine:           []rune("║╣╗╚╩╦╠═╬╝╔"),
	DoubleLineHorizontal: []rune("│╡╕╘╧╤╞═╪╛╒"),
	DoubleLineVertical:   []rune("║╢╖╙╨╥╟─╫╜╓"),
}

var borderNames = map[BorderStyle]string{
	SingleLine:           "single",
	DoubleLine:           "double",
	DoubleLineHorizontal: "double-horizontal",
	DoubleLineVertical:   "double-vertical",
}

func (s BorderStyle) glyph(position int) rune {
	glyphs, ok := borderGlyphs[s]
	if !ok {
		glyphs = borderGlyphs[SingleLine]
	}
	return glyphs[position]
}

func (s BorderStyle) String() string {
	if name, ok := borderNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(s))
}

// ParseBorderStyle accepts the names printed by String, case-insensitively.
func ParseBorderStyle(name string) (BorderStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for style, candidate := range borderNames {
		if candidate == name {
			return style, nil
		}
	}
	return SingleLine, fmt.Errorf("unknown border style %q", name)
}
