package easyconsole

import (
	"bytes"
	"strings"
)

const testWidth = 40

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewConsoleWith(strings.NewReader(input), out, ConsoleOptions{Width: testWidth}), out
}
