package internal

import (
	"bufio"
	"unicode/utf8"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyCancel    // Ctrl+Z or Ctrl+D, the end-of-input gestures
	KeyInterrupt // Ctrl+C while the terminal is raw
)

type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeyDecoder turns raw terminal bytes into key events. It shares the bufio.Reader
// used for line reads so no buffered input is lost between the two modes.
type KeyDecoder struct {
	r *bufio.Reader
}

func NewKeyDecoder(r *bufio.Reader) *KeyDecoder {
	return &KeyDecoder{r: r}
}

func (d *KeyDecoder) Next() (KeyEvent, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, nil
	case 0x7f, 0x08:
		return KeyEvent{Key: KeyBackspace}, nil
	case 0x1a, 0x04:
		return KeyEvent{Key: KeyCancel}, nil
	case 0x03:
		return KeyEvent{Key: KeyInterrupt}, nil
	case 0x1b:
		return d.escape(), nil
	}

	if b < 0x20 {
		return KeyEvent{Key: KeyUnknown}, nil
	}

	if b < utf8.RuneSelf {
		return KeyEvent{Key: KeyRune, Rune: rune(b)}, nil
	}

	if err := d.r.UnreadByte(); err != nil {
		return KeyEvent{}, err
	}
	r, _, err := d.r.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}
	if r == utf8.RuneError {
		return KeyEvent{Key: KeyUnknown}, nil
	}
	return KeyEvent{Key: KeyRune, Rune: r}, nil
}

// escape consumes CSI/SS3 sequences that already sit in the buffer. A lone ESC
// is reported as KeyEscape.
func (d *KeyDecoder) escape() KeyEvent {
	if d.r.Buffered() == 0 {
		return KeyEvent{Key: KeyEscape}
	}

	next, err := d.r.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return KeyEvent{Key: KeyEscape}
	}
	_, _ = d.r.ReadByte()

	for d.r.Buffered() > 0 {
		c, err := d.r.ReadByte()
		if err != nil || (c >= 0x40 && c <= 0x7e) {
			break
		}
	}
	return KeyEvent{Key: KeyUnknown}
}
