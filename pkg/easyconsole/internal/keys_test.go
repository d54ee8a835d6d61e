package internal

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDecoder(t *testing.T) {
	d := NewKeyDecoder(bufio.NewReader(strings.NewReader("a\x1b[A\r\x7f\x03\x1aé\x01 \x1b")))

	want := []KeyEvent{
		{Key: KeyRune, Rune: 'a'},
		{Key: KeyUnknown},
		{Key: KeyEnter},
		{Key: KeyBackspace},
		{Key: KeyInterrupt},
		{Key: KeyCancel},
		{Key: KeyRune, Rune: 'é'},
		{Key: KeyUnknown},
		{Key: KeyRune, Rune: ' '},
		{Key: KeyEscape},
	}
	for _, expected := range want {
		got, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := d.Next()
	require.ErrorIs(t, err, io.EOF)
}
