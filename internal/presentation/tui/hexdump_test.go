package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emamoah/tapehead/internal/presentation/tui"
)

func TestHexdumpFullRow(t *testing.T) {
	out := tui.Hexdump(0, []byte("0123456789abcdef"), 16)
	assert.Equal(t,
		"   0: 3031 3233 3435 3637 3839 6162 6364 6566  0123456789abcdef\n",
		out)
}

func TestHexdumpPartialRowWithOddByte(t *testing.T) {
	out := tui.Hexdump(0, []byte("abc"), 16)
	// One pair, one half-filled pair, six missing pairs of padding.
	assert.Equal(t,
		"   0: 6162 63  "+strings.Repeat("     ", 6)+"  abc\n",
		out)
}

func TestHexdumpMultipleRowsAndGutterWidth(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = 'A'
	}
	out := tui.Hexdump(9998, data, 16)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	// The gutter is sized by the last row's offset.
	assert.True(t, strings.HasPrefix(lines[0], " 9998:"), "got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "10014:"), "got %q", lines[1])
	assert.True(t, strings.HasSuffix(lines[0], "AAAAAAAAAAAAAAAA"))
	assert.True(t, strings.HasSuffix(lines[1], "AAAA"))
}

func TestHexdumpNonPrintablesRenderDots(t *testing.T) {
	out := tui.Hexdump(0, []byte{0x00, 0x41, 0x7f, 0x20}, 16)
	assert.True(t, strings.HasSuffix(out, "  .A. \n"), "got %q", out)
}

func TestHexdumpEmpty(t *testing.T) {
	assert.Empty(t, tui.Hexdump(0, nil, 16))
	assert.Empty(t, tui.Hexdump(42, []byte{}, 16))
}

func TestHexdumpBadColumnsFallsBack(t *testing.T) {
	data := []byte("0123456789abcdef")
	assert.Equal(t, tui.Hexdump(0, data, 16), tui.Hexdump(0, data, 7))
	assert.Equal(t, tui.Hexdump(0, data, 16), tui.Hexdump(0, data, 0))
}
