package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultColumns is the hexdump row width used when no configuration
// overrides it.
const DefaultColumns = 16

// Hexdump renders data as rows of hex byte pairs with a right-aligned
// decimal offset gutter and an ASCII column. The gutter starts at
// from, the offset the bytes were read at. Empty input renders
// nothing. columns must be a positive multiple of 2; anything else
// falls back to DefaultColumns.
func Hexdump(from int64, data []byte, columns int) string {
	if len(data) == 0 {
		return ""
	}
	if columns < 2 || columns%2 != 0 {
		columns = DefaultColumns
	}

	rows := (len(data) + columns - 1) / columns
	lastOffset := from + int64(columns*(rows-1))
	width := len(strconv.FormatInt(lastOffset, 10))
	if width < 4 {
		width = 4
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		start := row * columns
		end := start + columns
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]

		fmt.Fprintf(&b, "%*d:", width, from+int64(start))

		i := 0
		for ; i+1 < len(chunk); i += 2 {
			fmt.Fprintf(&b, " %02x%02x", chunk[i], chunk[i+1])
		}
		if i < len(chunk) {
			// Odd trailing byte; fill the space of its missing half.
			fmt.Fprintf(&b, " %02x  ", chunk[i])
		}
		for pad := (columns - len(chunk)) / 2; pad > 0; pad-- {
			b.WriteString("     ")
		}

		b.WriteString("  ")
		for _, c := range chunk {
			if c < 32 || c > 126 {
				c = '.'
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
