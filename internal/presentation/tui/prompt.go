// Package tui renders everything the user sees around the byte
// streams themselves: the prompt, the startup banner, hex dumps, and
// the help catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/emamoah/tapehead/internal/session"
)

// Prompt renders the REPL prompt for a session state, e.g.
// "[in:5, pos:15]> ". The in/out segments appear only after a read or
// write that moved bytes; the position shows "*" on non-seekable
// streams.
func Prompt(st session.State, colored bool) string {
	var b strings.Builder
	b.WriteByte('[')
	if st.LastRead.Set && st.LastRead.N > 0 {
		fmt.Fprintf(&b, "in:%d, ", st.LastRead.N)
	}
	if st.LastWrite.Set && st.LastWrite.N > 0 {
		fmt.Fprintf(&b, "out:%d, ", st.LastWrite.N)
	}
	b.WriteString("pos:")
	b.WriteString(st.Cursor.String())
	b.WriteString("]> ")

	if !colored {
		return b.String()
	}
	p := termenv.ColorProfile()
	return termenv.String(b.String()).Foreground(p.Color("#818cf8")).String()
}
