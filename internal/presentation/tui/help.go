package tui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpText string

// Help returns the command catalog. When colored, it is rendered as
// terminal markdown; otherwise the raw text is returned, which is
// already readable as plain text.
func Help(colored bool) string {
	if !colored {
		return helpText
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return helpText
	}
	out, err := r.Render(helpText)
	if err != nil {
		return helpText
	}
	return out
}
