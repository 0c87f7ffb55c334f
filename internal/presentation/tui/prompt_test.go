package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emamoah/tapehead/internal/presentation/tui"
	"github.com/emamoah/tapehead/internal/session"
	"github.com/emamoah/tapehead/internal/stream"
)

func TestPrompt(t *testing.T) {
	cases := []struct {
		name  string
		state session.State
		want  string
	}{
		{
			"position only",
			session.State{Cursor: stream.At(67)},
			"[pos:67]> ",
		},
		{
			"after a read",
			session.State{Cursor: stream.At(15), LastRead: session.CountOf(5)},
			"[in:5, pos:15]> ",
		},
		{
			"after a write",
			session.State{Cursor: stream.At(9), LastWrite: session.CountOf(3)},
			"[out:3, pos:9]> ",
		},
		{
			"empty read is not shown",
			session.State{Cursor: stream.At(67), LastRead: session.CountOf(0)},
			"[pos:67]> ",
		},
		{
			"unknown position",
			session.State{Cursor: stream.Unknown()},
			"[pos:*]> ",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tui.Prompt(tc.state, false))
		})
	}
}

func TestBannerAndFileInfo(t *testing.T) {
	banner := tui.Banner("0.1.0", false)
	assert.Contains(t, banner, "TapeHead v0.1.0")
	assert.Contains(t, banner, "help")

	info := tui.FileInfo("x.bin", 67, stream.ModeReadWrite)
	assert.Equal(t, `File: "x.bin" (67 bytes) [RW]`, info)

	assert.Contains(t, tui.FileInfo("one", 1, stream.ModeReadOnly), "(1 byte) [RO]")
	assert.Contains(t, tui.FileInfo("big", 1<<20, stream.ModeWriteOnly), "1.0 MiB")
}

func TestHelpPlainText(t *testing.T) {
	help := tui.Help(false)
	for _, word := range []string{"read", "readb", "write", "writeb", "seek", "quit"} {
		assert.True(t, strings.Contains(help, word), "help is missing %q", word)
	}
}
