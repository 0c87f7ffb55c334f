package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/emamoah/tapehead/internal/stream"
)

// Banner returns the startup banner shown before the first prompt.
func Banner(version string, colored bool) string {
	title := "TapeHead v" + version
	if colored {
		p := termenv.ColorProfile()
		title = termenv.String(title).Foreground(p.Color("#a78bfa")).Bold().String()
	}
	return title + "\n\nEnter \"help\" for more information.\n"
}

// FileInfo returns the opened-stream summary line, e.g.
// `File: "disk.img" (1,073,741,824 bytes, 1.0 GiB) [RW]`.
func FileInfo(path string, size int64, mode stream.Mode) string {
	sizeStr := fmt.Sprintf("%s bytes", humanize.Comma(size))
	if size == 1 {
		sizeStr = "1 byte"
	}
	if size >= 1024 {
		sizeStr += ", " + humanize.IBytes(uint64(size))
	}
	return fmt.Sprintf("File: %q (%s) [%s]", path, sizeStr, mode)
}
