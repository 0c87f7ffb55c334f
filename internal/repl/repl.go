// Package repl runs the interactive loop: prompt, line acquisition,
// dispatch, rendering. Prompts and messages go to stderr so that the
// raw bytes a read produces can be piped cleanly from stdout.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/emamoah/tapehead/internal/command"
	"github.com/emamoah/tapehead/internal/config"
	"github.com/emamoah/tapehead/internal/logging"
	"github.com/emamoah/tapehead/internal/presentation/tui"
	"github.com/emamoah/tapehead/internal/session"
	"github.com/emamoah/tapehead/internal/stream"
)

// Options configures a session.
type Options struct {
	// Path is the name the stream was opened with, for the banner.
	Path string

	// Version is the release version shown in the banner.
	Version string

	// Stream is the exclusively held handle the session drives.
	Stream stream.Stream

	// In, Out, Err default to stdin, stdout, stderr. Out carries
	// read payloads only.
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Config config.Config
	Logger *slog.Logger

	// Color enables prompt/help styling. The caller decides, since
	// only it knows whether stderr is a terminal.
	Color bool
}

// Run executes the session until quit, end of input, or cancellation.
// Command errors are reported and the loop continues; only the
// returned error, if any, is fatal.
func Run(ctx context.Context, opts Options) error {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errw := opts.Err
	if errw == nil {
		errw = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	fmt.Fprintln(errw, tui.Banner(opts.Version, opts.Color))
	if size, err := opts.Stream.Length(); err == nil {
		fmt.Fprintf(errw, "%s\n\n", tui.FileInfo(opts.Path, size, opts.Stream.Mode()))
	}

	exec := session.New(opts.Stream, session.WithLogger(logger))
	reader := bufio.NewReader(newInterruptibleReader(in, ctx.Done()))

	for ctx.Err() == nil {
		fmt.Fprint(errw, tui.Prompt(exec.State(), opts.Color))

		line, rerr := reader.ReadString('\n')
		if rerr != nil && line == "" {
			// End of input or interrupt: clean session end.
			fmt.Fprintln(errw)
			break
		}
		if rerr != nil {
			// Final line without a newline; move off it.
			fmt.Fprintln(errw)
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		cmd, err := command.Parse(line)
		if err != nil {
			fmt.Fprintf(errw, "error: %v. Enter \"help\" for usage.\n", err)
			continue
		}

		res, err := exec.Execute(cmd)
		if err != nil {
			logger.Debug("command failed", "line", line, "error", err)
			if errors.Is(err, stream.ErrNotSeekable) {
				fmt.Fprintf(errw, "error: %v. Use `.` in the seek argument.\n", err)
			} else {
				fmt.Fprintf(errw, "error: %v\n", err)
			}
			continue
		}

		if res.Quit {
			break
		}
		render(res, out, errw, opts)
	}

	if opts.Stream.Mode().Writable() {
		// Best effort; pipes and some devices reject sync.
		if err := opts.Stream.Sync(); err != nil {
			logger.Debug("sync failed", "error", err)
		}
	}
	return nil
}

func render(res session.Result, out, errw io.Writer, opts Options) {
	switch {
	case res.Help:
		fmt.Fprint(errw, tui.Help(opts.Color))

	case res.Hex:
		from, _ := res.HexFrom.Offset()
		fmt.Fprint(out, tui.Hexdump(from, res.Payload, opts.Config.Columns))

	case res.Payload != nil:
		out.Write(res.Payload)
		if len(res.Payload) > 0 {
			// Read output rarely ends in a newline; put the next
			// prompt on its own line.
			fmt.Fprintln(errw)
		}
	}
}
