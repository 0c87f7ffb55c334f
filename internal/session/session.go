// Package session owns the live REPL state: the cursor and the last
// read/write counters. The Executor dispatches parsed commands to the
// stream, commits state only when a command fully succeeds, and hands
// the presentation layer a Result record to render.
package session

import (
	"errors"
	"log/slog"

	"github.com/emamoah/tapehead/internal/command"
	"github.com/emamoah/tapehead/internal/logging"
	"github.com/emamoah/tapehead/internal/seekexpr"
	"github.com/emamoah/tapehead/internal/stream"
)

var (
	// ErrPermissionDenied is returned for a write command on a
	// stream opened without write access. It is checked up front
	// from the mode captured at open time, never inferred from a
	// failed write.
	ErrPermissionDenied = errors.New("permission denied: stream is read-only")

	// ErrTerminated is returned when a command is dispatched after
	// quit.
	ErrTerminated = errors.New("session terminated")
)

// IOError wraps a failure reported by the underlying stream. The
// session state is never updated on one: the position actually reached
// by a partially failed transfer is not reliably known, and reporting
// "nothing happened" is safer than guessing.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// Count is an optional byte count. The zero value is "not shown".
type Count struct {
	N   int64
	Set bool
}

// CountOf returns a set Count.
func CountOf(n int64) Count { return Count{N: n, Set: true} }

// State is the mutable session record. Exactly one of LastRead and
// LastWrite is set after a read or write; seek, help, and an empty
// line clear both. A failed command leaves the whole record untouched.
type State struct {
	Cursor    stream.Position
	LastRead  Count
	LastWrite Count
}

// Result is what a successfully executed command hands the
// presentation layer.
type Result struct {
	// State is the session state after the command.
	State State

	// Payload holds the bytes a read produced; nil for non-reads.
	// A zero-length non-nil payload is a successful empty read.
	Payload []byte

	// Hex marks the payload for hexdump rendering (readb).
	Hex bool

	// HexFrom is the offset the hexdump gutter starts at.
	HexFrom stream.Position

	// Help requests the command catalog.
	Help bool

	// Quit marks the end of the session.
	Quit bool
}

// Executor drives commands against a single exclusively held stream.
// It is strictly synchronous: one command runs to completion before
// the next is accepted.
type Executor struct {
	st         stream.Stream
	state      State
	logger     *slog.Logger
	terminated bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger attaches a logger for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) { e.logger = logger }
}

// New returns an Executor whose cursor is initialized from the opened
// stream.
func New(st stream.Stream, opts ...Option) *Executor {
	e := &Executor{
		st:     st,
		state:  State{Cursor: st.Position()},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a copy of the current session state.
func (e *Executor) State() State { return e.state }

// Terminated reports whether quit has been executed.
func (e *Executor) Terminated() bool { return e.terminated }

// Execute runs one parsed command. On error the session state is
// exactly as it was before the call; errors never terminate the
// session.
func (e *Executor) Execute(cmd command.Command) (Result, error) {
	if e.terminated {
		return Result{}, ErrTerminated
	}

	// next is the candidate state; it is committed only on success.
	next := e.state

	switch cmd.Kind {
	case command.Nop:
		next.LastRead, next.LastWrite = Count{}, Count{}
		return e.commit(next), nil

	case command.Help:
		next.LastRead, next.LastWrite = Count{}, Count{}
		res := e.commit(next)
		res.Help = true
		return res, nil

	case command.Quit:
		e.terminated = true
		return Result{State: e.state, Quit: true}, nil

	case command.Seek:
		target, err := e.position(cmd.Seek)
		if err != nil {
			return Result{}, err
		}
		next.Cursor = target
		next.LastRead, next.LastWrite = Count{}, Count{}
		e.logger.Debug("seek", "target", target)
		return e.commit(next), nil

	case command.Read, command.ReadHex:
		return e.read(cmd, next)

	default: // command.Write, command.WriteHex
		return e.write(cmd, next)
	}
}

func (e *Executor) read(cmd command.Command, next State) (Result, error) {
	target, err := e.position(cmd.Seek)
	if err != nil {
		return Result{}, err
	}

	var data []byte
	if cmd.HasCount {
		data, err = e.st.Read(int(cmd.Count))
	} else {
		data, err = e.st.ReadAll()
	}
	if err != nil {
		return Result{}, &IOError{Op: "read", Err: err}
	}
	if data == nil {
		data = []byte{}
	}

	next.Cursor = e.st.Position()
	next.LastRead = CountOf(int64(len(data)))
	next.LastWrite = Count{}
	e.logger.Debug("read", "from", target, "count", len(data))

	res := e.commit(next)
	res.Payload = data
	res.Hex = cmd.Kind == command.ReadHex
	res.HexFrom = target
	return res, nil
}

func (e *Executor) write(cmd command.Command, next State) (Result, error) {
	if !e.st.Mode().Writable() {
		return Result{}, ErrPermissionDenied
	}

	payload := cmd.Bytes
	if cmd.Kind == command.Write {
		payload = []byte(cmd.Text)
	}

	if _, err := e.position(cmd.Seek); err != nil {
		return Result{}, err
	}
	n, err := e.st.Write(payload)
	if err != nil {
		return Result{}, &IOError{Op: "write", Err: err}
	}

	next.Cursor = e.st.Position()
	next.LastWrite = CountOf(int64(n))
	next.LastRead = Count{}
	e.logger.Debug("write", "count", n)
	return e.commit(next), nil
}

// position resolves a seek expression against the live stream and
// moves the stream there. The current position and length are queried
// fresh each time: a previous write may have extended the stream.
// `.` performs no seek at all, which is what keeps it legal on
// non-seekable streams.
func (e *Executor) position(expr seekexpr.Expr) (stream.Position, error) {
	var length int64
	if expr.Kind == seekexpr.FromEnd {
		n, err := e.st.Length()
		if err != nil {
			return stream.Position{}, &IOError{Op: "stat", Err: err}
		}
		length = n
	}

	target, err := expr.Resolve(e.st.Position(), length)
	if err != nil {
		return stream.Position{}, err
	}

	if expr.Kind != seekexpr.Current {
		off, _ := target.Offset()
		if err := e.st.SetPosition(off); err != nil {
			if errors.Is(err, stream.ErrNotSeekable) {
				return stream.Position{}, err
			}
			return stream.Position{}, &IOError{Op: "seek", Err: err}
		}
	}
	return target, nil
}

func (e *Executor) commit(next State) Result {
	e.state = next
	return Result{State: next}
}
