// Package stream abstracts the opened file, device, or pipe that a
// session drives. It exposes position, length, seekability, and the
// read/write primitives; everything above it treats the handle as an
// opaque byte stream.
package stream

import (
	"errors"
	"strconv"
)

// ErrNotSeekable is returned when a positioning operation is requested
// on a stream that does not support seeking (pipes, some devices).
var ErrNotSeekable = errors.New("stream not seekable")

// Mode describes the access the stream was opened with. It is captured
// once at open time and trusted for the rest of the session.
type Mode int

const (
	ModeReadWrite Mode = iota
	ModeReadOnly
	ModeWriteOnly
)

func (m Mode) String() string {
	switch m {
	case ModeReadOnly:
		return "RO"
	case ModeWriteOnly:
		return "WO"
	default:
		return "RW"
	}
}

// Readable reports whether reads are permitted.
func (m Mode) Readable() bool { return m != ModeWriteOnly }

// Writable reports whether writes are permitted.
func (m Mode) Writable() bool { return m != ModeReadOnly }

// Position is a byte offset into a stream, or unknown when the stream
// is not seekable. Modeling "unknown" explicitly keeps arithmetic on a
// nonexistent offset from compiling into silent nonsense.
type Position struct {
	off   int64
	known bool
}

// At returns a known position at the given offset.
func At(off int64) Position { return Position{off: off, known: true} }

// Unknown returns the position of a non-seekable stream.
func Unknown() Position { return Position{} }

// Offset returns the byte offset and whether it is known.
func (p Position) Offset() (int64, bool) { return p.off, p.known }

// Known reports whether the offset is known.
func (p Position) Known() bool { return p.known }

// String renders the position for the prompt: the decimal offset, or
// "*" when unknown.
func (p Position) String() string {
	if !p.known {
		return "*"
	}
	return strconv.FormatInt(p.off, 10)
}

// Stream is the handle a session holds for its whole lifetime. The
// session owns it exclusively; nothing else mutates the underlying
// file while a session is live.
type Stream interface {
	// Position reports the current offset, or Unknown for
	// non-seekable streams.
	Position() Position

	// Length reports the current stream length. Callers must not
	// cache it across commands: writes can extend the stream.
	Length() (int64, error)

	// Seekable reports whether SetPosition is supported.
	Seekable() bool

	// Mode reports the access mode captured at open time.
	Mode() Mode

	// SetPosition moves the cursor to an absolute offset. Offsets
	// beyond the current length are legal; a later write there may
	// extend the stream.
	SetPosition(off int64) error

	// Read reads up to count bytes from the current position. A
	// short result at end of stream is not an error.
	Read(count int) ([]byte, error)

	// ReadAll reads from the current position to end of stream,
	// determined as the read progresses.
	ReadAll() ([]byte, error)

	// Write writes p at the current position and returns the number
	// of bytes written.
	Write(p []byte) (int, error)

	// Sync flushes buffered state to the underlying medium where
	// that is meaningful.
	Sync() error

	Close() error
}
