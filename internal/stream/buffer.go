package stream

import "errors"

// ErrBufferSize is returned when a write would grow an in-memory
// stream beyond what it can reasonably hold.
var ErrBufferSize = errors.New("in-memory stream capacity exceeded")

// maxBufferSize bounds Buffer growth. A write landing past it reports
// an error the way a full disk would, instead of attempting the
// allocation.
const maxBufferSize = 1 << 31

// Buffer is an in-memory Stream. It mirrors sparse-file semantics:
// seeking past the end is legal, and a write there zero-fills the gap.
// It exists for tests and for demoing the tool without touching disk.
type Buffer struct {
	buf      []byte
	pos      int64
	mode     Mode
	seekable bool
}

// NewBuffer returns a seekable read-write Buffer holding data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{buf: data, seekable: true}
}

// NewBufferWith returns a Buffer with an explicit mode and
// seekability, for exercising restricted streams.
func NewBufferWith(data []byte, mode Mode, seekable bool) *Buffer {
	return &Buffer{buf: data, mode: mode, seekable: seekable}
}

// Bytes returns the current contents.
func (b *Buffer) Bytes() []byte { return b.buf }

func (b *Buffer) Position() Position {
	if !b.seekable {
		return Unknown()
	}
	return At(b.pos)
}

func (b *Buffer) Length() (int64, error) {
	return int64(len(b.buf)), nil
}

func (b *Buffer) Seekable() bool { return b.seekable }

func (b *Buffer) Mode() Mode { return b.mode }

func (b *Buffer) SetPosition(off int64) error {
	if !b.seekable {
		return ErrNotSeekable
	}
	b.pos = off
	return nil
}

func (b *Buffer) Read(count int) ([]byte, error) {
	remain := b.remaining()
	if count > len(remain) {
		count = len(remain)
	}
	out := make([]byte, count)
	copy(out, remain)
	b.pos += int64(count)
	return out, nil
}

func (b *Buffer) ReadAll() ([]byte, error) {
	remain := b.remaining()
	out := make([]byte, len(remain))
	copy(out, remain)
	b.pos += int64(len(out))
	return out, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if end := b.pos + int64(len(p)); end > int64(len(b.buf)) {
		if end > maxBufferSize {
			return 0, ErrBufferSize
		}
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[b.pos:], p)
	b.pos += int64(len(p))
	return len(p), nil
}

func (b *Buffer) Sync() error { return nil }

func (b *Buffer) Close() error { return nil }

func (b *Buffer) remaining() []byte {
	if b.pos >= int64(len(b.buf)) {
		return nil
	}
	return b.buf[b.pos:]
}
