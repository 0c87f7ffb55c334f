package stream

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// File is a Stream backed by an os.File.
type File struct {
	f        *os.File
	mode     Mode
	seekable bool
}

// Open opens path with the widest access the caller is permitted:
// read-write first, then write-only, then read-only. The resulting
// mode is captured on the handle and never re-derived.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err == nil {
		return newFile(f, ModeReadWrite), nil
	}
	if !errors.Is(err, fs.ErrPermission) {
		return nil, err
	}

	f, err = os.OpenFile(path, os.O_WRONLY, 0)
	if err == nil {
		return newFile(f, ModeWriteOnly), nil
	}
	if !errors.Is(err, fs.ErrPermission) {
		return nil, err
	}

	f, err = os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return newFile(f, ModeReadOnly), nil
}

// OpenReadOnly opens path for reading only, regardless of what the
// permissions would allow.
func OpenReadOnly(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return newFile(f, ModeReadOnly), nil
}

func newFile(f *os.File, mode Mode) *File {
	// Seekability probe. Pipes and some character devices reject
	// even a no-op seek.
	_, err := f.Seek(0, io.SeekCurrent)
	return &File{f: f, mode: mode, seekable: err == nil}
}

// Name returns the path the file was opened with.
func (s *File) Name() string { return s.f.Name() }

func (s *File) Position() Position {
	if !s.seekable {
		return Unknown()
	}
	off, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return Unknown()
	}
	return At(off)
}

func (s *File) Length() (int64, error) {
	fi, err := s.f.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (s *File) Seekable() bool { return s.seekable }

func (s *File) Mode() Mode { return s.mode }

func (s *File) SetPosition(off int64) error {
	if !s.seekable {
		return ErrNotSeekable
	}
	_, err := s.f.Seek(off, io.SeekStart)
	return err
}

func (s *File) Read(count int) ([]byte, error) {
	// Allocation is bounded by what the stream actually yields, not
	// by count, so an absurd count stays an ordinary short read.
	return io.ReadAll(io.LimitReader(s.f, int64(count)))
}

func (s *File) ReadAll() ([]byte, error) {
	return io.ReadAll(s.f)
}

func (s *File) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

// Sync flushes to the medium. Some stream types (pipes) reject sync;
// callers treat the result as best effort.
func (s *File) Sync() error { return s.f.Sync() }

func (s *File) Close() error { return s.f.Close() }
