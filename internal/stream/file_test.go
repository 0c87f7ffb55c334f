package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stream.bin")
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	return path
}

func TestOpenReadWrite(t *testing.T) {
	path := tempFile(t, []byte("hello"))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ModeReadWrite, f.Mode())
	assert.True(t, f.Seekable())
	assert.Equal(t, At(0), f.Position())

	length, err := f.Length()
	require.NoError(t, err)
	assert.EqualValues(t, 5, length)
}

func TestOpenFallsBackToReadOnly(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	path := tempFile(t, []byte("hello"))
	require.NoError(t, os.Chmod(path, 0o444))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, ModeReadOnly, f.Mode())
}

func TestOpenFallsBackToWriteOnly(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	path := tempFile(t, []byte("hello"))
	require.NoError(t, os.Chmod(path, 0o222))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, ModeWriteOnly, f.Mode())
}

func TestOpenReadOnlyForcesMode(t *testing.T) {
	path := tempFile(t, []byte("hello"))
	f, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, ModeReadOnly, f.Mode())
}

func TestFileReadWriteRoundTrip(t *testing.T) {
	path := tempFile(t, []byte("0123456789"))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.SetPosition(3))
	n, err := f.Write([]byte("XYZ"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, f.SetPosition(3))
	data, err := f.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("XYZ"), data)
	assert.Equal(t, At(6), f.Position())
}

func TestFileHugeCountIsShortRead(t *testing.T) {
	path := tempFile(t, []byte("abc"))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	// A count far past the stream length must degrade to a short
	// read, never to an allocation of that size.
	const huge = int(^uint(0) >> 1)
	data, err := f.Read(huge)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
	assert.Equal(t, At(3), f.Position())
}

func TestFileShortReadAtEnd(t *testing.T) {
	path := tempFile(t, []byte("abc"))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := f.Read(100)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	data, err = f.Read(100)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileWriteBeyondEndExtends(t *testing.T) {
	path := tempFile(t, []byte("ab"))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.SetPosition(5))
	_, err = f.Write([]byte("z"))
	require.NoError(t, err)

	length, err := f.Length()
	require.NoError(t, err)
	assert.EqualValues(t, 6, length)
}

func TestPipeIsNotSeekable(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()

	f := newFile(r, ModeReadOnly)
	defer f.Close()

	assert.False(t, f.Seekable())
	assert.False(t, f.Position().Known())
	assert.ErrorIs(t, f.SetPosition(0), ErrNotSeekable)

	_, err = w.Write([]byte("ping"))
	require.NoError(t, err)
	data, err := f.Read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("ping"), data)
}
