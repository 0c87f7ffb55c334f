package tapehead_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emamoah/tapehead"
)

func TestRunEndsCleanlyOnCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch")
	require.NoError(t, os.WriteFile(path, []byte("tape"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context ends the session before the first prompt
	// read, so Run returns without touching stdin.
	require.NoError(t, tapehead.Run(ctx, path))
}

func TestRunMissingFile(t *testing.T) {
	err := tapehead.Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
