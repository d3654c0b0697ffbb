package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/more/internal/cli"
)

func TestRun(t *testing.T) {
	t.Run("missing file exits non-zero with message", func(t *testing.T) {
		var stderr bytes.Buffer
		path := filepath.Join(t.TempDir(), "absent.txt")

		code := run(context.Background(), []string{path}, &stderr)

		assert.Equal(t, cli.ExitFailure, code)
		assert.Contains(t, stderr.String(), "more: reading "+path)
	})

	t.Run("invalid page size is a usage error", func(t *testing.T) {
		var stderr bytes.Buffer
		path := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o600))

		code := run(context.Background(), []string{"-n", "0", path}, &stderr)

		assert.Equal(t, cli.ExitUsage, code)
		assert.Contains(t, stderr.String(), "page size must be a positive integer")
	})

	t.Run("too many arguments", func(t *testing.T) {
		var stderr bytes.Buffer

		code := run(context.Background(), []string{"a", "b"}, &stderr)

		assert.Equal(t, cli.ExitFailure, code)
		assert.Contains(t, stderr.String(), "accepts at most 1 arg")
	})

	t.Run("version flag succeeds", func(t *testing.T) {
		var stderr bytes.Buffer

		code := run(context.Background(), []string{"--version"}, &stderr)

		assert.Equal(t, cli.ExitOK, code)
		assert.Empty(t, stderr.String())
	})
}
