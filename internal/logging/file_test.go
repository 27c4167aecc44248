package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileWriter_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hotbarscroll.log")

	w, err := NewFileWriter(path, 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestFileWriter_RotatesPastMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hotbarscroll.log")

	w, err := NewFileWriter(path, 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	w.maxSize = 8

	_, err = w.Write([]byte("0123456\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abc\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "hotbarscroll.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
}

func TestFileWriter_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotbarscroll.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	w, err := NewFileWriter(path, 0, 0)
	require.NoError(t, err)
	_, err = w.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	cfg := DefaultConfig()
	cfg.Format = "json"

	logger, cleanup, err := NewWithFile(cfg, path)
	require.NoError(t, err)
	logger.Info().Str("component", "test").Msg("written to file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written to file"`)
}
