package xrotate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLumberjack_Write(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "app.log")

	r, err := NewLumberjack(filename,
		nil,
		WithMaxSize(1),
		WithMaxBackups(2),
		WithMaxAge(1),
		WithCompress(false),
		WithLocalTime(true),
	)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("first line\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "first line\n", string(data))
}

func TestNewLumberjack_Validation(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		opts     []Option
		wantErr  error
	}{
		{"empty filename", "", nil, ErrEmptyFilename},
		{"zero size", filepath.Join(dir, "a.log"), []Option{WithMaxSize(0)}, ErrInvalidMaxSize},
		{"size too large", filepath.Join(dir, "a.log"), []Option{WithMaxSize(maxSizeMB + 1)}, ErrInvalidMaxSize},
		{"negative backups", filepath.Join(dir, "a.log"), []Option{WithMaxBackups(-1)}, ErrInvalidMaxBackups},
		{"negative age", filepath.Join(dir, "a.log"), []Option{WithMaxAge(-1)}, ErrInvalidMaxAge},
		{"no cleanup policy", filepath.Join(dir, "a.log"), []Option{WithMaxBackups(0), WithMaxAge(0)}, ErrNoCleanupPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLumberjack(tt.filename, tt.opts...)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestLumberjack_Rotate(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "rotate.log")

	r, err := NewLumberjack(filename, WithCompress(false))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("before rotate\n"))
	require.NoError(t, err)
	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("after rotate\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	backups := 0
	for _, e := range entries {
		if e.Name() != "rotate.log" && strings.HasPrefix(e.Name(), "rotate-") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "after rotate\n", string(data))
}

func TestLumberjack_Closed(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "closed.log"))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Close(), ErrClosed)

	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
}
