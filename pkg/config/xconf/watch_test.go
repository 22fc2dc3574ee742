package xconf

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_NotWatchable(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testJSON), FormatJSON)
	require.NoError(t, err)

	_, err = Watch(cfg, nil)
	assert.ErrorIs(t, err, ErrNotWatchable)
}

func TestWatch_ReloadOnWrite(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	reloaded := make(chan int, 4)
	w, err := Watch(cfg, func(c Config, err error) {
		if err == nil {
			reloaded <- c.Client().Int("cache.capacity")
		}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("cache:\n  capacity: 99\n"), 0o600))

	select {
	case got := <-reloaded:
		assert.Equal(t, 99, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	called := make(chan struct{}, 1)
	w, err := Watch(cfg, func(Config, error) { called <- struct{}{} }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path+".bak", []byte("x"), 0o600))

	select {
	case <-called:
		t.Fatal("callback should not fire for unrelated files")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_RunWaitsForCallback(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	var calls atomic.Int32
	w, err := Watch(cfg, func(Config, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		finished.Store(true)
	}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("cache:\n  capacity: 1\n"), 0o600))
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}

	cancel()
	select {
	case <-done:
		t.Fatal("Run returned while a callback was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after callback finished")
	}
	assert.True(t, finished.Load())

	// Run 返回后不再触发回调
	before := calls.Load()
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  capacity: 2\n"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, calls.Load())
}
