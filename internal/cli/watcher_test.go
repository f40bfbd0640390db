package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	t.Run("burst of writes coalesces into one signal", func(t *testing.T) {
		dir := t.TempDir()

		watcher, err := NewWatcher(WatcherConfig{
			RootDir:  dir,
			Debounce: 100 * time.Millisecond,
		})
		require.NoError(t, err)
		defer watcher.Stop()

		events, err := watcher.Start()
		require.NoError(t, err)

		// A burst of writes within the debounce window
		for i := 0; i < 5; i++ {
			writeSource(t, dir, "service.ts", "class Service {}")
			time.Sleep(5 * time.Millisecond)
		}

		select {
		case <-events:
		case <-time.After(2 * time.Second):
			t.Fatal("expected a change signal")
		}

		// The burst must not produce a second signal
		select {
		case <-events:
			t.Fatal("burst produced more than one signal")
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("changes in newly created subdirectories are seen", func(t *testing.T) {
		dir := t.TempDir()

		watcher, err := NewWatcher(WatcherConfig{
			RootDir:  dir,
			Debounce: 50 * time.Millisecond,
		})
		require.NoError(t, err)
		defer watcher.Stop()

		events, err := watcher.Start()
		require.NoError(t, err)

		subDir := filepath.Join(dir, "services")
		require.NoError(t, os.MkdirAll(subDir, 0755))

		// Creating the directory itself triggers a signal; drain it
		select {
		case <-events:
		case <-time.After(2 * time.Second):
			t.Fatal("expected a signal for directory creation")
		}

		writeSource(t, subDir, "nested.ts", "class Nested {}")

		select {
		case <-events:
		case <-time.After(2 * time.Second):
			t.Fatal("expected a signal for the nested write")
		}
	})

	t.Run("stop closes the signal channel", func(t *testing.T) {
		dir := t.TempDir()

		watcher, err := NewWatcher(WatcherConfig{
			RootDir:  dir,
			Debounce: 50 * time.Millisecond,
		})
		require.NoError(t, err)

		events, err := watcher.Start()
		require.NoError(t, err)

		require.NoError(t, watcher.Stop())

		select {
		case _, open := <-events:
			assert.False(t, open)
		case <-time.After(2 * time.Second):
			t.Fatal("signal channel did not close")
		}
	})

	t.Run("missing root directory fails to start", func(t *testing.T) {
		watcher, err := NewWatcher(WatcherConfig{
			RootDir:  filepath.Join(t.TempDir(), "missing"),
			Debounce: 50 * time.Millisecond,
		})
		require.NoError(t, err)
		defer watcher.Stop()

		_, err = watcher.Start()
		require.Error(t, err)
	})
}
