package watchers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, dir string) <-chan struct{} {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	calls := make(chan struct{}, 16)
	go WatchStaging(ctx, dir, 20*time.Millisecond, func() {
		calls <- struct{}{}
	})
	return calls
}

func TestWatchStagingRunsOnIcon(t *testing.T) {
	dir := t.TempDir()
	calls := startWatch(t, dir)

	// the watcher registers asynchronously, so keep dropping icons until it reacts
	deadline := time.After(5 * time.Second)
	for i := 0; ; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("icon-%d.svg", i)), []byte("<svg/>"), 0o644))
		select {
		case <-calls:
			return
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("run was never called")
		}
	}
}

func TestWatchStagingIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	calls := startWatch(t, dir)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("notes-%d.txt", i)), []byte("x"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-calls:
		t.Fatal("run called for a non-icon file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchStagingStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- WatchStaging(ctx, dir, time.Millisecond, func() {})
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchStagingMissingDir(t *testing.T) {
	err := WatchStaging(context.Background(), filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {})
	assert.Error(t, err)
}

func TestIsIconEvent(t *testing.T) {
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/tmp/in/a.svg", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/tmp/in/a.svg", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/tmp/in/a.svg", Op: fsnotify.Remove}, false},
		{fsnotify.Event{Name: "/tmp/in/a.svg", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/tmp/in/a.txt", Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isIconEvent(tt.ev), tt.ev.String())
	}
}
