package watchers

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hoppxi/iconify/internal/icons"
)

// WatchStaging calls run once icons stop arriving in dir for the debounce
// period. run is never called concurrently with itself. It blocks until ctx
// is done or the watcher fails.
func WatchStaging(ctx context.Context, dir string, debounce time.Duration, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Printf("watching %s for icons", dir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isIconEvent(ev) {
				pending = time.After(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)

		case <-pending:
			pending = nil
			run()
		}
	}
}

func isIconEvent(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}
	return strings.HasSuffix(filepath.Base(ev.Name), icons.SourceExt)
}
