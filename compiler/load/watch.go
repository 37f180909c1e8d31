package load

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval is the quiet period that collapses a burst of file events
// into a single onChange call.
const debounceInterval = 250 * time.Millisecond

// Watch watches the given files or directories and invokes onChange with the
// sorted batch of changed paths once a burst of events has settled. It
// blocks until ctx is cancelled or the watcher fails; onChange runs on the
// watch goroutine, so a slow callback delays later batches.
func Watch(ctx context.Context, paths []string, onChange func([]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounceInterval)
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(debounceInterval)
			}
			timerC = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case <-timerC:
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			slices.Sort(batch)
			clear(pending)
			timer, timerC = nil, nil
			onChange(batch)
		}
	}
}
