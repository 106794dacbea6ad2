package preset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/gradpick"
)

// ErrWatcherClosed is returned by Watch when the file watcher stops
// delivering events before ctx is done.
var ErrWatcherClosed = errors.New("preset: watcher closed")

// DefaultDebounce is the quiet period Watch waits for after the last file
// event before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads the preset at path whenever it changes and passes the
// result to fn, with the load error if parsing failed. Bursts of events
// within debounce are coalesced into one reload. Watch blocks until ctx is
// done and returns ctx.Err(), or ErrWatcherClosed if the watcher shuts
// down first.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are picked up.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(File, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving preset path: %w", err)
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}
	gradpick.Logger().Debug("preset: watching", "path", absPath)

	return watchLoop(ctx, w.Events, w.Errors, absPath, debounce, fn)
}

// watchLoop debounces events for absPath and reloads it until ctx is done
// or either channel closes.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, absPath string, debounce time.Duration, fn func(File, error)) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				return ErrWatcherClosed
			}
			if eventAbs, _ := filepath.Abs(event.Name); eventAbs != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			f, err := Load(absPath)
			if err != nil {
				gradpick.Logger().Warn("preset: reload failed", "path", absPath, "err", err)
			}
			fn(f, err)

		case err, ok := <-errs:
			if !ok {
				return ErrWatcherClosed
			}
			gradpick.Logger().Warn("preset: watcher error", "err", err)
		}
	}
}
