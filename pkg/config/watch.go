package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tperrors "github.com/odvcencio/tabpanel/pkg/errors"
)

// WatchDebounce is how long Watch waits after the last write before
// reloading. Editors often write a file in several steps.
var WatchDebounce = 150 * time.Millisecond

// Watch reloads path with LoadFromPath after it changes and passes the
// result to onChange. It watches the parent directory so files replaced by
// rename are still seen. Watch blocks until ctx is done and then returns nil.
// onChange runs on the watching goroutine.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	abs, err := filepath.Abs(expandHomeDir(path))
	if err != nil {
		return tperrors.Wrap(err, tperrors.ErrCodeConfigLoad, "resolving config path")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return tperrors.Wrap(err, tperrors.ErrCodeConfigLoad, "creating config watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return tperrors.Wrap(err, tperrors.ErrCodeConfigLoad, "watching config directory").
			WithContext("path", abs)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
			} else {
				timer.Reset(WatchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadFromPath(abs)
			onChange(cfg, err)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, tperrors.Wrap(err, tperrors.ErrCodeConfigLoad, "watching config"))
		}
	}
}
