package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notely/pkg/core"
)

// Watch reports modifications of the storage file made by anyone,
// including other notely processes sharing the same state directory.
//
// The parent directory is watched rather than the file itself because
// atomic writes replace the file's inode on every Set.
func (f *File) Watch(ctx context.Context) (<-chan core.StorageEvent, error) {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.StorageEvent, 16)
	f.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer f.setWatcherActive(false)
		defer watcher.Close()
		return f.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		f.logger.Error("storage watcher failed", "path", f.Path, "error", err)
	}))

	return events, nil
}

func (f *File) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.StorageEvent) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if f.logger.Enabled(ctx, slog.LevelDebug) {
				f.logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			eType := f.mapEventType(event)
			if eType == "" {
				continue
			}
			f.logger.Debug("storage event", "path", event.Name, "type", eType)

			select {
			case events <- core.StorageEvent{Type: eType, Path: f.Path, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			f.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// mapEventType filters out everything but changes to the storage file.
func (f *File) mapEventType(event fsnotify.Event) core.EventType {
	if isTempFile(event.Name) || filepath.Clean(event.Name) != filepath.Clean(f.Path) {
		return ""
	}
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventModify
	default:
		return ""
	}
}

func (f *File) setWatcherActive(active bool) {
	f.watchMu.Lock()
	defer f.watchMu.Unlock()
	f.watcherActive = active
}

func (f *File) isWatcherActive() bool {
	f.watchMu.Lock()
	defer f.watchMu.Unlock()
	return f.watcherActive
}
