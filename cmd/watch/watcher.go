package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

// watchAndRebuild calls rebuild once after each burst of changes to any of
// paths, until ctx is done. rebuild always runs on the calling goroutine, so
// two passes never overlap.
func watchAndRebuild(ctx context.Context, paths []string, interval time.Duration, logger *slog.Logger, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched, err := addSourceDirs(watcher.Add, paths)
	if err != nil {
		return fmt.Errorf("failed to watch source directories: %w", err)
	}

	debounce := time.NewTimer(interval)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event, watched) {
				continue
			}
			logger.Debug("source changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			debounce.Reset(interval)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", slog.Any("error", err))

		case <-debounce.C:
			rebuild()
		}
	}
}

// addSourceDirs watches the directory of every source path. Directories are
// watched instead of files so that editors which replace a file on save keep
// triggering events. It returns the cleaned absolute source paths.
func addSourceDirs(add func(string) error, paths []string) (map[string]bool, error) {
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		watched[absPath] = true

		dir := filepath.Dir(absPath)
		if dirs[dir] {
			continue
		}
		if err := add(dir); err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	return watched, nil
}

func isRelevantChange(event fsnotify.Event, watched map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	absPath, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return watched[absPath]
}
