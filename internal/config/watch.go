package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// reloadOps are the events on the scenario file that trigger a reload.
// Atomic saves (write temp file, rename over the target) arrive as Create
// on the target name, so watching the parent directory sees every save.
const reloadOps = fsnotify.Write | fsnotify.Create

// Watch calls onChange with the freshly loaded Config each time the scenario
// file at path is saved, whether in place or by rename. It runs until ctx is
// cancelled.
//
// A save that fails to load (bad YAML, beta out of range) is logged and
// skipped; onChange only ever sees valid configs.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: resolve %q: %w", path, err)
	}
	if _, err := Load(target); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: new watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("config: watch %q: %w", dir, err)
	}
	slog.Info("config: watching for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSave(event, target) {
				continue
			}
			reload(target, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

// isSave reports whether event is a write or create of the target file.
// Other files in the same directory are ignored.
func isSave(event fsnotify.Event, target string) bool {
	if event.Op&reloadOps == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return filepath.Clean(name) == target
}

func reload(path string, onChange func(*Config)) {
	cfg, err := Load(path)
	if err != nil {
		slog.Warn("config: ignoring invalid save", "path", path, "err", err)
		return
	}
	slog.Info("config: reloaded", "path", path, "scenarios", len(cfg.Scenarios))
	onChange(cfg)
}
