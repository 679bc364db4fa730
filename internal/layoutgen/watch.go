package layoutgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often write a file several times per save.
const watchDebounce = 100 * time.Millisecond

// Watch renders once, then re-renders every time the UI info file, the
// config file or a file in the build-scripts directory changes. onRun is
// called after each render. Watch returns when ctx is done.
func Watch(ctx context.Context, cfg Config, onRun func(Result, error)) error {
	if cfg.OutPath == "" {
		return errors.New("--watch requires --out")
	}

	files, dirs, err := watchTargets(cfg)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	onRun(Run(cfg))

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, files) {
				continue
			}
			slog.Debug("input changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(watchDebounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", slog.Any("err", err))
		case <-timer.C:
			onRun(Run(cfg))
		}
	}
}

// watchTargets returns the absolute input files and the directories to
// register with fsnotify. Parent directories are watched so files replaced
// by rename are still seen.
func watchTargets(cfg Config) (map[string]bool, map[string]bool, error) {
	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, p := range []string{cfg.UIInfoPath, cfg.ConfigPath} {
		abs, err := absPath(p)
		if err != nil {
			return nil, nil, err
		}
		if abs == "" {
			continue
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if cfg.BuildScriptsDir != "" {
		abs, err := absPath(cfg.BuildScriptsDir)
		if err != nil {
			return nil, nil, err
		}
		dirs[abs] = true
		files[filepath.Join(abs, TemplateFile)] = true
		files[filepath.Join(abs, ScriptFile)] = true
	}
	return files, dirs, nil
}

func relevantEvent(event fsnotify.Event, files map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return files[abs]
}
