package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watch calls do right away, then again whenever one of files is written or created.
// Bursts of events within debounce of each other trigger a single call.
func watch(ctx context.Context, files []string, debounce time.Duration, do func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "Failed to start file watcher")
	}

	watched := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return err
		}
		watched[abs] = true
		// watch the parent directory to keep watching files replaced by editors and generators
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			watcher.Close()
			return errors.Wrapf(err, "Failed to watch %q", file)
		}
	}

	go func() {
		timer := time.NewTimer(0) // fire watch right away
		defer timer.Stop()

		for {
			select {
			case <-timer.C:
				log.Info("Running watch call...")
				if err := do(); err != nil {
					log.Errorf("Error running watch call: %v", err)
				}
			case <-ctx.Done():
				watcher.Close()
				return
			case event := <-watcher.Events:
				if !watched[filepath.Clean(event.Name)] {
					continue
				}
				switch {
				case event.Op&fsnotify.Write == fsnotify.Write,
					event.Op&fsnotify.Create == fsnotify.Create:
					log.Debugf("Change detected: %s", event)
					timer.Reset(debounce)
				}
			case err := <-watcher.Errors:
				log.Errorf("Watcher error: %v", err)
			}
		}
	}()
	return nil
}
