package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce groups the bursts of events a single save usually produces.
const debounce = 50 * time.Millisecond

// watch processes files once and then again whenever one of them is
// written or re-created, until ctx is cancelled.
//
// The containing directories are watched rather than the files, so that
// editors which save by renaming a temporary file are noticed.
func (d *driver) watch(ctx context.Context, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	watched := make(map[string]string) // absolute path -> name as given
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("watch %s: %w", f, err)
		}
		watched[abs] = f
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	d.runFiles(ctx, files)
	d.logger.Info("watching for changes", "files", len(files))
	if d.watchReady != nil {
		d.watchReady()
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, ok := watched[filepath.Clean(ev.Name)]
			if !ok || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			d.logger.Debug("file event", "file", name, "op", ev.Op.String())
			pending[name] = true
			timer.Reset(debounce)

		case <-timer.C:
			var changed []string
			for _, f := range files {
				if pending[f] {
					changed = append(changed, f)
				}
			}
			clear(pending)
			d.logger.Info("re-running", "files", changed)
			d.runFiles(ctx, changed)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			d.logger.Warn("watch error", "err", err)
		}
	}
}
