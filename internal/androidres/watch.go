// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package androidres

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var watchReadyHook func() // used in tests, called when Watch started watching

// Watch runs [Run] once, then runs it again each time the source icon or
// the manual fix resources change. It returns when ctx is canceled.
//
// Failed runs are logged and don't stop watching.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()
	p := c.Paths()

	var (
		mu      sync.Mutex
		stopped bool
	)
	generate := func() error {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return nil
		}
		return Run(ctx, c)
	}

	logger.Info(ctx, "performing an initial generation")
	if err := generate(); err != nil {
		logger.Error(ctx, "initial generation failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs := []string{filepath.Dir(p.SourceIcon)}
	if exists(p.ManualFixDir) {
		dirs = append(dirs, p.ManualFixDir)
	}
	for _, dir := range dirs {
		if err := watchRecursive(watcher, dir); err != nil {
			return err
		}
	}

	// Saving a file often produces several events in a row, so wait for
	// them to settle.
	debouncer := newDebouncer(250*time.Millisecond, func() {
		logger.Info(ctx, "triggering generation")
		if err := generate(); err != nil {
			logger.Error(ctx, "generation failed", slog.Any("err", err))
		}
	})

	logger.Info(ctx, "started watching for new changes", slog.Any("dirs", dirs))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRegenerate(event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher failed", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			debouncer.Stop()
			// Wait for a generation that is already running.
			mu.Lock()
			stopped = true
			mu.Unlock()
			return nil
		}
	}
}

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}

func watchRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

// Based on
// https://github.com/brandur/modulir/blob/1ff912fdc45a79cb4d8d9f199d213ae9c3598cbd/watch.go#L201.
func shouldRegenerate(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	switch {
	case base == ".DS_Store":
		return false
	case base == "4913": // Vim checks if the directory is writable with it.
		return false
	case strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".swp"):
		return false
	}

	// Renames are followed by a create event, and chmod doesn't change
	// contents.
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Remove) || op.Has(fsnotify.Write)
}
