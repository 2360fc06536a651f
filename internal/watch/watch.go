// Package watch re-checks exercises whenever their files change and records
// streak progress as soon as something looks done.
package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Kartik213/rustlings/internal/app"
	"github.com/Kartik213/rustlings/internal/exercise"
	"github.com/Kartik213/rustlings/internal/ports"
)

// Config holds watch mode settings.
type Config struct {
	ExercisesDir string
	Extension    string

	// Debounce is the quiet period after the last change before a rescan.
	Debounce time.Duration
}

// Watcher drives the tracker from file system events.
type Watcher struct {
	cfg     Config
	tracker *app.Tracker
	out     io.Writer
	logger  ports.Logger

	last    app.Report
	printed bool
}

// New creates a watcher that prints status lines to out.
func New(cfg Config, tracker *app.Tracker, out io.Writer, logger ports.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 200 * time.Millisecond
	}
	return &Watcher{cfg: cfg, tracker: tracker, out: out, logger: logger}
}

// Run checks once, then watches the exercises directory until ctx is
// canceled. Update failures are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.cfg.ExercisesDir); err != nil {
		return err
	}
	w.logger.Info("watching exercises", ports.String("dir", w.cfg.ExercisesDir))

	w.check(ctx)

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

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := w.addTree(fw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", ports.String("dir", event.Name), ports.Err(err))
					}
					continue
				}
			}
			if !exercise.IsExercise(event.Name, w.cfg.Extension) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Stop()
				timer.Reset(w.cfg.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.check(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", ports.Err(err))
		}
	}
}

// addTree watches dir and every directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// check rescans exercises, records progress and prints the status when it
// differs from the last one shown.
func (w *Watcher) check(ctx context.Context) {
	exercises, err := exercise.Scan(w.cfg.ExercisesDir, w.cfg.Extension)
	if err != nil {
		w.logger.Error("scan failed", ports.Err(err))
		return
	}

	if app.CountDone(exercises) > 0 {
		if err := w.tracker.Update(ctx); err != nil {
			w.logger.Error("failed to update streak", ports.Err(err))
		}
	}

	report, err := w.tracker.Status(ctx, exercises)
	if err != nil {
		w.logger.Error("failed to read streak", ports.Err(err))
		return
	}
	if w.printed && report == w.last {
		return
	}
	if err := app.NewStatusPrinter(w.out).Print(report); err != nil {
		w.logger.Warn("failed to print status", ports.Err(err))
		return
	}
	w.last, w.printed = report, true
}
