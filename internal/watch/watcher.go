// Package watch keeps the generated engine config in step with the overlay file and
// header snippet while they are being edited.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/hugo"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/observability"
)

// DefaultDebounce coalesces editor save bursts into one reload.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	Load      config.LoadOptions
	OutputDir string
	Format    hugo.Format
	Debounce  time.Duration
	Recorder  metrics.Recorder

	// OnWrite is called after each engine config write.
	OnWrite func(path string, cfg *config.Config)
}

// Watcher reloads the site configuration when its inputs change and rewrites the
// engine config when the result differs from the last one written.
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	files    map[string]struct{}
	dirs     map[string]struct{}
	snapshot string
	current  *config.Config

	reloadChan chan struct{}
}

// New creates a watcher. Nothing is watched until Run.
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Format == "" {
		opts.Format = hugo.FormatYAML
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	opts.Load.Recorder = opts.Recorder

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		opts:       opts,
		watcher:    fw,
		files:      make(map[string]struct{}),
		dirs:       make(map[string]struct{}),
		reloadChan: make(chan struct{}, 1),
	}, nil
}

// Current returns the last successfully loaded configuration, or nil.
func (w *Watcher) Current() *config.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Run performs an initial load and write, then watches until ctx is cancelled.
// A failed initial load is returned; failed reloads are logged and the last good
// configuration stays in effect.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()
	ctx = observability.WithStage(ctx, "watch")

	if _, err := w.Reload(ctx); err != nil {
		return err
	}
	slog.Info("Starting configuration watcher", slog.Int("files", len(w.watchedFiles())))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			slog.Info("Stopping configuration watcher")
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isWatched(event.Name) {
				continue
			}
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				slog.Warn("Watched file removed", logfields.Path(event.Name))
			} else {
				slog.Debug("Watched file changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.opts.Debounce)
			fire = timer.C
		case <-w.reloadChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.opts.Debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			if _, err := w.Reload(ctx); err != nil {
				slog.Error("Failed to reload configuration", logfields.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

// Trigger schedules a debounced reload as if a watched file changed.
func (w *Watcher) Trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
		// Reload already pending
	}
}

// Reload loads the configuration and writes the engine config if its snapshot
// changed. It reports whether a write happened.
func (w *Watcher) Reload(ctx context.Context) (bool, error) {
	ctx = observability.WithRunID(ctx, observability.NewRunID())
	cfg, err := config.Load(ctx, w.opts.Load)
	if err != nil {
		return false, err
	}
	if err := w.track(cfg); err != nil {
		observability.WarnContext(ctx, "Unable to watch configuration inputs", logfields.Error(err))
	}

	snap := cfg.Snapshot()
	w.mu.Lock()
	unchanged := snap == w.snapshot
	w.mu.Unlock()
	if unchanged {
		observability.DebugContext(ctx, "Configuration unchanged, skipping write", logfields.Snapshot(snap))
		return false, nil
	}

	path, err := hugo.NewConfigWriter(cfg).WithRecorder(w.opts.Recorder).WriteFile(w.opts.OutputDir, w.opts.Format)
	if err != nil {
		return false, err
	}

	w.mu.Lock()
	w.snapshot = snap
	w.current = cfg
	w.mu.Unlock()

	observability.InfoContext(ctx, "Configuration applied", logfields.Snapshot(snap), logfields.Path(path))
	if w.opts.OnWrite != nil {
		w.opts.OnWrite(path, cfg)
	}
	return true, nil
}

// track adds the overlay file and the loaded header path to the watch set. Parent
// directories are watched since editors often replace files on save.
func (w *Watcher) track(cfg *config.Config) error {
	paths := []string{cfg.HeaderPath}
	if w.opts.Load.OverlayPath != "" {
		paths = append(paths, w.opts.Load.OverlayPath)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	return nil
}

func (w *Watcher) isWatched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[abs]
	return ok
}

func (w *Watcher) watchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}
