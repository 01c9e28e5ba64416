// Package watch crops recordings as they land in the input tree.
// It monitors the input directory and every subdirectory with fsnotify and
// hands each matching file to a handler once writes to it have settled.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	fsadapter "github.com/bft-labs/sigcrop/internal/adapters/fs"
	"github.com/bft-labs/sigcrop/internal/ports"
	"github.com/bft-labs/sigcrop/pkg/log"
)

// Handler processes one settled file, given as a slash-separated path
// relative to the watched root.
type Handler func(ctx context.Context, rel string)

// Config holds configuration for the watcher.
type Config struct {
	// Root is the directory tree to watch
	Root string

	// Suffix selects the files to hand over
	Suffix string

	// DebounceDelay is how long a file must stay quiet before it is handled.
	// Default: 250 milliseconds
	DebounceDelay time.Duration

	// Exclude lists directories whose events are ignored (e.g. the output
	// root when it lies inside Root)
	Exclude []string
}

// Watcher delivers settled files to its handler one at a time, from the
// goroutine that called Run.
type Watcher struct {
	cfg     Config
	handle  Handler
	logger  ports.Logger
	fsw     *fsnotify.Watcher
	ready   chan string
	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a watcher. logger may be nil.
func New(cfg Config, handle Handler, logger ports.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 250 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:     cfg,
		handle:  handle,
		logger:  logger,
		ready:   make(chan string),
		pending: make(map[string]*time.Timer),
	}
}

// Run watches until ctx is canceled. It returns nil on cancellation and an
// error only if the watch cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()
	w.fsw = fsw

	if err := w.addTree(ctx, w.cfg.Root, false); err != nil {
		return err
	}
	w.logger.Info("watching for new recordings", log.String("root", w.cfg.Root), log.String("suffix", w.cfg.Suffix))

	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return nil

		case rel := <-w.ready:
			w.handle(ctx, rel)

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.onEvent(ctx, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) onEvent(ctx context.Context, event fsnotify.Event) {
	if w.excluded(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// Files may already exist by the time the watch is added.
			if err := w.addTree(ctx, event.Name, true); err != nil {
				w.logger.Warn("failed to watch new directory", log.String("dir", event.Name), log.Err(err))
			}
			return
		}
	}

	if fsadapter.MatchSuffix(filepath.Base(event.Name), w.cfg.Suffix) {
		w.schedule(ctx, event.Name)
	}
}

// addTree watches dir and its subdirectories. With schedule set, matching
// files found during the walk are scheduled as well.
func (w *Watcher) addTree(ctx context.Context, dir string, schedule bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.excluded(path) {
				return filepath.SkipDir
			}
			return w.fsw.Add(path)
		}
		if schedule && d.Type().IsRegular() && fsadapter.MatchSuffix(d.Name(), w.cfg.Suffix) {
			w.schedule(ctx, path)
		}
		return nil
	})
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	rel, err := filepath.Rel(w.cfg.Root, path)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.scheduleLocked(ctx, rel)
}

// scheduleLocked (re)arms the timer for rel. w.mu must be held.
// A timer that fired but was replaced before it got the lock delivers nothing.
func (w *Watcher) scheduleLocked(ctx context.Context, rel string) {
	if t, ok := w.pending[rel]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.cfg.DebounceDelay, func() {
		w.mu.Lock()
		if w.pending[rel] != t {
			w.mu.Unlock()
			return
		}
		delete(w.pending, rel)
		w.mu.Unlock()

		select {
		case w.ready <- rel:
		case <-ctx.Done():
		}
	})
	w.pending[rel] = t
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for rel, t := range w.pending {
		t.Stop()
		delete(w.pending, rel)
	}
}

func (w *Watcher) excluded(path string) bool {
	for _, dir := range w.cfg.Exclude {
		if fsadapter.Within(path, dir) {
			return true
		}
	}
	return false
}
