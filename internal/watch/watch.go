// Package watch re-runs a callback whenever the content under the watched
// section directories changes.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/contentlint/internal/checksum"
	"github.com/starford/contentlint/internal/storage"
)

// DefaultDebounce is used when a Watcher is created with a zero debounce.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called after a debounced batch of events changed the content
// fingerprint.
type ChangeFunc func(ctx context.Context)

// Watcher observes section directories of a content root.
type Watcher struct {
	store    storage.Provider
	dirs     []string
	debounce time.Duration
	logger   *slog.Logger
	last     string
}

// New creates a Watcher for dirs (relative to the store root).
func New(store storage.Provider, dirs []string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		store:    store,
		dirs:     dirs,
		debounce: debounce,
		logger:   logger,
	}
	w.last = w.Fingerprint()
	return w
}

// Fingerprint digests the contents of every listed file. A missing or
// unreadable directory contributes its error so that creating it counts as a
// change; an unreadable file contributes a fixed marker.
func (w *Watcher) Fingerprint() string {
	sums := make(map[string]string)
	for _, d := range w.dirs {
		metas, err := w.store.List(d)
		if err != nil {
			sums[d+"/"] = "error:" + err.Error()
			continue
		}
		for _, m := range metas {
			data, err := w.store.Read(m.Path)
			if err != nil {
				sums[m.Path] = "unreadable"
				continue
			}
			sums[m.Path] = checksum.Sum(data)
		}
	}
	return checksum.Fingerprint(sums)
}

// Run processes file system events until ctx is cancelled, calling onChange
// once per debounced batch that actually changed the content.
//
// Section directories that do not exist yet are picked up when they are
// created, as long as their parent is watched.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, p := range w.watchPaths() {
		if addErr := fw.Add(p); addErr == nil {
			w.logger.Debug("watcher: watching", slog.String("path", p))
		}
	}

	w.logger.Info("watcher: started", slog.String("root", w.store.Root()))

	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
			timerCh = timer.C
		} else {
			timer.Reset(w.debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			fp := w.Fingerprint()
			if fp == w.last {
				w.logger.Debug("watcher: no content change")
				continue
			}
			w.last = fp
			onChange(ctx)

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() && w.isWatchPath(ev.Name) {
					if addErr := fw.Add(ev.Name); addErr != nil {
						w.logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					} else {
						w.logger.Debug("watcher: watching new dir", slog.String("path", ev.Name))
					}
				}
			}
			schedule()

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// watchPaths returns the absolute section directories and every ancestor up
// to the content root.
func (w *Watcher) watchPaths() []string {
	root := w.store.Root()
	seen := map[string]struct{}{root: {}}
	out := []string{root}
	for _, d := range w.dirs {
		p := filepath.Join(root, filepath.FromSlash(d))
		var chain []string
		for p != root && strings.HasPrefix(p, root+string(os.PathSeparator)) {
			chain = append(chain, p)
			p = filepath.Dir(p)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if _, ok := seen[chain[i]]; ok {
				continue
			}
			seen[chain[i]] = struct{}{}
			out = append(out, chain[i])
		}
	}
	return out
}

func (w *Watcher) isWatchPath(path string) bool {
	for _, p := range w.watchPaths() {
		if p == path {
			return true
		}
	}
	return false
}
