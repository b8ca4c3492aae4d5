// Package watch reports changes to a single file.
package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long a burst of file events is collected before the
// change is reported.
const DefaultDelay = 100 * time.Millisecond

// Watcher watches one file. The parent directory is watched instead of the
// file itself so that editors replacing the file on save keep being noticed.
type Watcher struct {
	path    string
	delay   time.Duration
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

type Option func(*Watcher)

func WithDelay(d time.Duration) Option {
	return func(w *Watcher) { w.delay = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New starts watching path.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w := &Watcher{
		path:   abs,
		delay:  DefaultDelay,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.logger = w.logger.With("component", "watch", "path", abs)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", abs, err)
	}

	w.watcher = fw

	return w, nil
}

// Run calls onChange after the file is written, created or renamed, until
// ctx is done or Close is called. Events within the delay are coalesced.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
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

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("file event", "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			w.logger.Info("file changed")
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops watching. A running Run returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
