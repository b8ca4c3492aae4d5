// Package runner wires loading, rendering, presenting and watching together.
package runner

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"termdeck/internal/deck"
	"termdeck/internal/presenter"
	"termdeck/internal/render"
	"termdeck/internal/watch"
)

// Options describes one presentation run.
type Options struct {
	Path           string
	Watch          bool
	Color          render.ColorMode
	DarkBackground bool
	Width          int
	Height         int

	Input  io.Reader
	Output io.Writer
	Logger *slog.Logger
}

func (o *Options) setDefaults() {
	if o.Input == nil {
		o.Input = os.Stdin
	}

	if o.Output == nil {
		o.Output = os.Stdout
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = render.DefaultWidth, render.DefaultHeight
	}
}

// Run presents the slides at opts.Path until the user quits. With Watch set
// the deck is reloaded whenever the file changes, and the watcher is stopped
// on every exit path.
func Run(ctx context.Context, opts Options) error {
	opts.setDefaults()

	if opts.Path == "" {
		return &deck.ReadError{}
	}

	logger := opts.Logger.With("component", "runner")

	load := func() (deck.Deck, error) {
		d, err := deck.Load(opts.Path)
		if err != nil {
			return deck.Deck{}, err
		}

		logger.Debug("deck loaded", "path", opts.Path, "slides", d.Len())

		return d, nil
	}

	renderer := render.New(render.NewMarkdownConverter(opts.DarkBackground), opts.Color, opts.Width, opts.Height)

	p := presenter.New(load, renderer,
		presenter.WithInput(opts.Input),
		presenter.WithOutput(opts.Output),
		presenter.WithLogger(opts.Logger),
	)

	if !opts.Watch {
		return p.Start(ctx)
	}

	w, err := watch.New(opts.Path, watch.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return w.Run(gctx, p.Reload)
	})

	g.Go(func() error {
		// The watcher only stops once the presentation is over.
		defer cancel()

		return p.Start(gctx)
	})

	logger.Info("watching for changes", "path", opts.Path)

	return g.Wait()
}
