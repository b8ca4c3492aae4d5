// Package presenter runs the interactive slide show.
package presenter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"termdeck/internal/deck"
	"termdeck/internal/render"
	"termdeck/internal/tracker"
)

// Loader reads and builds the deck. It is called on start and on every
// reload.
type Loader func() (deck.Deck, error)

// Presenter shows a deck on the terminal and reacts to keys, screen resizes
// and reload requests.
type Presenter struct {
	load     Loader
	renderer render.Renderer
	in       io.Reader
	out      io.Writer
	copy     func(string) error
	size     func() (int, int)
	logger   *slog.Logger

	mu      sync.Mutex
	program *tea.Program
}

// Option configures a Presenter.
type Option func(*Presenter)

func WithInput(r io.Reader) Option {
	return func(p *Presenter) { p.in = r }
}

func WithOutput(w io.Writer) Option {
	return func(p *Presenter) { p.out = w }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) { p.logger = l }
}

// WithClipboard replaces the function used to copy slide sources.
func WithClipboard(write func(string) error) Option {
	return func(p *Presenter) { p.copy = write }
}

// WithScreenSize sets the function queried for the screen size after the
// terminal reports a resize.
func WithScreenSize(size func() (int, int)) Option {
	return func(p *Presenter) { p.size = size }
}

// New creates a Presenter that draws with renderer.
func New(load Loader, renderer render.Renderer, opts ...Option) *Presenter {
	p := &Presenter{
		load:     load,
		renderer: renderer,
		in:       os.Stdin,
		out:      os.Stdout,
		copy:     clipboard.WriteAll,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.size == nil {
		p.size = func() (int, int) { return render.ScreenSize(os.Stdout.Fd()) }
	}

	p.logger = p.logger.With("component", "presenter")

	return p
}

// Start loads the deck and runs the key loop until the user quits, ctx is
// cancelled or a reload fails. The cursor is hidden while presenting and
// shown again on every exit path.
func (p *Presenter) Start(ctx context.Context) error {
	m := model{
		out:      p.out,
		load:     p.load,
		copy:     p.copy,
		logger:   p.logger,
		renderer: p.renderer,
	}

	if err := m.reload("start"); err != nil {
		return err
	}

	m.tracker = tracker.For(m.deck.Len())

	restore, err := makeRaw(p.in)
	if err != nil {
		return err
	}
	defer restore()

	cursor := render.Cursor{}
	m.write(cursor.Hide())
	defer m.write(cursor.Show())

	first, err := m.frame()
	if err != nil {
		return err
	}

	m.write(first)

	program := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithoutRenderer(),
	)

	p.mu.Lock()
	p.program = program
	p.mu.Unlock()

	stopResize := notifyResize(func() {
		w, h := p.size()
		program.Send(tea.WindowSizeMsg{Width: w, Height: h})
	})
	defer stopResize()

	final, err := program.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}

	return nil
}

// Reload asks the running presentation to read the deck again. It is safe to
// call from any goroutine and does nothing before Start.
func (p *Presenter) Reload() {
	if program := p.current(); program != nil {
		program.Send(reloadMsg{source: "watch"})
	}
}

// Stop ends the presentation as if the user quit.
func (p *Presenter) Stop() {
	if program := p.current(); program != nil {
		program.Quit()
	}
}

func (p *Presenter) current() *tea.Program {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.program
}

// makeRaw puts a terminal input into raw mode so keys arrive one at a time.
// Other readers are left alone.
func makeRaw(in io.Reader) (func(), error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}, nil
	}

	fd := int(f.Fd())

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot read keys from the terminal: %w", err)
	}

	return func() { _ = term.Restore(fd, state) }, nil
}
