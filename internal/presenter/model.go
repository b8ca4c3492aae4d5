package presenter

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/deck"
	"termdeck/internal/render"
	"termdeck/internal/tracker"
)

type reloadMsg struct {
	source string
}

// model owns the presentation state. Keys, resizes and reload requests all
// arrive as messages on the program queue, so it is only touched by one
// goroutine.
type model struct {
	out      io.Writer
	load     Loader
	copy     func(string) error
	logger   *slog.Logger
	renderer render.Renderer
	deck     deck.Deck
	tracker  tracker.Tracker
	buffer   string
	err      error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.renderer = m.renderer.Resize(msg.Width, msg.Height)
		m.logger.Debug("screen resized", "width", msg.Width, "height", msg.Height)

		return m.draw()

	case reloadMsg:
		if err := m.reload(msg.source); err != nil {
			return m.fail(err)
		}

		return m.draw()
	}

	return m, nil
}

// View is empty: frames are written directly to the output by draw.
func (m model) View() string {
	return ""
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Interrupt):
		return m, tea.Interrupt

	case key.Matches(msg, keys.Quit):
		m.write(m.renderer.Clear())

		return m, tea.Quit

	case key.Matches(msg, keys.Next):
		m.tracker = m.tracker.Next()

	case key.Matches(msg, keys.Previous):
		m.tracker = m.tracker.Previous()

	case key.Matches(msg, keys.First):
		m.tracker = m.tracker.First()

	case key.Matches(msg, keys.Last):
		m.tracker = m.tracker.Last()

	case key.Matches(msg, keys.Digit):
		m.buffer += msg.String()

		return m, nil

	case key.Matches(msg, keys.GoTo):
		// An empty buffer reads as slide 0, which does not exist.
		n, _ := strconv.Atoi(m.buffer)
		m.buffer = ""
		m.tracker = m.tracker.GoTo(n - 1)

	case key.Matches(msg, keys.Reload):
		if err := m.reload("key"); err != nil {
			return m.fail(err)
		}

	case key.Matches(msg, keys.Copy):
		m.copySlide()

		return m, nil

	default:
		return m, nil
	}

	return m.draw()
}

func (m *model) reload(source string) error {
	d, err := m.load()
	if err != nil {
		return err
	}

	m.deck = d
	m.tracker = m.tracker.Resize(d.Len())
	m.buffer = ""

	m.logger.Info("slides reloaded", "source", source, "slides", d.Len())

	return nil
}

func (m model) copySlide() {
	slide := m.deck.Slide(m.tracker.Current())
	if slide == nil {
		return
	}

	if err := m.copy(slide.Content); err != nil {
		m.logger.Warn("copying slide to clipboard failed", "error", err)
	}
}

// frame renders the current slide on a cleared screen.
func (m model) frame() (string, error) {
	page := m.tracker.Current() + 1

	out, err := m.renderer.Render(m.deck.Config, m.deck.Slide(m.tracker.Current()), page, m.tracker.Total())
	if err != nil {
		return "", err
	}

	return m.renderer.Clear() + out, nil
}

func (m model) draw() (tea.Model, tea.Cmd) {
	frame, err := m.frame()
	if err != nil {
		return m.fail(err)
	}

	m.write(frame)

	return m, nil
}

func (m model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("presentation stopped", "error", err)
	m.err = err

	return m, tea.Quit
}

// write emits s with a single call so frames never interleave.
func (m model) write(s string) {
	if _, err := io.WriteString(m.out, s); err != nil {
		m.logger.Error("writing to terminal failed", "error", err)
	}
}
