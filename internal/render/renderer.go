// Package render places converted slide text on the terminal screen.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termdeck/internal/config"
	"termdeck/internal/deck"
)

// Renderer builds the escape sequences that draw one slide together with its
// footer and pager. It is a value: Resize returns a new Renderer.
type Renderer struct {
	converter Converter
	cursor    Cursor
	color     ColorMode
	width     int
	height    int
}

// New creates a Renderer drawing on a width by height screen.
func New(converter Converter, color ColorMode, width, height int) Renderer {
	return Renderer{converter: converter, color: color, width: width, height: height}
}

// Resize returns a copy of the renderer for a screen of the given size.
func (r Renderer) Resize(width, height int) Renderer {
	r.width = width
	r.height = height

	return r
}

func (r Renderer) Width() int  { return r.width }
func (r Renderer) Height() int { return r.height }

// Clear erases the screen and homes the cursor.
func (r Renderer) Clear() string {
	return r.cursor.ClearScreen() + r.cursor.MoveTo(0, 0)
}

// Render draws slide using the settings it declares on top of global. A nil
// slide only draws the footer and the pager. Page is the 1-based number shown
// in the pager.
func (r Renderer) Render(global config.Config, slide *deck.Slide, page, total int) (string, error) {
	cfg := global
	if slide != nil {
		cfg = config.Cascade(global, slide.Config)
	}

	var out strings.Builder

	if slide != nil {
		lines, err := r.convert(slide.Content, cfg)
		if err != nil {
			return "", fmt.Errorf("rendering slide content: %w", err)
		}

		out.WriteString(r.place(lines, cfg.Align, cfg.Margin))
	}

	if cfg.Footer.Visible() {
		lines, err := r.convert(cfg.Footer.Text, cfg)
		if err != nil {
			return "", fmt.Errorf("rendering footer: %w", err)
		}

		out.WriteString(r.place(lines, cfg.Footer.Align, cfg.Margin))
	}

	if cfg.Pager.Visible() {
		lines, err := r.convert(FormatPager(cfg.Pager.Text, page, total), cfg)
		if err != nil {
			return "", fmt.Errorf("rendering pager: %w", err)
		}

		out.WriteString(r.place(lines, cfg.Pager.Align, cfg.Margin))
	}

	return out.String(), nil
}

func (r Renderer) convert(text string, cfg config.Config) ([]string, error) {
	converted, err := r.converter.Convert(text, ConvertOptions{
		Width:   r.innerWidth(cfg.Margin),
		Color:   r.color,
		Symbols: cfg.Symbols,
		Theme:   cfg.Theme,
	})
	if err != nil {
		return nil, err
	}

	converted = strings.TrimSuffix(converted, "\n")
	if converted == "" {
		return nil, nil
	}

	return strings.Split(converted, "\n"), nil
}

// place positions every line at an absolute cursor location. Widths are
// measured without escape codes.
func (r Renderer) place(lines []string, align config.Alignment, margin config.Margin) string {
	if len(lines) == 0 {
		return ""
	}

	widest := 0
	for _, line := range lines {
		widest = max(widest, lipgloss.Width(line))
	}

	left := margin.Left
	switch align.Horizontal {
	case config.Center:
		left += (r.innerWidth(margin) - widest) / 2
	case config.Right:
		left += r.innerWidth(margin) - widest
	}

	top := margin.Top
	switch align.Vertical {
	case config.Center:
		top += (r.innerHeight(margin) - len(lines)) / 2
	case config.Bottom:
		top += r.innerHeight(margin) - len(lines)
	}

	var b strings.Builder

	for i, line := range lines {
		b.WriteString(r.cursor.MoveTo(left, top+i))
		b.WriteString(line)
	}

	return b.String()
}

func (r Renderer) innerWidth(m config.Margin) int {
	return r.width - m.Left - m.Right
}

func (r Renderer) innerHeight(m config.Margin) int {
	return r.height - m.Top - m.Bottom
}
