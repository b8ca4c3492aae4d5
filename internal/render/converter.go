package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"termdeck/internal/config"
)

// ColorMode controls whether converted text carries colour codes.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var colorModes = map[string]ColorMode{
	"auto":   ColorAuto,
	"always": ColorAlways,
	"never":  ColorNever,
}

// ParseColorMode converts a flag value into a ColorMode.
func ParseColorMode(value string) (ColorMode, error) {
	mode, ok := colorModes[strings.ToLower(value)]
	if !ok {
		return ColorAuto, fmt.Errorf("invalid color mode %q: use always, auto or never", value)
	}

	return mode, nil
}

func (m ColorMode) String() string {
	for name, mode := range colorModes {
		if mode == m {
			return name
		}
	}

	return "auto"
}

// ConvertOptions describes how a piece of Markdown should be turned into
// terminal text.
type ConvertOptions struct {
	Width   int
	Color   ColorMode
	Symbols config.Symbols
	Theme   config.Theme
}

// Converter turns Markdown into styled terminal text wrapped to a width.
type Converter interface {
	Convert(text string, opts ConvertOptions) (string, error)
}

// MarkdownConverter converts Markdown with glamour.
type MarkdownConverter struct {
	dark bool
}

// NewMarkdownConverter returns a converter that picks the dark or light base
// style for coloured output.
func NewMarkdownConverter(darkBackground bool) *MarkdownConverter {
	return &MarkdownConverter{dark: darkBackground}
}

func (c *MarkdownConverter) Convert(text string, opts ConvertOptions) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(c.styleConfig(opts)),
		glamour.WithWordWrap(max(opts.Width, 1)),
		glamour.WithColorProfile(colorProfile(opts.Color)),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	return tidy(out), nil
}

func colorProfile(mode ColorMode) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

func (c *MarkdownConverter) styleConfig(opts ConvertOptions) ansi.StyleConfig {
	var cfg ansi.StyleConfig

	switch {
	case opts.Color == ColorNever:
		cfg = styles.NoTTYStyleConfig
	case c.dark:
		cfg = styles.DarkStyleConfig
	default:
		cfg = styles.LightStyleConfig
	}

	// Placement is done by the renderer, so the document must not add any
	// space of its own.
	cfg.Document.Margin = uintPtr(0)
	cfg.Document.BlockPrefix = ""
	cfg.Document.BlockSuffix = ""

	applySymbols(&cfg, opts.Symbols)
	applyTheme(&cfg, opts.Theme)

	return cfg
}

func applySymbols(cfg *ansi.StyleConfig, symbols config.Symbols) {
	cfg.Item.BlockPrefix = symbols.Glyph("bullet") + " "
	cfg.BlockQuote.IndentToken = stringPtr(symbols.Glyph("bar") + " ")
	cfg.HorizontalRule.Format = "\n" + strings.Repeat(symbols.Glyph("line"), 8) + "\n"
	cfg.Task.Ticked = "[" + symbols.Glyph("checked") + "] "
	cfg.Task.Unticked = "[" + symbols.Glyph("unchecked") + "] "
}

func applyTheme(cfg *ansi.StyleConfig, theme config.Theme) {
	targets := map[string][]*ansi.StylePrimitive{
		"code": {&cfg.Code.StylePrimitive, &cfg.CodeBlock.StylePrimitive},
		"em":   {&cfg.Emph},
		"header": {
			&cfg.Heading.StylePrimitive,
			&cfg.H1.StylePrimitive, &cfg.H2.StylePrimitive, &cfg.H3.StylePrimitive,
			&cfg.H4.StylePrimitive, &cfg.H5.StylePrimitive, &cfg.H6.StylePrimitive,
		},
		"hr":     {&cfg.HorizontalRule},
		"image":  {&cfg.Image, &cfg.ImageText},
		"link":   {&cfg.Link, &cfg.LinkText},
		"list":   {&cfg.Item, &cfg.Enumeration},
		"quote":  {&cfg.BlockQuote.StylePrimitive},
		"strike": {&cfg.Strikethrough},
		"strong": {&cfg.Strong},
		"table":  {&cfg.Table.StylePrimitive},
		"text":   {&cfg.Text},
	}

	for element, style := range theme.Styles {
		for _, p := range targets[element] {
			applyStyle(p, style)
		}
	}

	if theme.Syntax != "" {
		cfg.CodeBlock.Theme = theme.Syntax
		cfg.CodeBlock.Chroma = nil
	}
}

// applyStyle overwrites the attributes a theme sets. Pointers are replaced,
// never written through, since the base configs share them.
func applyStyle(p *ansi.StylePrimitive, s config.Style) {
	if s.Color != "" {
		p.Color = stringPtr(s.Color)
	}

	if s.Background != "" {
		p.BackgroundColor = stringPtr(s.Background)
	}

	flags := []struct {
		set    bool
		target **bool
	}{
		{s.Bold, &p.Bold},
		{s.Italic, &p.Italic},
		{s.Underline, &p.Underline},
		{s.Faint, &p.Faint},
		{s.Inverse, &p.Inverse},
		{s.Strike, &p.CrossedOut},
		{s.Blink, &p.Blink},
	}

	for _, f := range flags {
		if f.set {
			*f.target = boolPtr(true)
		}
	}
}

// tidy drops the padding glamour adds to reach the wrap width along with
// the blank lines around the document.
func tidy(out string) string {
	lines := strings.Split(out, "\n")

	for i, line := range lines {
		visible := strings.TrimRight(xansi.Strip(line), " ")
		lines[i] = xansi.Truncate(line, xansi.StringWidth(visible), "")
	}

	blank := func(line string) bool {
		return strings.TrimSpace(xansi.Strip(line)) == ""
	}

	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}

	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }
