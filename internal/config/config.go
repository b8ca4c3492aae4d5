package config

// Field identifies one of the recognized configuration keys.
type Field uint8

const (
	FieldAlign Field = 1 << iota
	FieldMargin
	FieldFooter
	FieldPager
	FieldSymbols
	FieldTheme
)

var fieldNames = map[string]Field{
	"align":   FieldAlign,
	"footer":  FieldFooter,
	"margin":  FieldMargin,
	"pager":   FieldPager,
	"symbols": FieldSymbols,
	"theme":   FieldTheme,
}

// Keys lists the recognized configuration keys in alphabetical order.
var Keys = []string{"align", "footer", "margin", "pager", "symbols", "theme"}

// Section configures a single line region such as the footer or the pager.
// Text and alignment are tracked separately so that a slide can override one
// of them and inherit the other.
type Section struct {
	Text     string
	HasText  bool
	Align    Alignment
	HasAlign bool
}

// Visible reports whether the section produces any output.
func (s Section) Visible() bool {
	return s.Text != ""
}

// Config is a resolved set of presentation settings. A global Config has every
// field set; a slide Config only carries the fields the slide declared.
type Config struct {
	Align   Alignment
	Margin  Margin
	Footer  Section
	Pager   Section
	Symbols Symbols
	Theme   Theme

	set Field
}

// Has reports whether the field was given explicitly or, for a global Config,
// by the defaults.
func (c Config) Has(f Field) bool {
	return c.set&f != 0
}

// Equal compares every recognized field structurally.
func (c Config) Equal(other Config) bool {
	return c.set == other.set &&
		c.Align == other.Align &&
		c.Margin == other.Margin &&
		c.Footer == other.Footer &&
		c.Pager == other.Pager &&
		c.Symbols.Equal(other.Symbols) &&
		c.Theme.Equal(other.Theme)
}

// Cascade returns the settings in effect for a slide: every field the slide
// set wins, everything else comes from global. Footer and pager fall back per
// sub-field.
func Cascade(global, slide Config) Config {
	effective := global

	if slide.Has(FieldAlign) {
		effective.Align = slide.Align
	}

	if slide.Has(FieldMargin) {
		effective.Margin = slide.Margin
	}

	if slide.Has(FieldFooter) {
		effective.Footer = mergeSection(global.Footer, slide.Footer)
	}

	if slide.Has(FieldPager) {
		effective.Pager = mergeSection(global.Pager, slide.Pager)
	}

	if slide.Has(FieldSymbols) {
		effective.Symbols = slide.Symbols
	}

	if slide.Has(FieldTheme) {
		effective.Theme = slide.Theme
	}

	return effective
}

func mergeSection(base, override Section) Section {
	if override.HasText {
		base.Text = override.Text
		base.HasText = true
	}

	if override.HasAlign {
		base.Align = override.Align
		base.HasAlign = true
	}

	return base
}
