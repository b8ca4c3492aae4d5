package config

import (
	"maps"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Symbol set names.
const (
	SymbolsUnicode = "unicode"
	SymbolsASCII   = "ascii"
)

var (
	symbolBases = []string{SymbolsUnicode, SymbolsASCII}

	// SymbolNames lists the glyphs that can be overridden in a symbol set.
	SymbolNames = []string{"bullet", "bar", "line", "checked", "unchecked"}
)

// Symbols selects the glyphs used for list bullets, quote bars, rules and
// task markers.
type Symbols struct {
	Base     string
	Override map[string]string
}

func (s Symbols) Equal(other Symbols) bool {
	return s.Base == other.Base && maps.Equal(s.Override, other.Override)
}

// SymbolsFrom converts a raw value, either a base name or a map with "base"
// and "override" keys.
func SymbolsFrom(value interface{}) (Symbols, error) {
	switch v := value.(type) {
	case string:
		return newSymbols(v, nil)
	case map[string]interface{}:
		var raw struct {
			Base     string            `mapstructure:"base"`
			Override map[string]string `mapstructure:"override"`
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &raw,
		})
		if err != nil {
			return Symbols{}, err
		}

		if err := decoder.Decode(v); err != nil {
			return Symbols{}, invalid("symbols", value,
				"invalid value for symbols: %v.\nThe symbols map accepts only 'base' and 'override' keys.", err)
		}

		if raw.Base == "" {
			raw.Base = SymbolsUnicode
		}

		return newSymbols(raw.Base, raw.Override)
	}

	return Symbols{}, invalid("symbols", value,
		"invalid value for symbols: %s.\nThe symbols need to be a name or a map with base and override keys.",
		inspect(value))
}

func newSymbols(base string, override map[string]string) (Symbols, error) {
	base = strings.TrimPrefix(base, ":")

	if !contains(symbolBases, base) {
		return Symbols{}, invalid("symbols", base,
			"unknown '%s' symbols. Valid value is: %s.", base, strings.Join(symbolBases, ", "))
	}

	var unknown []string

	for name := range override {
		if !contains(SymbolNames, name) {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)

		return Symbols{}, invalid("symbols", override,
			"unknown '%s' symbol %s. Valid names are: %s.",
			strings.Join(unknown, ", "), pluralize("name", len(unknown)), strings.Join(SymbolNames, ", "))
	}

	return Symbols{Base: base, Override: override}, nil
}

var glyphs = map[string]map[string]string{
	SymbolsUnicode: {"bullet": "●", "bar": "┃", "line": "─", "checked": "✓", "unchecked": "✗"},
	SymbolsASCII:   {"bullet": "*", "bar": "|", "line": "-", "checked": "x", "unchecked": " "},
}

// Glyph returns the character drawn for name, preferring an override over the
// base set. An empty base counts as unicode.
func (s Symbols) Glyph(name string) string {
	if g, ok := s.Override[name]; ok {
		return g
	}

	base, ok := glyphs[s.Base]
	if !ok {
		base = glyphs[SymbolsUnicode]
	}

	return base[name]
}
