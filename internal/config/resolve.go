package config

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// DefaultPager is the pager template used when none is configured.
const DefaultPager = "%<page>d / %<total>d"

const allFields = FieldAlign | FieldMargin | FieldFooter | FieldPager | FieldSymbols | FieldTheme

// Scope tells Resolve whether the raw values belong to the whole document or
// to a single slide.
type Scope int

const (
	ScopeSlide Scope = iota
	ScopeGlobal
)

// Defaults returns the built-in settings every global Config starts from.
func Defaults() Config {
	return Config{
		Align:  MustAlignment(Left, Top),
		Margin: Margin{},
		Footer: Section{
			HasText:  true,
			Align:    MustAlignment(Left, Bottom),
			HasAlign: true,
		},
		Pager: Section{
			Text:     DefaultPager,
			HasText:  true,
			Align:    MustAlignment(Right, Bottom),
			HasAlign: true,
		},
		Symbols: Symbols{Base: SymbolsUnicode},
		Theme:   Theme{},
		set:     allFields,
	}
}

// Global resolves document level settings on top of the defaults.
func Global(raw map[string]interface{}) (Config, error) {
	return Resolve(raw, ScopeGlobal)
}

// Slide resolves slide level settings. Nothing is merged: fields the slide
// does not declare stay unset.
func Slide(raw map[string]interface{}) (Config, error) {
	return Resolve(raw, ScopeSlide)
}

// Resolve validates the keys of raw, converts every value into its typed form
// and, for ScopeGlobal, merges the result over Defaults.
func Resolve(raw map[string]interface{}, scope Scope) (Config, error) {
	if err := validateKeys(raw); err != nil {
		return Config{}, err
	}

	custom, err := convert(raw)
	if err != nil {
		return Config{}, err
	}

	if scope == ScopeGlobal {
		return Cascade(Defaults(), custom), nil
	}

	return custom, nil
}

func validateKeys(raw map[string]interface{}) error {
	var unknown []string

	for key := range raw {
		if _, ok := fieldNames[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)

	return &UnknownKeyError{Keys: unknown, Allowed: Keys}
}

func convert(raw map[string]interface{}) (Config, error) {
	var (
		c   Config
		err error
	)

	for _, key := range Keys {
		value, ok := raw[key]
		if !ok {
			continue
		}

		switch key {
		case "align":
			c.Align, err = alignmentFrom("align", value, Center)
		case "margin":
			c.Margin, err = MarginFrom(value)
		case "footer":
			c.Footer, err = sectionFrom("footer", value)
		case "pager":
			c.Pager, err = sectionFrom("pager", value)
		case "symbols":
			c.Symbols, err = SymbolsFrom(value)
		case "theme":
			c.Theme, err = ThemeFrom(value)
		}

		if err != nil {
			return Config{}, err
		}

		c.set |= fieldNames[key]
	}

	return c, nil
}

func sectionFrom(field string, value interface{}) (Section, error) {
	fields, ok := value.(map[string]interface{})
	if !ok {
		text, err := sectionText(field, value)
		if err != nil {
			return Section{}, err
		}

		return Section{Text: text, HasText: true}, nil
	}

	var raw struct {
		Text  interface{} `mapstructure:"text"`
		Align interface{} `mapstructure:"align"`
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &raw,
	})
	if err != nil {
		return Section{}, err
	}

	if err := decoder.Decode(fields); err != nil {
		return Section{}, invalid(field, value,
			"invalid value for %s: %v.\nThe %s accepts only 'text' and 'align' keys.", field, err, field)
	}

	var s Section

	if _, ok := fields["text"]; ok {
		if s.Text, err = sectionText(field, raw.Text); err != nil {
			return Section{}, err
		}

		s.HasText = true
	}

	if _, ok := fields["align"]; ok {
		if s.Align, err = alignmentFrom(field+".align", raw.Align, Bottom); err != nil {
			return Section{}, err
		}

		s.HasAlign = true
	}

	return s, nil
}

func sectionText(field string, value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if !v {
			return "", nil
		}
	case string:
		return v, nil
	default:
		if _, ok := toInt(v); ok || isNumber(v) {
			return fmt.Sprint(v), nil
		}
	}

	return "", invalid(field, value,
		"invalid value for %s: %s.\nThe %s needs to be false, a string or a map with text and align keys.",
		field, inspect(value), field)
}
