package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGlobalDefaults(t *testing.T) {
	got, err := Global(map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Align:   Alignment{Left, Top},
		Margin:  Margin{0, 0, 0, 0},
		Footer:  Section{Text: "", HasText: true, Align: Alignment{Left, Bottom}, HasAlign: true},
		Pager:   Section{Text: "%<page>d / %<total>d", HasText: true, Align: Alignment{Right, Bottom}, HasAlign: true},
		Symbols: Symbols{Base: SymbolsUnicode},
		Theme:   Theme{},
		set:     allFields,
	}

	if !got.Equal(want) {
		t.Errorf("Global({}) mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}

	if !got.Equal(Defaults()) {
		t.Error("Global({}) differs from Defaults()")
	}

	for _, f := range []Field{FieldAlign, FieldMargin, FieldFooter, FieldPager, FieldSymbols, FieldTheme} {
		if !got.Has(f) {
			t.Errorf("global config is missing field %d", f)
		}
	}
}

func TestGlobalOverrides(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]interface{}
		check func(t *testing.T, c Config)
	}{
		{
			name: "align with single value defaults vertical to center",
			raw:  map[string]interface{}{"align": "right"},
			check: func(t *testing.T, c Config) {
				if want := (Alignment{Right, Center}); c.Align != want {
					t.Errorf("Align = %+v, want %+v", c.Align, want)
				}
			},
		},
		{
			name: "align with two values",
			raw:  map[string]interface{}{"align": "center, bottom"},
			check: func(t *testing.T, c Config) {
				if want := (Alignment{Center, Bottom}); c.Align != want {
					t.Errorf("Align = %+v, want %+v", c.Align, want)
				}
			},
		},
		{
			name: "margin as string",
			raw:  map[string]interface{}{"margin": "1 2"},
			check: func(t *testing.T, c Config) {
				if want := (Margin{1, 2, 1, 2}); c.Margin != want {
					t.Errorf("Margin = %+v, want %+v", c.Margin, want)
				}
			},
		},
		{
			name: "footer false",
			raw:  map[string]interface{}{"footer": false},
			check: func(t *testing.T, c Config) {
				want := Section{Text: "", HasText: true, Align: Alignment{Left, Bottom}, HasAlign: true}
				if c.Footer != want {
					t.Errorf("Footer = %+v, want %+v", c.Footer, want)
				}

				if c.Footer.Visible() {
					t.Error("footer should not be visible")
				}
			},
		},
		{
			name: "footer string keeps default alignment",
			raw:  map[string]interface{}{"footer": "footer content"},
			check: func(t *testing.T, c Config) {
				want := Section{Text: "footer content", HasText: true, Align: Alignment{Left, Bottom}, HasAlign: true}
				if c.Footer != want {
					t.Errorf("Footer = %+v, want %+v", c.Footer, want)
				}
			},
		},
		{
			name: "footer with only horizontal alignment",
			raw:  map[string]interface{}{"footer": map[string]interface{}{"align": "center"}},
			check: func(t *testing.T, c Config) {
				want := Section{Text: "", HasText: true, Align: Alignment{Center, Bottom}, HasAlign: true}
				if c.Footer != want {
					t.Errorf("Footer = %+v, want %+v", c.Footer, want)
				}
			},
		},
		{
			name: "pager with text and alignment",
			raw: map[string]interface{}{"pager": map[string]interface{}{
				"text": "page %<page>d of %<total>d", "align": "center top",
			}},
			check: func(t *testing.T, c Config) {
				want := Section{Text: "page %<page>d of %<total>d", HasText: true, Align: Alignment{Center, Top}, HasAlign: true}
				if c.Pager != want {
					t.Errorf("Pager = %+v, want %+v", c.Pager, want)
				}
			},
		},
		{
			name: "pager with only text keeps default alignment",
			raw:  map[string]interface{}{"pager": map[string]interface{}{"text": "%<page>d"}},
			check: func(t *testing.T, c Config) {
				if want := (Alignment{Right, Bottom}); c.Pager.Align != want {
					t.Errorf("Pager.Align = %+v, want %+v", c.Pager.Align, want)
				}
			},
		},
		{
			name: "pager empty",
			raw:  map[string]interface{}{"pager": ""},
			check: func(t *testing.T, c Config) {
				if c.Pager.Visible() {
					t.Error("pager should not be visible")
				}
			},
		},
		{
			name: "symbols ascii",
			raw:  map[string]interface{}{"symbols": "ascii"},
			check: func(t *testing.T, c Config) {
				if want := (Symbols{Base: SymbolsASCII}); !c.Symbols.Equal(want) {
					t.Errorf("Symbols = %+v, want %+v", c.Symbols, want)
				}
			},
		},
		{
			name: "theme link",
			raw:  map[string]interface{}{"theme": map[string]interface{}{"link": "cyan"}},
			check: func(t *testing.T, c Config) {
				want := Theme{Styles: map[string]Style{"link": {Color: "6"}}}
				if !c.Theme.Equal(want) {
					t.Errorf("Theme mismatch (-want +got):\n%s", cmp.Diff(want, c.Theme))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Global(tt.raw)
			if err != nil {
				t.Fatalf("Global(%v) error: %v", tt.raw, err)
			}

			tt.check(t, c)
		})
	}
}

func TestSlideKeepsOnlyDeclaredFields(t *testing.T) {
	c, err := Slide(map[string]interface{}{"footer": "x"})
	if err != nil {
		t.Fatal(err)
	}

	if c.Footer.Text != "x" || !c.Footer.HasText {
		t.Errorf("Footer = %+v, want text x", c.Footer)
	}

	if c.Footer.HasAlign {
		t.Error("slide footer alignment should be unset")
	}

	for _, f := range []Field{FieldAlign, FieldMargin, FieldPager, FieldSymbols, FieldTheme} {
		if c.Has(f) {
			t.Errorf("slide config has undeclared field %d", f)
		}
	}

	empty, err := Slide(nil)
	if err != nil {
		t.Fatal(err)
	}

	if !empty.Equal(Config{}) {
		t.Errorf("Slide(nil) = %+v, want empty config", empty)
	}
}

func TestCascade(t *testing.T) {
	global, err := Global(map[string]interface{}{
		"align":  "center",
		"footer": map[string]interface{}{"text": "global", "align": "right"},
		"margin": 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("slide footer text falls back to global alignment", func(t *testing.T) {
		slide, _ := Slide(map[string]interface{}{"footer": "x"})
		got := Cascade(global, slide)

		if got.Footer.Text != "x" {
			t.Errorf("Footer.Text = %q, want x", got.Footer.Text)
		}

		if want := (Alignment{Right, Bottom}); got.Footer.Align != want {
			t.Errorf("Footer.Align = %+v, want %+v", got.Footer.Align, want)
		}

		if got.Align != global.Align || got.Margin != global.Margin {
			t.Error("undeclared fields should come from global")
		}
	})

	t.Run("slide footer alignment keeps global text", func(t *testing.T) {
		slide, _ := Slide(map[string]interface{}{"footer": map[string]interface{}{"align": "center top"}})
		got := Cascade(global, slide)

		if got.Footer.Text != "global" {
			t.Errorf("Footer.Text = %q, want global", got.Footer.Text)
		}

		if want := (Alignment{Center, Top}); got.Footer.Align != want {
			t.Errorf("Footer.Align = %+v, want %+v", got.Footer.Align, want)
		}
	})

	t.Run("empty slide footer suppresses global footer", func(t *testing.T) {
		slide, _ := Slide(map[string]interface{}{"footer": ""})

		if Cascade(global, slide).Footer.Visible() {
			t.Error("footer should be hidden")
		}
	})

	t.Run("slide wins for scalar fields", func(t *testing.T) {
		slide, _ := Slide(map[string]interface{}{"margin": []interface{}{1, 2}, "align": "left top"})
		got := Cascade(global, slide)

		if want := (Margin{1, 2, 1, 2}); got.Margin != want {
			t.Errorf("Margin = %+v, want %+v", got.Margin, want)
		}

		if want := (Alignment{Left, Top}); got.Align != want {
			t.Errorf("Align = %+v, want %+v", got.Align, want)
		}
	})

	t.Run("cascade does not modify inputs", func(t *testing.T) {
		before := global
		slide, _ := Slide(map[string]interface{}{"pager": false})
		_ = Cascade(global, slide)

		if !before.Equal(global) {
			t.Error("global config changed")
		}
	})
}

func TestUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "one key",
			raw:  map[string]interface{}{"invalid": "value"},
			want: "unknown 'invalid' configuration key\nAvailable keys are: align, footer, margin, pager, symbols, theme",
		},
		{
			name: "many keys",
			raw:  map[string]interface{}{"foo": 1, "align": "left", "bar": 2},
			want: "unknown 'bar, foo' configuration keys\nAvailable keys are: align, footer, margin, pager, symbols, theme",
		},
		{
			name: "checked before values",
			raw:  map[string]interface{}{"unknown": 1, "margin": "invalid"},
			want: "unknown 'unknown' configuration key\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, scope := range []Scope{ScopeGlobal, ScopeSlide} {
				_, err := Resolve(tt.raw, scope)

				var keyErr *UnknownKeyError
				if !errors.As(err, &keyErr) {
					t.Fatalf("Resolve error = %v, want UnknownKeyError", err)
				}

				if !errors.Is(err, ErrInvalid) {
					t.Error("UnknownKeyError should match ErrInvalid")
				}

				if !strings.Contains(err.Error(), tt.want) {
					t.Errorf("error = %q, want it to contain %q", err, tt.want)
				}
			}
		})
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]interface{}
		field string
	}{
		{"align", map[string]interface{}{"align": "middle"}, "align"},
		{"align not string", map[string]interface{}{"align": 1}, "align"},
		{"margin", map[string]interface{}{"margin": []interface{}{1, 2, 3, 4, 5}}, "margin"},
		{"footer align", map[string]interface{}{"footer": map[string]interface{}{"align": "nowhere"}}, "footer.align"},
		{"footer extra key", map[string]interface{}{"footer": map[string]interface{}{"txt": "x"}}, "footer"},
		{"pager true", map[string]interface{}{"pager": true}, "pager"},
		{"symbols", map[string]interface{}{"symbols": "emoji"}, "symbols"},
		{"theme element", map[string]interface{}{"theme": map[string]interface{}{"title": "red"}}, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Global(tt.raw)

			var valueErr *InvalidValueError
			if !errors.As(err, &valueErr) {
				t.Fatalf("Global error = %v, want InvalidValueError", err)
			}

			if valueErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", valueErr.Field, tt.field)
			}
		})
	}
}

func TestConfigEqual(t *testing.T) {
	a, _ := Global(map[string]interface{}{"align": "center", "theme": map[string]interface{}{"em": "bold"}})
	b, _ := Global(map[string]interface{}{"align": "center", "theme": map[string]interface{}{"em": []interface{}{"bold"}}})
	c, _ := Global(map[string]interface{}{"align": "right"})

	if !a.Equal(b) {
		t.Error("configs built from equivalent input should be equal")
	}

	if a.Equal(c) {
		t.Error("configs with different alignment should not be equal")
	}

	slide, _ := Slide(map[string]interface{}{"align": "center"})
	if slide.Equal(a) {
		t.Error("slide config should not equal global config")
	}
}
