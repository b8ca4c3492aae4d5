package config

import (
	"fmt"
	"maps"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ThemeElements lists the Markdown elements a theme can style.
var ThemeElements = []string{
	"code", "em", "header", "hr", "image", "link",
	"list", "quote", "strike", "strong", "table", "text",
}

const syntaxElement = "syntax"

var (
	colorCodes = map[string]int{
		"black": 0, "red": 1, "green": 2, "yellow": 3,
		"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	}

	styleSeparator = regexp.MustCompile(`[ ,]+`)
)

// Style is the resolved look of one Markdown element. Colours hold a value
// understood by the terminal renderer: an ANSI index or a hex code.
type Style struct {
	Color      string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
	Faint      bool
	Inverse    bool
	Strike     bool
	Blink      bool
}

// Theme maps Markdown elements to styles. Syntax names the chroma style used
// for fenced code blocks.
type Theme struct {
	Styles map[string]Style
	Syntax string
}

func (t Theme) Equal(other Theme) bool {
	return t.Syntax == other.Syntax && maps.Equal(t.Styles, other.Styles)
}

// ThemeFrom converts a raw map of element names to style names.
func ThemeFrom(value interface{}) (Theme, error) {
	if value == nil {
		return Theme{}, nil
	}

	raw, ok := value.(map[string]interface{})
	if !ok {
		return Theme{}, invalid("theme", value,
			"invalid value for theme: %s.\nThe theme needs to be a map of element names and styles.", inspect(value))
	}

	elements := make([]string, 0, len(raw))
	for name := range raw {
		elements = append(elements, name)
	}

	sort.Strings(elements)

	theme := Theme{Styles: make(map[string]Style)}

	for _, element := range elements {
		if element == syntaxElement {
			name, ok := raw[element].(string)
			if !ok {
				return Theme{}, invalid("theme", raw[element], "syntax theme needs to be a name, got: %s", inspect(raw[element]))
			}

			if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
				return Theme{}, invalid("theme", name, "unknown '%s' syntax theme", name)
			}

			theme.Syntax = strings.ToLower(name)

			continue
		}

		if !contains(ThemeElements, element) {
			return Theme{}, invalid("theme", element,
				"unknown '%s' theme element. Valid names are: %s and syntax.", element, strings.Join(ThemeElements, ", "))
		}

		words, err := styleWords(element, raw[element])
		if err != nil {
			return Theme{}, err
		}

		style, err := parseStyle(element, words)
		if err != nil {
			return Theme{}, err
		}

		theme.Styles[element] = style
	}

	return theme, nil
}

func styleWords(element string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		return styleSeparator.Split(strings.TrimSpace(v), -1), nil
	case []interface{}:
		words := make([]string, 0, len(v))

		for _, item := range v {
			if n, ok := toInt(item); ok {
				words = append(words, strconv.Itoa(n))
				continue
			}

			s, ok := item.(string)
			if !ok {
				return nil, invalid("theme", value, "%s style needs to be a list of names, got: %s", element, inspect(item))
			}

			words = append(words, s)
		}

		return words, nil
	default:
		if n, ok := toInt(v); ok {
			return []string{strconv.Itoa(n)}, nil
		}
	}

	return nil, invalid("theme", value, "%s style needs to be a name or a list of names, got: %s", element, inspect(value))
}

func parseStyle(element string, words []string) (Style, error) {
	var s Style

	for _, word := range words {
		word = strings.ToLower(strings.TrimPrefix(word, ":"))

		switch word {
		case "":
			continue
		case "bold":
			s.Bold = true
		case "italic":
			s.Italic = true
		case "underline":
			s.Underline = true
		case "faint", "dim":
			s.Faint = true
		case "inverse":
			s.Inverse = true
		case "strike", "strikethrough", "crossed_out":
			s.Strike = true
		case "blink":
			s.Blink = true
		default:
			if bg, ok := strings.CutPrefix(word, "on_"); ok {
				code, err := colorCode(element, bg)
				if err != nil {
					return Style{}, err
				}

				s.Background = code

				continue
			}

			code, err := colorCode(element, word)
			if err != nil {
				return Style{}, err
			}

			s.Color = code
		}
	}

	return s, nil
}

func colorCode(element, name string) (string, error) {
	if strings.HasPrefix(name, "#") {
		if _, err := colorful.Hex(name); err != nil {
			return "", invalid("theme", name, "invalid '%s' colour for %s: %v", name, element, err)
		}

		return name, nil
	}

	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 255 {
		return strconv.Itoa(n), nil
	}

	base, bright := strings.CutPrefix(name, "bright_")

	code, ok := colorCodes[base]
	if !ok {
		return "", invalid("theme", name, "unknown '%s' style for %s", name, element)
	}

	if bright {
		code += 8
	}

	return fmt.Sprint(code), nil
}
