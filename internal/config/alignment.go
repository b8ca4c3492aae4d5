package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Horizontal alignment values.
const (
	Left   = "left"
	Center = "center"
	Right  = "right"
)

// Vertical alignment values.
const (
	Top    = "top"
	Bottom = "bottom"
)

var (
	horizontalValues = []string{Left, Center, Right}
	verticalValues   = []string{Top, Center, Bottom}

	alignmentSeparator = regexp.MustCompile(`[ ,]+`)
)

// Alignment places a block of text inside the drawable area.
type Alignment struct {
	Horizontal string
	Vertical   string
}

// NewAlignment validates both axes.
func NewAlignment(horizontal, vertical string) (Alignment, error) {
	if !contains(horizontalValues, horizontal) {
		return Alignment{}, invalid("align", horizontal,
			"unknown '%s' horizontal alignment. Valid value is: left, center and right.", horizontal)
	}

	if !contains(verticalValues, vertical) {
		return Alignment{}, invalid("align", vertical,
			"unknown '%s' vertical alignment. Valid value is: top, center and bottom.", vertical)
	}

	return Alignment{Horizontal: horizontal, Vertical: vertical}, nil
}

// MustAlignment is like NewAlignment but panics on invalid input. It is meant
// for package level defaults.
func MustAlignment(horizontal, vertical string) Alignment {
	a, err := NewAlignment(horizontal, vertical)
	if err != nil {
		panic(err)
	}

	return a
}

// ParseAlignment reads an alignment such as "right top", "right,top" or
// "right , top". When only the horizontal value is given the vertical one is
// set to defaultVertical.
func ParseAlignment(value, defaultVertical string) (Alignment, error) {
	fields := alignmentSeparator.Split(strings.TrimSpace(value), -1)

	horizontal := fields[0]
	vertical := defaultVertical

	if len(fields) > 1 {
		vertical = fields[1]
	}

	return NewAlignment(horizontal, vertical)
}

func (a Alignment) String() string {
	return a.Horizontal + " " + a.Vertical
}

func alignmentFrom(field string, value interface{}, defaultVertical string) (Alignment, error) {
	s, ok := value.(string)
	if !ok {
		return Alignment{}, invalid(field, value,
			"invalid value for %s: %s.\nThe alignment needs to be a string such as 'center top'.", field, inspect(value))
	}

	a, err := ParseAlignment(s, defaultVertical)

	var valueErr *InvalidValueError
	if errors.As(err, &valueErr) {
		valueErr.Field = field
	}

	return a, err
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

func inspect(value interface{}) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("%v", value)
}
