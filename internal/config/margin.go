package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	integersOnly      = regexp.MustCompile(`^[\d, ]+$`)
	integersSeparator = regexp.MustCompile(`[ ,]+`)

	sideNames = []string{"top", "right", "bottom", "left"}
)

// Margin is the empty space kept around the drawable area, in cells.
type Margin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewMargin creates a margin from one to four side values using the CSS
// shorthand rules: one value for all sides, two for vertical and horizontal,
// three for top, horizontal and bottom, four for each side clockwise.
func NewMargin(values ...int) (Margin, error) {
	sides := make([]interface{}, len(values))
	for i, v := range values {
		sides[i] = v
	}

	return marginFromSlice(sides)
}

// MarginFrom converts a raw configuration value into a Margin. It accepts an
// integer, a string of integers, a list of integers or a map of side names.
func MarginFrom(value interface{}) (Margin, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		return marginFromMap(v)
	case []interface{}:
		return marginFromSlice(v)
	case []int:
		return NewMargin(v...)
	case string:
		if !integersOnly.MatchString(v) {
			break
		}

		var sides []interface{}

		for _, field := range integersSeparator.Split(strings.TrimSpace(v), -1) {
			if field == "" {
				continue
			}

			n, err := strconv.Atoi(field)
			if err != nil {
				return Margin{}, invalidMargin(value)
			}

			sides = append(sides, n)
		}

		return marginFromSlice(sides)
	default:
		if _, ok := toInt(v); ok || isNumber(v) {
			return marginFromSlice([]interface{}{v})
		}
	}

	return Margin{}, invalidMargin(value)
}

func marginFromSlice(values []interface{}) (Margin, error) {
	var sides []interface{}

	switch len(values) {
	case 1:
		sides = []interface{}{values[0], values[0], values[0], values[0]}
	case 2:
		sides = []interface{}{values[0], values[1], values[0], values[1]}
	case 3:
		sides = []interface{}{values[0], values[1], values[2], values[1]}
	case 4:
		sides = values
	default:
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = fmt.Sprintf("%v", v)
		}

		return Margin{}, invalid("margin", values,
			"wrong number of integers for margin: %q.\n"+
				"The margin needs to be specified with one, two, three or four integers.",
			strings.Join(strs, ", "))
	}

	var ints [4]int

	for i, side := range sides {
		n, err := marginSide(sideNames[i], side)
		if err != nil {
			return Margin{}, err
		}

		ints[i] = n
	}

	return Margin{Top: ints[0], Right: ints[1], Bottom: ints[2], Left: ints[3]}, nil
}

func marginFromMap(values map[string]interface{}) (Margin, error) {
	var unknown []string

	for name := range values {
		if !contains(sideNames, name) {
			unknown = append(unknown, fmt.Sprintf("%q", name))
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)

		return Margin{}, invalid("margin", values,
			"unknown %s for margin: %s.\nValid names are: top, left, right and bottom.",
			pluralize("name", len(unknown)), strings.Join(unknown, ", "))
	}

	sides := make([]interface{}, 4)

	for i, name := range sideNames {
		if v, ok := values[name]; ok && v != nil {
			sides[i] = v
		} else {
			sides[i] = 0
		}
	}

	return marginFromSlice(sides)
}

func marginSide(side string, value interface{}) (int, error) {
	n, ok := toInt(value)
	if !ok {
		return 0, invalid("margin", value, "%s margin needs to be an integer, got: %s", side, inspect(value))
	}

	if n < 0 {
		return 0, invalid("margin", value, "%s margin needs to be a non-negative integer, got: %d", side, n)
	}

	return n, nil
}

func invalidMargin(value interface{}) error {
	return invalid("margin", value,
		"invalid value for margin: %s.\n"+
			"The margin needs to be an integer, a string of integers, "+
			"an array of integers or a hash of side names and integer values.", inspect(value))
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	}

	return 0, false
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float32, float64:
		return true
	}

	return false
}
