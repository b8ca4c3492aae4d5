package render

import (
	"fmt"
	"regexp"
)

// placeholder matches %% and the named references %<name>verb and %{name}.
// The verb may carry flags, a width and a precision.
var placeholder = regexp.MustCompile(`%(?:(%)|<(\w+)>([-+ 0#]*\d*(?:\.\d+)?[dsvxXobfeEgGq])|\{(\w+)\})`)

// FormatPager substitutes the page and total references in a pager template.
// References to unknown names are kept as written.
func FormatPager(template string, page, total int) string {
	return formatNamed(template, map[string]interface{}{"page": page, "total": total})
}

func formatNamed(template string, values map[string]interface{}) string {
	return placeholder.ReplaceAllStringFunc(template, func(ref string) string {
		m := placeholder.FindStringSubmatch(ref)

		switch {
		case m[1] != "":
			return "%"
		case m[2] != "":
			value, ok := values[m[2]]
			if !ok {
				return ref
			}

			if verb := m[3][len(m[3])-1]; verb == 's' || verb == 'q' {
				value = fmt.Sprint(value)
			}

			return fmt.Sprintf("%"+m[3], value)
		default:
			value, ok := values[m[4]]
			if !ok {
				return ref
			}

			return fmt.Sprint(value)
		}
	})
}
