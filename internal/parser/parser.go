package parser

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// A first block whose first non-blank line has the "key: value" shape is the
// global configuration. Keys may be written with a leading colon.
var configPattern = regexp.MustCompile(`^\s*:?[A-Za-z_][\w-]*:\s+\S`)

// Slide is the raw content of one slide and the inline configuration given on
// its opening separator.
type Slide struct {
	Content string
	Config  map[string]interface{}
}

// Document is the result of parsing: the global configuration block, if any,
// and the slides in presentation order.
type Document struct {
	Config map[string]interface{}
	Slides []Slide
}

// SyntaxError reports a configuration block that could not be decoded.
type SyntaxError struct {
	Line  int
	Input string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type block struct {
	lines  []string
	config string
	line   int
}

func (b block) content() string {
	return strings.Join(b.lines, "\n")
}

func (b block) empty() bool {
	return strings.TrimSpace(b.content()) == ""
}

// Parse splits text into the global configuration and an ordered list of
// slides. Blocks that hold only whitespace are dropped, so a document may
// start or end with a separator.
func Parse(text string) (Document, error) {
	blocks := split(newScanner(text))

	var doc Document

	if len(blocks) > 0 && blocks[0].config == "" && looksLikeConfig(blocks[0]) {
		global, err := decode(blocks[0].content(), blocks[0].line)
		if err != nil {
			return Document{}, err
		}

		if len(global) > 0 {
			doc.Config = global
			blocks = blocks[1:]
		}
	}

	for _, b := range blocks {
		cfg, err := decode(b.config, b.line)
		if err != nil {
			return Document{}, err
		}

		doc.Slides = append(doc.Slides, Slide{Content: b.content(), Config: cfg})
	}

	return doc, nil
}

func split(s *scanner) []block {
	var (
		blocks []block
		cur    = block{line: 1}
	)

	for {
		tok := s.next()

		switch tok.kind {
		case tokenLine:
			cur.lines = append(cur.lines, tok.text)
		case tokenSeparator:
			if !cur.empty() {
				blocks = append(blocks, cur)
			}

			cur = block{config: tok.text, line: tok.line}
		case tokenEOF:
			if !cur.empty() {
				blocks = append(blocks, cur)
			}

			return blocks
		}
	}
}

func looksLikeConfig(b block) bool {
	for _, line := range b.lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		return configPattern.MatchString(line)
	}

	return false
}

// decode reads a YAML mapping. Blank input decodes to a nil map.
func decode(text string, line int) (map[string]interface{}, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var raw interface{}

	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &SyntaxError{Line: line, Input: text, Err: err}
	}

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return normalizeMap(v), nil
	case map[interface{}]interface{}:
		return normalizeAnyMap(v), nil
	}

	return nil, &SyntaxError{
		Line:  line,
		Input: text,
		Err:   fmt.Errorf("expected a map of settings, got %s", strings.TrimSpace(text)),
	}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))

	for k, v := range m {
		out[strings.TrimPrefix(k, ":")] = normalize(v)
	}

	return out
}

func normalizeAnyMap(m map[interface{}]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))

	for k, v := range m {
		out[strings.TrimPrefix(fmt.Sprint(k), ":")] = normalize(v)
	}

	return out
}

func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return normalizeMap(v)
	case map[interface{}]interface{}:
		return normalizeAnyMap(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}

		return out
	}

	return value
}
