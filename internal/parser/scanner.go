package parser

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokenLine tokenKind = iota
	tokenSeparator
	tokenEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokenLine:
		return "line"
	case tokenSeparator:
		return "separator"
	default:
		return "EOF"
	}
}

// A separator is a line of three or more dashes, optionally followed by inline
// slide configuration. A flow map may follow the dashes directly; any other
// configuration needs a space first so that "---word" stays content.
var separatorPattern = regexp.MustCompile(`^-{3,}(?:(\{.*?)|\s+(.*?))?\s*$`)

// token is a single lexical unit. For a separator, text holds the inline
// configuration found after the dashes.
type token struct {
	kind tokenKind
	text string
	line int
}

// scanner splits a document into lines and classifies each one.
type scanner struct {
	lines []string
	pos   int
}

func newScanner(text string) *scanner {
	lines := strings.Split(text, "\n")

	// A trailing newline terminates the last line instead of starting a new one.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &scanner{lines: lines}
}

func (s *scanner) next() token {
	if s.pos >= len(s.lines) {
		return token{kind: tokenEOF, line: s.pos + 1}
	}

	line := s.lines[s.pos]
	s.pos++

	if m := separatorPattern.FindStringSubmatch(line); m != nil {
		return token{kind: tokenSeparator, text: m[1] + m[2], line: s.pos}
	}

	return token{kind: tokenLine, text: line, line: s.pos}
}
