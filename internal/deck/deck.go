// Package deck turns a slide document into resolved slides.
package deck

import (
	"errors"
	"fmt"
	"os"

	"termdeck/internal/config"
	"termdeck/internal/parser"
)

// Slide is one page of the presentation. Config only carries the settings the
// slide declared on its separator line.
type Slide struct {
	Content string
	Config  config.Config
}

// Deck is the global configuration and the slides in presentation order.
type Deck struct {
	Config config.Config
	Slides []Slide
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.Slides)
}

// Slide returns the slide at index i, or nil when i is out of range.
func (d Deck) Slide(i int) *Slide {
	if i < 0 || i >= len(d.Slides) {
		return nil
	}

	return &d.Slides[i]
}

// ReadError reports a slide document that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return "the location for the slides must be given"
	}

	return fmt.Sprintf("cannot read slides from %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Load reads the document at path and builds a Deck from it.
func Load(path string) (Deck, error) {
	if path == "" {
		return Deck{}, &ReadError{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, &ReadError{Path: path, Err: err}
	}

	return Build(string(data))
}

// Build parses text and resolves the global and per slide settings.
func Build(text string) (Deck, error) {
	doc, err := parser.Parse(text)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			reason := fmt.Sprintf("invalid presentation metadata at line %d: %q\n%v",
				syntaxErr.Line, syntaxErr.Input, syntaxErr.Err)

			return Deck{}, &config.InvalidValueError{Field: "metadata", Value: syntaxErr.Input, Reason: reason}
		}

		return Deck{}, err
	}

	global, err := config.Global(doc.Config)
	if err != nil {
		return Deck{}, err
	}

	d := Deck{Config: global, Slides: make([]Slide, 0, len(doc.Slides))}

	for i, s := range doc.Slides {
		cfg, err := config.Slide(s.Config)
		if err != nil {
			return Deck{}, fmt.Errorf("slide %d: %w", i+1, err)
		}

		d.Slides = append(d.Slides, Slide{Content: s.Content, Config: cfg})
	}

	return d, nil
}
