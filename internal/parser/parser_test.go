package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Document
	}{
		{
			name: "empty content",
			text: "",
			want: Document{},
		},
		{
			name: "slides without configuration",
			text: "# A\n---\n# B\n---\n# C",
			want: Document{Slides: []Slide{{Content: "# A"}, {Content: "# B"}, {Content: "# C"}}},
		},
		{
			name: "single slide without separators",
			text: "# Title\n\nSome text\n",
			want: Document{Slides: []Slide{{Content: "# Title\n\nSome text"}}},
		},
		{
			name: "sparse content keeps interior blank lines",
			text: "\n  # Slide 1\n\n  Content 1\n\n------\n\n  # Slide 2\n\n  Content 2\n\n------\n\n  # Slide 3\n\n  Content 3\n\n",
			want: Document{Slides: []Slide{
				{Content: "\n  # Slide 1\n\n  Content 1\n"},
				{Content: "\n  # Slide 2\n\n  Content 2\n"},
				{Content: "\n  # Slide 3\n\n  Content 3\n"},
			}},
		},
		{
			name: "only global configuration",
			text: "align: center\nfooter: footer content\npager: \"page %<page>d of %<total>d\"\n",
			want: Document{Config: map[string]interface{}{
				"align":  "center",
				"footer": "footer content",
				"pager":  "page %<page>d of %<total>d",
			}},
		},
		{
			name: "global configuration with symbol keys",
			text: ":align: center\n:footer: footer content\n",
			want: Document{Config: map[string]interface{}{
				"align":  "center",
				"footer": "footer content",
			}},
		},
		{
			name: "global configuration and slides",
			text: "align: center\nmargin: [1, 2]\n---\n# Slide 1\n---\n# Slide 2\n",
			want: Document{
				Config: map[string]interface{}{"align": "center", "margin": []interface{}{1, 2}},
				Slides: []Slide{{Content: "# Slide 1"}, {Content: "# Slide 2"}},
			},
		},
		{
			name: "global configuration wrapped with separators",
			text: "---\nalign: center\n---\n# Slide 1\n---\n# Slide 2\n---\n",
			want: Document{
				Config: map[string]interface{}{"align": "center"},
				Slides: []Slide{{Content: "# Slide 1"}, {Content: "# Slide 2"}},
			},
		},
		{
			name: "only separators",
			text: "---\n---\n\n---\n",
			want: Document{},
		},
		{
			name: "inline slide configuration",
			text: "# A\n--- { align: \"left, top\" }\n# B\n--- footer: false\n# C\n",
			want: Document{Slides: []Slide{
				{Content: "# A"},
				{Content: "# B", Config: map[string]interface{}{"align": "left, top"}},
				{Content: "# C", Config: map[string]interface{}{"footer": false}},
			}},
		},
		{
			name: "inline configuration without a space after the dashes",
			text: "# A\n---{align: center}\n# B",
			want: Document{Slides: []Slide{
				{Content: "# A"},
				{Content: "# B", Config: map[string]interface{}{"align": "center"}},
			}},
		},
		{
			name: "first slide after configured separator is not global",
			text: "--- {align: center}\ntitle: not config\n",
			want: Document{Slides: []Slide{
				{Content: "title: not config", Config: map[string]interface{}{"align": "center"}},
			}},
		},
		{
			name: "heading with colon is content",
			text: "# Agenda: today\n---\n# Next\n",
			want: Document{Slides: []Slide{{Content: "# Agenda: today"}, {Content: "# Next"}}},
		},
		{
			name: "short dash runs stay in content",
			text: "# A\n--\n- item\n",
			want: Document{Slides: []Slide{{Content: "# A\n--\n- item"}}},
		},
		{
			name: "nested configuration",
			text: "footer:\n  text: hello\n  align: center\n---\n# A\n",
			want: Document{Slides: []Slide{{Content: "footer:\n  text: hello\n  align: center"}, {Content: "# A"}}},
		},
		{
			name: "nested configuration after a value line",
			text: "align: center\nfooter:\n  text: hello\n---\n# A\n",
			want: Document{
				Config: map[string]interface{}{
					"align":  "center",
					"footer": map[string]interface{}{"text": "hello"},
				},
				Slides: []Slide{{Content: "# A"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"malformed global block", "align: [center\n---\n# A\n", 1},
		{"malformed inline block", "# A\n--- {align: center\n# B\n", 2},
		{"inline scalar", "# A\n--- just text\n# B\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)

			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Parse error = %v, want SyntaxError", err)
			}

			if syntaxErr.Line != tt.line {
				t.Errorf("Line = %d, want %d", syntaxErr.Line, tt.line)
			}

			if syntaxErr.Input == "" {
				t.Error("SyntaxError should carry the offending input")
			}
		})
	}
}
