package render

import "testing"

func TestCursor(t *testing.T) {
	var c Cursor

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"move", c.MoveTo(4, 2), "\x1b[3;5H"},
		{"negative clamps to origin", c.MoveTo(-3, -1), c.MoveTo(0, 0)},
		{"clear", c.ClearScreen(), "\x1b[2J"},
		{"hide", c.Hide(), "\x1b[?25l"},
		{"show", c.Show(), "\x1b[?25h"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
