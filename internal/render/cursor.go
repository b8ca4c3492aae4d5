package render

import "github.com/charmbracelet/x/ansi"

// Cursor formats the terminal escape sequences the renderer needs. Positions
// are 0-based; negative values are clamped to the first row or column.
type Cursor struct{}

// MoveTo returns the sequence that puts the cursor at col, row.
func (Cursor) MoveTo(col, row int) string {
	return ansi.CursorPosition(max(col, 0)+1, max(row, 0)+1)
}

// ClearScreen erases the whole screen without moving the cursor.
func (Cursor) ClearScreen() string {
	return ansi.EraseEntireScreen
}

func (Cursor) Hide() string {
	return ansi.HideCursor
}

func (Cursor) Show() string {
	return ansi.ShowCursor
}
