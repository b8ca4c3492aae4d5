package render

import "golang.org/x/term"

// Fallback size used when the terminal does not report one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ScreenSize returns the width and height of the terminal attached to fd.
func ScreenSize(fd uintptr) (width, height int) {
	width, height, err := term.GetSize(int(fd))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}

	return width, height
}
