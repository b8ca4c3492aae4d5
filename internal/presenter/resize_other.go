//go:build !unix

package presenter

// Platforms without SIGWINCH keep the size found at startup.
func notifyResize(func()) (stop func()) {
	return func() {}
}
