//go:build unix

package presenter

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyResize(onResize func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-ch:
				onResize()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
