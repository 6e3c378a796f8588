//go:build !windows

package cmd

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/pacebar/pace/bar"
)

// watchResize repaints the bar whenever the terminal changes size. The
// returned func stops the watcher.
func watchResize(b *bar.Bar) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				b.Repaint()
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
