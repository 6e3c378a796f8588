//go:build windows

package cmd

import "github.com/pacebar/pace/bar"

// Windows consoles deliver no resize signal; the next accepted report
// redraws at the new width anyway.
func watchResize(b *bar.Bar) func() {
	return func() {}
}
