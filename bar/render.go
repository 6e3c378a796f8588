package bar

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/colorstring"
	"golang.org/x/term"

	"github.com/pacebar/pace/format"
	"github.com/pacebar/pace/meter"
)

// regex matching ansi escape codes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// lineWidth is the printed cell width of s. ANSI sequences take no cells
// and some runes span two.
func lineWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// frame renders one snapshot in the classic single-line layout:
//
//	pull  42%|████▏     | 423/1000 [00:10<00:14, 42.3 it/s]
//
// Bytes mode swaps counts and rates for humanized sizes. While the total
// is unknown the percent and fill give way to a pulsing glyph.
func (b *Bar) frame(snap meter.Snapshot) string {
	var pre, mid, suf strings.Builder

	if snap.Label != "" {
		label := snap.Label
		if b.color {
			label = colorstring.Color(label)
		}
		pre.WriteString(label)
		pre.WriteString(" ")
	}

	if snap.Total > 0 {
		fmt.Fprintf(&pre, "%3.0f%%|", math.Floor(snap.Percent))

		fmt.Fprintf(&suf, "| %s/%s [%s<%s, %s]",
			b.count(snap.Current), b.count(snap.Total),
			format.Clock(snap.Elapsed), b.remaining(snap), b.rate(snap.Rate))

		width := b.width
		if b.full {
			width = b.termWidth() - lineWidth(pre.String()) - lineWidth(suf.String())
		}
		fill := b.theme.fill(width, snap.Fill)
		if b.color {
			fill = colorize(fill, snap.Fill)
		}
		mid.WriteString(fill)
	} else {
		b.spin = (b.spin + 1) % themeGlyphs
		fmt.Fprintf(&mid, "%s %s ", b.theme[b.spin], b.count(snap.Current))
		fmt.Fprintf(&suf, "[%s, %s]", format.Clock(snap.Elapsed), b.rate(snap.Rate))
	}

	return pre.String() + mid.String() + suf.String()
}

func (b *Bar) termWidth() int {
	w, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		return defaultTermWidth
	}
	return w
}

func (b *Bar) count(n int64) string {
	if b.bytes {
		return format.HumanBytes(n)
	}
	return fmt.Sprintf("%d", n)
}

func (b *Bar) rate(perSecond float64) string {
	if b.bytes {
		return format.HumanBytes(int64(perSecond)) + "/s"
	}
	return format.HumanCount(perSecond) + " " + b.units + "/s"
}

func (b *Bar) remaining(snap meter.Snapshot) string {
	if snap.Remaining <= 0 && snap.Percent < 100 {
		return "?"
	}
	return format.Clock(snap.Remaining)
}
