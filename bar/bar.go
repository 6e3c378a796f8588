// Package bar renders progress on a single terminal line: a themed fill
// region with counts, elapsed and estimated-remaining time, and a
// smoothed rate. The numbers, and the decision whether a frame is worth
// drawing at all, come from a meter; this package only formats and
// writes.
package bar

import (
	"io"
	"os"
	"time"

	"github.com/pacebar/pace/display"
	"github.com/pacebar/pace/envconfig"
	"github.com/pacebar/pace/meter"
)

const (
	defaultWidth     = 40
	defaultTermWidth = 80
)

// Bar ties a rate meter to a themed line renderer. It is not safe for
// concurrent writers; the loop reporting progress owns its bar.
type Bar struct {
	meter *meter.Meter
	out   *display.Line

	theme  Theme
	width  int
	full   bool
	color  bool
	bytes  bool
	units  string
	clear  bool
	label  string
	writer io.Writer

	meterOpts []meter.Option

	current  int64
	total    int64
	spin     int
	rendered string
	finished bool
}

type Option func(*Bar)

// WithTheme sets the glyph palette. New fails unless the palette holds
// exactly nine glyphs.
func WithTheme(t Theme) Option {
	return func(b *Bar) {
		b.theme = t
	}
}

// WithWidth fixes the fill region to n cells.
func WithWidth(n int) Option {
	return func(b *Bar) {
		if n > 0 {
			b.width = n
			b.full = false
		}
	}
}

// WithTerminalWidth sizes the fill region from the terminal on every
// frame, taking whatever the counts and timings leave over.
func WithTerminalWidth() Option {
	return func(b *Bar) {
		b.full = true
	}
}

// WithColor toggles the red-to-green fill gradient and label color
// codes. The default follows NO_COLOR.
func WithColor(enabled bool) Option {
	return func(b *Bar) {
		b.color = enabled
	}
}

// WithBytes renders counts and rates as humanized sizes instead of raw
// iteration numbers.
func WithBytes(enabled bool) Option {
	return func(b *Bar) {
		b.bytes = enabled
	}
}

// WithUnits sets the unit label shown after non-byte rates, "it" by
// default.
func WithUnits(units string) Option {
	return func(b *Bar) {
		b.units = units
	}
}

// WithLabel sets the leading description.
func WithLabel(label string) Option {
	return func(b *Bar) {
		b.label = label
	}
}

// WithWriter redirects output, os.Stderr by default.
func WithWriter(w io.Writer) Option {
	return func(b *Bar) {
		b.writer = w
	}
}

// WithClearOnFinish erases the bar once it finishes instead of keeping
// the final line.
func WithClearOnFinish() Option {
	return func(b *Bar) {
		b.clear = true
	}
}

// WithEMA, WithAlpha, and WithRefreshRate forward smoothing and refresh
// knobs to the underlying meter.
func WithEMA(enabled bool) Option {
	return func(b *Bar) {
		b.meterOpts = append(b.meterOpts, meter.WithEMA(enabled))
	}
}

func WithAlpha(alpha float64) Option {
	return func(b *Bar) {
		b.meterOpts = append(b.meterOpts, meter.WithAlpha(alpha))
	}
}

func WithRefreshRate(perSecond int) Option {
	return func(b *Bar) {
		b.meterOpts = append(b.meterOpts, meter.WithRefreshRate(perSecond))
	}
}

// WithClock overrides the meter's time source.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		b.meterOpts = append(b.meterOpts, meter.WithClock(now))
	}
}

// New returns a bar expecting total units. A zero or negative total
// means the total is unknown: the bar pulses instead of filling until a
// later update supplies one.
func New(total int64, opts ...Option) (*Bar, error) {
	b := &Bar{
		theme:  ThemeDefault,
		width:  defaultWidth,
		color:  !envconfig.NoColor,
		units:  "it",
		writer: os.Stderr,
		total:  total,
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.theme.validate(); err != nil {
		return nil, err
	}

	b.meter = meter.New(append([]meter.Option{meter.WithTotal(total)}, b.meterOpts...)...)
	if b.label != "" {
		b.meter.SetLabel(b.label)
	}
	b.out = display.NewLine(b.writer)
	return b, nil
}

// Set moves the bar to an absolute position and redraws when the meter
// accepts the report.
func (b *Bar) Set(n int64) {
	b.current = n
	b.observe(b.meter.Report(n, b.total))
}

// Add advances the bar by delta units.
func (b *Bar) Add(delta int64) {
	b.Set(b.current + delta)
}

// SetTotal replaces the expected total, growing or shrinking the run in
// place. Visible from the next update.
func (b *Bar) SetTotal(total int64) {
	b.total = total
}

// Describe sets the label shown ahead of the bar, visible on the next
// frame.
func (b *Bar) Describe(label string) {
	b.meter.SetLabel(label)
}

// Write counts bytes flowing through, letting a bar sit on the write
// side of an io.Copy.
func (b *Bar) Write(p []byte) (int, error) {
	b.Add(int64(len(p)))
	return len(p), nil
}

// Finish fills the bar, draws the final frame, and releases the line.
func (b *Bar) Finish() {
	if b.finished {
		return
	}
	b.finished = true

	snap := b.meter.Finish()
	if b.clear {
		b.out.StopAndClear()
		return
	}

	frame := b.frame(snap)
	width := lineWidth(frame)
	b.out.Set(frame, width, snap.PrevWidth)
	b.meter.RecordRender(width)
	b.rendered = frame
	b.out.Stop()
}

// Stop releases the terminal line without filling the bar, for loops
// that end early.
func (b *Bar) Stop() {
	if b.finished {
		return
	}
	b.finished = true
	b.out.Stop()
}

// Reset rewinds the bar to zero for reuse. The theme, writer, label, and
// smoothing configuration stay.
func (b *Bar) Reset() {
	b.meter.Reset()
	b.current = 0
	b.spin = 0
	b.rendered = ""
	b.finished = false
}

// Clear erases the bar from the terminal without finishing it.
func (b *Bar) Clear() {
	b.out.StopAndClear()
}

// Repaint redraws the last frame, for resize handlers.
func (b *Bar) Repaint() {
	b.out.Repaint()
}

// String returns the most recently rendered frame.
func (b *Bar) String() string {
	return b.rendered
}

// Current reports the last position given to Set or Add.
func (b *Bar) Current() int64 {
	return b.current
}

// Period exposes the meter's redraw period for diagnostics.
func (b *Bar) Period() int64 {
	return b.meter.Period()
}

// State exposes the meter's lifecycle state.
func (b *Bar) State() meter.State {
	return b.meter.State()
}

func (b *Bar) observe(snap meter.Snapshot, ok bool) {
	if !ok || b.finished {
		return
	}
	frame := b.frame(snap)
	width := lineWidth(frame)
	b.out.Set(frame, width, snap.PrevWidth)
	b.meter.RecordRender(width)
	b.rendered = frame
}
