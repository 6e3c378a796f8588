// Package meter estimates progress rates and decides when a display is
// worth redrawing. A Meter accepts absolute progress reports from a hot
// loop, smooths the observed rate over a sliding window of samples, and
// throttles accepted reports with an adaptive modulo gate so the caller
// can report on every iteration without drowning the terminal.
package meter

import (
	"math"
	"time"
)

const (
	// DefaultAlpha is the smoothing factor applied to each sample when the
	// exponential moving average is enabled.
	DefaultAlpha = 0.1

	// DefaultRefreshRate is how many redraws per second the adaptive
	// period aims for once the meter is tuned.
	DefaultRefreshRate = 10

	// warmupReports is how many accepted reports the meter collects before
	// it starts retuning the redraw period and widens the sample window.
	warmupReports = 10

	warmWindow  = 50
	tunedWindow = 75

	minPeriod = 1
	maxPeriod = 500000
)

// State reports where a Meter is in its lifecycle.
type State int

const (
	// StateFresh means no report has been accepted yet.
	StateFresh State = iota
	// StateWarming means reports are flowing but the redraw period is
	// still pinned at 1.
	StateWarming
	// StateTuned means the redraw period is being re-derived from the
	// observed rate on every accepted report.
	StateTuned
	// StateFinished is terminal; only Reset leaves it.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateWarming:
		return "warming"
	case StateTuned:
		return "tuned"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Snapshot is one render-worthy observation. Remaining is zero when no
// estimate is possible, and Total is zero or negative while the total is
// unknown.
type Snapshot struct {
	Percent   float64
	Fill      float64
	Current   int64
	Total     int64
	Elapsed   time.Duration
	Remaining time.Duration
	Rate      float64
	Label     string
	PrevWidth int
}

type config struct {
	total   int64
	ema     bool
	alpha   float64
	refresh int
	now     func() time.Time
}

type Option func(*config)

// WithTotal sets the expected final value. A zero or negative total means
// the total is unknown until a later report supplies one.
func WithTotal(total int64) Option {
	return func(c *config) {
		c.total = total
	}
}

// WithEMA toggles exponential smoothing. When disabled the rate is the
// plain quotient of units over seconds across the sample window.
func WithEMA(enabled bool) Option {
	return func(c *config) {
		c.ema = enabled
	}
}

// WithAlpha sets the EMA smoothing factor. Values outside (0, 1] are
// ignored.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		if alpha > 0 && alpha <= 1 {
			c.alpha = alpha
		}
	}
}

// WithRefreshRate sets the redraws-per-second target the adaptive period
// is derived from. Values below 1 are ignored.
func WithRefreshRate(perSecond int) Option {
	return func(c *config) {
		if perSecond >= 1 {
			c.refresh = perSecond
		}
	}
}

// WithClock overrides the time source. Tests use it to drive the meter
// deterministically.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// Meter is the rate and redraw engine behind a progress display. It is not
// safe for concurrent use; a loop reporting progress owns its meter.
type Meter struct {
	cfg config

	total   int64
	current int64
	prev    int64

	// start anchors Elapsed. Values from time.Now carry a monotonic
	// reading, so subtractions are immune to wall-clock jumps.
	start      time.Time
	lastReport time.Time

	window   *window
	period   int64
	accepted int
	lastRate float64

	label     string
	prevWidth int
	state     State
	final     Snapshot
}

// New returns a Meter with the redraw period pinned at 1, an empty sample
// window, and smoothing configured by opts.
func New(opts ...Option) *Meter {
	cfg := config{
		total:   -1,
		ema:     true,
		alpha:   DefaultAlpha,
		refresh: DefaultRefreshRate,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Meter{cfg: cfg, window: newWindow(warmWindow)}
	m.rewind()
	return m
}

// rewind restores the just-constructed state. The label is deliberately
// kept so a reused meter keeps its description.
func (m *Meter) rewind() {
	now := m.cfg.now()
	m.total = m.cfg.total
	m.current = 0
	m.prev = 0
	m.start = now
	m.lastReport = now
	m.window.reset()
	m.window.setLimit(warmWindow)
	m.period = minPeriod
	m.accepted = 0
	m.lastRate = 0
	m.prevWidth = 0
	m.state = StateFresh
	m.final = Snapshot{}
}

// Report records that progress has reached current and reports whether the
// display should redraw. An optional total replaces the stored total
// immediately, even on calls the redraw gate skips. Values of current that
// are not multiples of the current redraw period are skipped unless the
// run is within one period of a known total, in which case every call
// yields a final-looking snapshot. A finished meter ignores reports.
func (m *Meter) Report(current int64, total ...int64) (Snapshot, bool) {
	if len(total) > 0 {
		m.total = total[0]
	}
	m.current = current

	if m.state == StateFinished {
		return Snapshot{}, false
	}
	if current%m.period != 0 && !m.nearCompletion(current) {
		return Snapshot{}, false
	}
	return m.accept(current, false), true
}

func (m *Meter) nearCompletion(current int64) bool {
	return m.total > 0 && m.total-current <= m.period
}

// accept runs the unthrottled half of a report: slide the sample window,
// smooth the rate, retune the redraw period once warm-up is over, and
// build the snapshot.
func (m *Meter) accept(current int64, finishing bool) Snapshot {
	now := m.cfg.now()
	m.accepted++

	elapsed := now.Sub(m.start)
	m.window.push(sample{
		seconds: now.Sub(m.lastReport).Seconds(),
		count:   current - m.prev,
	})
	m.prev = current
	m.lastReport = now

	rate := m.smoothedRate()

	if m.accepted > warmupReports {
		m.retune(current, elapsed)
		m.state = StateTuned
	} else {
		m.state = StateWarming
	}

	snap := Snapshot{
		Current:   current,
		Total:     m.total,
		Elapsed:   elapsed,
		Rate:      rate,
		Label:     m.label,
		PrevWidth: m.prevWidth,
	}

	if finishing || m.nearCompletion(current) {
		// The run is effectively over. Report a clean 100% with the
		// whole-run average rate instead of whatever the window says.
		snap.Current = m.total
		snap.Percent = 100
		snap.Fill = 1
		snap.Remaining = 0
		if secs := elapsed.Seconds(); secs > 0 {
			snap.Rate = float64(m.total) / secs
		}
		return snap
	}

	if m.total > 0 {
		snap.Percent = float64(current) * 100 / float64(m.total)
		snap.Fill = float64(current) / float64(m.total)
		if rate > 0 {
			seconds := float64(m.total-current) / rate
			snap.Remaining = time.Duration(seconds * float64(time.Second))
		}
	}
	return snap
}

// smoothedRate recomputes the displayed rate from every sample currently
// in the window. The exponential average is rebuilt from the oldest sample
// forward on each call rather than carried as a running value, so alpha
// and capacity changes apply retroactively to recent history.
func (m *Meter) smoothedRate() float64 {
	if m.cfg.ema {
		return m.emaRate()
	}
	return m.simpleRate()
}

func (m *Meter) emaRate() float64 {
	rate := math.NaN()
	for i := range m.window.len() {
		s := m.window.at(i)
		if s.seconds <= 0 {
			// reports arriving faster than the clock resolves carry no
			// usable interval
			continue
		}
		r := float64(s.count) / s.seconds
		if math.IsNaN(rate) {
			rate = r
			continue
		}
		rate = m.cfg.alpha*r + (1-m.cfg.alpha)*rate
	}
	if math.IsNaN(rate) {
		return m.lastRate
	}
	m.lastRate = rate
	return rate
}

func (m *Meter) simpleRate() float64 {
	var units int64
	var seconds float64
	for i := range m.window.len() {
		s := m.window.at(i)
		units += s.count
		seconds += s.seconds
	}
	if seconds <= 0 {
		return m.lastRate
	}
	rate := float64(units) / seconds
	m.lastRate = rate
	return rate
}

// retune widens the sample window and re-derives the redraw period from
// the overall observed rate, so the display refreshes about refresh times
// per second no matter how hot the reporting loop is.
func (m *Meter) retune(current int64, elapsed time.Duration) {
	m.window.setLimit(tunedWindow)

	secs := elapsed.Seconds()
	if secs <= 0 {
		return
	}
	period := math.Round(float64(current) / secs / float64(m.cfg.refresh))
	if period < minPeriod {
		period = minPeriod
	} else if period > maxPeriod {
		period = maxPeriod
	}
	m.period = int64(period)
}

// Finish bypasses the redraw gate, emits a final 100% snapshot, and moves
// the meter to its terminal state. When the total was never known the last
// reported value is adopted so the final line reads n/n. Finishing twice
// returns the same snapshot.
func (m *Meter) Finish() Snapshot {
	if m.state == StateFinished {
		return m.final
	}
	if m.total <= 0 {
		m.total = m.current
	}
	m.current = m.total
	snap := m.accept(m.total, true)
	m.state = StateFinished
	m.final = snap
	return snap
}

// Reset returns the meter to its just-constructed state. Options given to
// New and the label survive; counters, samples, timing anchors, and the
// redraw period do not.
func (m *Meter) Reset() {
	m.rewind()
}

// SetLabel sets the description carried on every snapshot. It may be
// changed mid-run.
func (m *Meter) SetLabel(label string) {
	m.label = label
}

func (m *Meter) Label() string {
	return m.label
}

// RecordRender stores the cell width of the line a renderer just drew. The
// next snapshot carries it back so the renderer can pad over leftovers
// from a longer previous line.
func (m *Meter) RecordRender(width int) {
	if width < 0 {
		width = 0
	}
	m.prevWidth = width
}

func (m *Meter) State() State {
	return m.state
}

// Period reports the current redraw period. It is 1 until warm-up
// completes and bounded by [1, 500000] after.
func (m *Meter) Period() int64 {
	return m.period
}
