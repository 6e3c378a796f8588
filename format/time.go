package format

import (
	"fmt"
	"time"
)

// Clock renders a duration in the compact style shown beside a progress
// bar: MM:SS under an hour, H:MM:SS beyond it. Durations of 100 hours or
// more collapse to "99h+" so the column width stays bounded.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	if d >= 100*time.Hour {
		return "99h+"
	}

	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}
