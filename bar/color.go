package bar

import "fmt"

const escReset = "\033[0m"

// colorize wraps s in a 24-bit foreground escape whose hue runs from red
// at an empty bar through yellow to green at a full one.
func colorize(s string, fraction float64) string {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	r, g, b := hsvToRGB(fraction/3, 0.7, 0.9)
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s%s", r, g, b, s, escReset)
}

// hsvToRGB converts h, s, v in [0, 1] to 8-bit RGB channels.
func hsvToRGB(h, s, v float64) (int, int, int) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return int(r * 255), int(g * 255), int(b * 255)
}
