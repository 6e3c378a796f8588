package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// Set via PACE_DEBUG in the environment
	Debug bool
	// Set via NO_COLOR or PACE_NOCOLOR in the environment
	NoColor bool
	// Set via PACE_THEME in the environment
	Theme string
	// Set via PACE_WIDTH in the environment
	Width int
	// Set via PACE_FPS in the environment
	TargetFPS int
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"PACE_DEBUG":   {"PACE_DEBUG", Debug, "Log engine diagnostics after the bar stops (e.g. PACE_DEBUG=1)"},
		"NO_COLOR":     {"NO_COLOR", NoColor, "Disable color output (https://no-color.org)"},
		"PACE_NOCOLOR": {"PACE_NOCOLOR", NoColor, "Disable color output (alias for NO_COLOR)"},
		"PACE_THEME":   {"PACE_THEME", Theme, "Default bar theme (default, line, circle, braille, vertical, basic)"},
		"PACE_WIDTH":   {"PACE_WIDTH", Width, "Fixed bar width in cells instead of sizing to the terminal"},
		"PACE_FPS":     {"PACE_FPS", TargetFPS, "Target redraws per second for the adaptive refresh engine (default 10)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	Debug = false
	if debug := clean("PACE_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	// NO_COLOR is defined by convention as "set, and not empty, regardless
	// of value"
	NoColor = os.Getenv("NO_COLOR") != ""
	if nocolor := clean("PACE_NOCOLOR"); nocolor != "" {
		if nc, err := strconv.ParseBool(nocolor); err == nil {
			NoColor = NoColor || nc
		} else {
			NoColor = true
		}
	}

	Theme = strings.ToLower(clean("PACE_THEME"))

	Width = 0
	if width := clean("PACE_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil && w > 0 {
			Width = w
		}
	}

	TargetFPS = 0
	if fps := clean("PACE_FPS"); fps != "" {
		if f, err := strconv.Atoi(fps); err == nil && f > 0 {
			TargetFPS = f
		}
	}
}
