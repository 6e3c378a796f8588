package bar

import (
	"fmt"
	"strings"
)

// themeGlyphs is the palette size every theme must have: an empty cell,
// seven partial fills, and a full cell, ordered least to most filled.
const themeGlyphs = 9

// Theme is the ordered glyph palette a bar is drawn with.
type Theme []string

var (
	// ThemeDefault draws with eighth-block glyphs for smooth fills.
	ThemeDefault = Theme{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

	ThemeLine     = Theme{" ", "╴", "╴", "╴", "╾", "╾", "╾", "╾", "━"}
	ThemeCircle   = Theme{" ", "◔", "◔", "◑", "◑", "◕", "◕", "●", "●"}
	ThemeBraille  = Theme{" ", "⡀", "⡄", "⡆", "⡇", "⡏", "⡟", "⡿", "⣿"}
	ThemeVertical = Theme{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

	// ThemeBasic stays within ASCII for terminals without block glyphs.
	ThemeBasic = Theme{" ", " ", " ", " ", " ", " ", " ", " ", "#"}
)

var themes = map[string]Theme{
	"default":  ThemeDefault,
	"line":     ThemeLine,
	"circle":   ThemeCircle,
	"braille":  ThemeBraille,
	"vertical": ThemeVertical,
	"basic":    ThemeBasic,
}

// ThemeByName resolves a configuration name to its palette.
func ThemeByName(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// ThemeNames lists the accepted theme names in a stable order.
func ThemeNames() []string {
	return []string{"default", "line", "circle", "braille", "vertical", "basic"}
}

func (t Theme) validate() error {
	if len(t) != themeGlyphs {
		return fmt.Errorf("theme needs exactly %d glyphs, got %d", themeGlyphs, len(t))
	}
	return nil
}

// fill renders fraction across width cells, using the palette's partial
// glyphs for the boundary cell.
func (t Theme) fill(width int, fraction float64) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	cells := fraction * float64(width)
	full := int(cells)

	var sb strings.Builder
	for range full {
		sb.WriteString(t[themeGlyphs-1])
	}
	if full < width {
		sb.WriteString(t[int((cells-float64(full))*float64(themeGlyphs-1))])
		for range width - full - 1 {
			sb.WriteString(t[0])
		}
	}
	return sb.String()
}
