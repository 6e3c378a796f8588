package format

import "fmt"

const (
	Byte     = 1
	KiloByte = Byte * 1000
	MegaByte = KiloByte * 1000
	GigaByte = MegaByte * 1000
	TeraByte = GigaByte * 1000
)

// HumanBytes renders a byte count with decimal units, one fractional digit
// above the kilobyte boundary.
func HumanBytes(b int64) string {
	switch {
	case b >= TeraByte:
		return fmt.Sprintf("%.1f TB", float64(b)/TeraByte)
	case b >= GigaByte:
		return fmt.Sprintf("%.1f GB", float64(b)/GigaByte)
	case b >= MegaByte:
		return fmt.Sprintf("%.1f MB", float64(b)/MegaByte)
	case b >= KiloByte:
		return fmt.Sprintf("%.1f KB", float64(b)/KiloByte)
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// HumanCount renders an iteration count or rate with SI suffixes. Values
// under a thousand keep enough precision to be useful next to a bar: two
// fractional digits below ten, one below a hundred.
func HumanCount(n float64) string {
	const (
		thousand = 1000.0
		million  = thousand * 1000
		billion  = million * 1000
		trillion = billion * 1000
	)

	switch {
	case n >= trillion:
		return fmt.Sprintf("%sT", decimalPlace(n/trillion))
	case n >= billion:
		return fmt.Sprintf("%sB", decimalPlace(n/billion))
	case n >= million:
		return fmt.Sprintf("%sM", decimalPlace(n/million))
	case n >= thousand:
		return fmt.Sprintf("%sK", decimalPlace(n/thousand))
	default:
		return decimalPlace(n)
	}
}

func decimalPlace(n float64) string {
	switch {
	case n >= 100:
		return fmt.Sprintf("%.0f", n)
	case n >= 10:
		return fmt.Sprintf("%.1f", n)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}
