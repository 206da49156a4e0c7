package swap

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFractionDigits is used when echoing a derived amount back into a
// form field; rate display uses 8.
const DefaultFractionDigits = 6

// FormatAmount renders a value with thousands separators and up to the given
// number of fraction digits, trailing zeros trimmed. Non-finite values
// render as "0".
func FormatAmount(value float64, fractionDigits int) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "0"
	}

	s := strconv.FormatFloat(value, 'f', fractionDigits, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		fracPart = strings.TrimRight(fracPart, "0")
	}

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	grouped := groupThousands(intPart)
	if negative {
		grouped = "-" + grouped
	}
	if fracPart != "" {
		return grouped + "." + fracPart
	}
	return grouped
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
