package swap

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxAmountLength caps free-text amount input.
const MaxAmountLength = 24

var decimalShape = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ValidateAmount turns free-text input into a positive decimal value.
// Rules apply in a fixed order and the first failure wins, so every input
// maps to exactly one of the Amount* errors. The function is pure: it
// consults nothing beyond its argument.
func ValidateAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, ErrAmountRequired
	}
	if len(trimmed) > MaxAmountLength {
		return 0, ErrAmountTooLong
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			return 0, ErrAmountNonNumeric
		}
	}
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
		case r == ',' || r == '.' || r == '-':
		default:
			return 0, ErrAmountInvalidChars
		}
	}
	if strings.ContainsRune(trimmed, '-') {
		return 0, ErrAmountNegative
	}

	stripped := strings.ReplaceAll(trimmed, ",", "")
	if !decimalShape.MatchString(stripped) {
		return 0, ErrAmountMalformed
	}

	value, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, ErrAmountMalformed
	}
	if math.IsInf(value, 0) || value <= 0 {
		return 0, ErrAmountNotPositive
	}
	return value, nil
}

// normalizeAmountInput compacts whitespace out of a raw keystroke value and
// enforces the length cap before it enters the form state.
func normalizeAmountInput(raw string) string {
	compact := strings.Join(strings.Fields(raw), "")
	if len(compact) > MaxAmountLength {
		compact = compact[:MaxAmountLength]
	}
	return compact
}
