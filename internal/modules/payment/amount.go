package payment

import (
	"strconv"
	"strings"
)

// sanitizeAmount normalizes a free-form decimal string: everything but
// digits and separators is stripped, a comma separator becomes a dot,
// and the result must parse to a positive value.
func sanitizeAmount(raw string) (float64, error) {
	var b strings.Builder
	for _, ch := range raw {
		switch {
		case ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '.' || ch == ',':
			b.WriteRune(ch)
		}
	}

	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	if cleaned == "" || strings.Count(cleaned, ".") > 1 {
		return 0, ErrInvalidAmount
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
