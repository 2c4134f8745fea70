package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

// ParseStatus accepts a status name, case-insensitively
func ParseStatus(v string) (models.Status, error) {
	st, err := models.ParseStatus(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q (must be: accepted, pending, declined)", models.ErrInvalidStatus, v)
	}
	return st, nil
}

// ParsePage converts a 1-based page argument to the 0-based page index
func ParsePage(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q (pages start at 1)", models.ErrInvalidPage, v)
	}
	return n - 1, nil
}

// ValidateTotal rejects negative seed counts
func ValidateTotal(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("--%s must not be negative, got %d", name, n)
	}
	return nil
}

// FormatAmount renders a currency amount with thousands separators
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}
