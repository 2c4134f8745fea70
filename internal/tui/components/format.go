package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// FormatCount abbreviates a record count: 1.2M, 800K, 42
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	}
	return strconv.Itoa(n)
}

// FormatCompact abbreviates a money amount: $30.1B, $25.0M, $12K, $950
func FormatCompact(n float64) string {
	switch {
	case n >= 1_000_000_000:
		return "$" + strconv.FormatFloat(n/1_000_000_000, 'f', 1, 64) + "B"
	case n >= 1_000_000:
		return "$" + strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return "$" + strconv.FormatFloat(n/1_000, 'f', 0, 64) + "K"
	}
	return "$" + strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatCurrency renders a whole-dollar amount with thousands separators
func FormatCurrency(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatFloat(n, 'f', 0, 64)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatDate renders a date like "Jan 2, 2024"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Truncate shortens s to at most width terminal cells, ending in an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
