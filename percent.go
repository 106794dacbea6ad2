package gradpick

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParsePercent parses a position written as "35%", "35" or "0.35".
// Values above 1 and values with a percent sign are read as percentages.
// The result must lie in [0, 1].
func ParsePercent(s string) (float64, error) {
	text := strings.TrimSpace(s)
	percent := strings.HasSuffix(text, "%")
	text = strings.TrimSpace(strings.TrimSuffix(text, "%"))

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: percent %q", ErrInvalidFormat, s)
	}
	if percent || v > 1 {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: percent %q out of range", ErrInvalidFormat, s)
	}
	return v, nil
}

// FormatPercent formats a position as a percentage rounded to two
// decimals, using the number conventions of tag.
func FormatPercent(v float64, tag language.Tag) string {
	pct := math.Round(v*100*100) / 100
	p := message.NewPrinter(tag)
	return p.Sprintf("%v%%", number.Decimal(pct, number.MaxFractionDigits(2)))
}
