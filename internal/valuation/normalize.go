package valuation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	moneyRe    = regexp.MustCompile(`(?i)\$([0-9.]+)([BM])`)
	percentRe  = regexp.MustCompile(`([0-9.]+)%`)
	nonNumeric = regexp.MustCompile(`[^0-9.]`)
	nonDigit   = regexp.MustCompile(`[^0-9]`)
)

// isSentinel reports whether the cell text is an intentional missing-value
// marker rather than a malformed number.
func isSentinel(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "N/A", "-":
		return true
	}
	return false
}

// ParseMonetaryBillions normalizes cell text like "$6.7B", "$930M" or a bare
// "6.7" into billions of US dollars. Sentinels and unparseable text yield nil.
// Bare numbers are assumed to already be in billions.
func ParseMonetaryBillions(raw string) *float64 {
	if isSentinel(raw) {
		return nil
	}
	if m := moneyRe.FindStringSubmatch(raw); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		if strings.EqualFold(m[2], "M") {
			v /= 1000.0
		}
		return &v
	}
	// No currency-unit pattern: strip everything but digits and dots and try
	// a plain float parse.
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParsePercent normalizes cell text like "19%" or a bare "0" into a float on
// a 0-100 scale. Sentinels and unparseable text yield nil.
func ParsePercent(raw string) *float64 {
	if isSentinel(raw) {
		return nil
	}
	if m := percentRe.FindStringSubmatch(raw); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		return &v
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseRank reduces cell text to a positive integer rank by stripping every
// non-digit character first.
func parseRank(raw string) (int, bool) {
	digits := nonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
