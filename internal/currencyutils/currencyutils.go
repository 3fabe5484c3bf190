// Package currencyutils provides amount formatting and parsing helpers used
// by the display and export surfaces. The engine itself works on raw
// float64; decimal rounding happens only at the presentation edge.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a float as a fixed two-decimal currency string,
// e.g. 8112 -> "8112.00".
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatAUD renders a float as an AUD display string with a dollar sign and
// a leading minus for negative values, e.g. -188 -> "-$188.00".
func FormatAUD(amount float64) string {
	d := decimal.NewFromFloat(amount)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatRate renders a 0-1 decimal rate as a percentage string,
// e.g. 0.025 -> "2.50%".
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate * 100).StringFixed(2) + "%"
}

// ParseAmount parses a currency string back into a float64, accepting an
// optional dollar sign and thousands separators, e.g. "$1,234.56".
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d.InexactFloat64(), nil
}
