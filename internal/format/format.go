// Package format renders money, dates, and percentages for display.
// The locale convention is carried by a Money value built from config,
// defaulting to Chilean pesos: symbol "$", dot thousands separator,
// no decimal places.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NoLimitLabel is shown in place of a target amount for open-ended goals.
const NoLimitLabel = "Sin límite"

// dateLayout is the Chilean day-first date convention.
const dateLayout = "02-01-2006"

// Money formats integer amounts under a fixed currency convention.
type Money struct {
	Symbol       string
	ThousandsSep string
	DecimalSep   string
	Decimals     int
}

// CLP is the default Chilean peso convention: 15000 -> "$15.000".
var CLP = Money{Symbol: "$", ThousandsSep: ".", DecimalSep: ",", Decimals: 0}

// Format renders an amount with the configured symbol and separators.
// When Decimals > 0, the amount is interpreted in minor units.
func (m Money) Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := amount
	frac := ""
	if m.Decimals > 0 {
		div := int64(1)
		for i := 0; i < m.Decimals; i++ {
			div *= 10
		}
		whole = amount / div
		frac = m.DecimalSep + fmt.Sprintf("%0*d", m.Decimals, amount%div)
	}

	s := m.Symbol + groupDigits(whole, m.ThousandsSep) + frac
	if neg {
		return "-" + s
	}
	return s
}

// groupDigits inserts the separator every three digits from the right.
func groupDigits(n int64, sep string) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 || sep == "" {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Percent renders a [0,1] fraction as a rounded integer percentage.
func Percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// Date renders a date in the local day-first convention.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a day-first date as entered by the user.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (expected DD-MM-YYYY): %w", s, err)
	}
	return t, nil
}
