// Package money converts between the decimal-comma strings used at the storage and
// HTTP boundary ("1.245.000,50") and the integer minor units used for arithmetic.
//
// Parsing never fails: malformed input yields zero so forms stay usable.
package money

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseDecimal reads a decimal-comma number with optional thousands dots.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// decimalPattern is an optional sign, an integer part either plain or grouped in
// thousands with dots, and an optional comma fraction.
var decimalPattern = regexp.MustCompile(`^-?(\d+|\d{1,3}(\.\d{3})+)(,(\d+))?$`)

// IsDecimal reports whether s is a well-formed decimal-comma number, the check
// forms run before accepting a value that ParseDecimal would read as zero.
// Misplaced thousands dots ("1.2.3") are rejected.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(strings.TrimSpace(s))
}

// IsMoney is IsDecimal limited to whole cents: at most two fraction digits.
func IsMoney(s string) bool {
	m := decimalPattern.FindStringSubmatch(strings.TrimSpace(s))
	return m != nil && len(m[4]) <= 2
}

// ParseDecimalAny accepts either a native number or a decimal-comma string.
// Stores written by other clients hold floor areas in both shapes.
func ParseDecimalAny(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case string:
		return ParseDecimal(x)
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// ParseBRL parses a currency string ("45,50") into cents.
func ParseBRL(s string) int64 {
	return ParseDecimal(s).Mul(hundred).Round(0).IntPart()
}

// FormatBRL renders cents as "1.245.000,50".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	intPart := strconv.FormatInt(cents/100, 10)
	frac := cents % 100
	return fmt.Sprintf("%s%s,%02d", sign, groupThousands(intPart), frac)
}

// FormatDecimal renders a decimal with a comma separator and thousands dots,
// keeping only the significant fractional digits (1200.5 -> "1.200,5").
func FormatDecimal(d decimal.Decimal) string {
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := sign + groupThousands(intPart)
	if hasFrac {
		out += "," + frac
	}
	return out
}

// CentsToDecimal converts minor units to a decimal amount in reais.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
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
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
