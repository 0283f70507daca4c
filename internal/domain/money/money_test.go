package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseBRL(t *testing.T) {
	cases := map[string]int64{
		"45,50":         4550,
		"120,00":        12000,
		"1.245.000,00":  124500000,
		"85,75":         8575,
		" 0,01 ":        1,
		"10":            1000,
		"":              0,
		"abc":           0,
		"12,3x":         0,
		"1.200,505":     120051,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseBRL(in), "input %q", in)
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "45,50", FormatBRL(4550))
	assert.Equal(t, "0,05", FormatBRL(5))
	assert.Equal(t, "0,00", FormatBRL(0))
	assert.Equal(t, "1.245.000,00", FormatBRL(124500000))
	assert.Equal(t, "22.522,50", FormatBRL(2252250))
	assert.Equal(t, "-12,00", FormatBRL(-1200))
}

func TestParseBRLFormatBRLRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 4550, 22750, 2252250, 124500000} {
		assert.Equal(t, cents, ParseBRL(FormatBRL(cents)))
	}
}

func TestParseDecimal(t *testing.T) {
	assert.True(t, decimal.RequireFromString("1200.50").Equal(ParseDecimal("1.200,50")))
	assert.True(t, decimal.NewFromInt(500).Equal(ParseDecimal("500")))
	assert.True(t, ParseDecimal("not a number").IsZero())
	assert.True(t, ParseDecimal("").IsZero())
}

func TestParseDecimalAny(t *testing.T) {
	assert.True(t, decimal.RequireFromString("1200.5").Equal(ParseDecimalAny(1200.5)))
	assert.True(t, decimal.NewFromInt(300).Equal(ParseDecimalAny(300)))
	assert.True(t, decimal.NewFromInt(300).Equal(ParseDecimalAny(int64(300))))
	assert.True(t, decimal.RequireFromString("1200.5").Equal(ParseDecimalAny("1.200,5")))
	assert.True(t, decimal.RequireFromString("12.25").Equal(ParseDecimalAny(json.Number("12.25"))))
	assert.True(t, ParseDecimalAny(nil).IsZero())
	assert.True(t, ParseDecimalAny(true).IsZero())
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "1.200,5", FormatDecimal(decimal.RequireFromString("1200.5")))
	assert.Equal(t, "500", FormatDecimal(decimal.NewFromInt(500)))
	assert.Equal(t, "0", FormatDecimal(decimal.Zero))
	assert.Equal(t, "-1.000,25", FormatDecimal(decimal.RequireFromString("-1000.25")))

	d := decimal.RequireFromString("1234567.125")
	assert.True(t, d.Equal(ParseDecimal(FormatDecimal(d))))
}

func TestIsDecimal(t *testing.T) {
	for _, s := range []string{"45,50", "1.200,5", "300", " 12 ", "-45,50", "1.250.000,125", "0,5"} {
		assert.True(t, IsDecimal(s), s)
	}
	for _, s := range []string{"", "abc", "12,5,0", "R$ 10", "1.2.3", "12.50", "1.2000,00", ",5", "45,", "+3"} {
		assert.False(t, IsDecimal(s), s)
	}
}

func TestIsMoney(t *testing.T) {
	for _, s := range []string{"45,50", "45,5", "45", "1.250,00", "-10,00"} {
		assert.True(t, IsMoney(s), s)
	}
	for _, s := range []string{"45,505", "1.2.3", "abc", ""} {
		assert.False(t, IsMoney(s), s)
	}
}
