// Package percent implements a simple and straightforward type for percentage
// values, as used for grid track sizes.
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values
type Percent uint8

func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromString parses "33%" or "33". Values outside 0…100 are clamped.
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(s)
	return FromInt(n), err
}

// Fraction returns p as a fraction of one.
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

// Of returns p percent of x.
func (p Percent) Of(x float64) float64 {
	return x * p.Fraction()
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

// CalcMinus formats a CSS calc expression subtracting a fixed amount from p,
// e.g. "calc(33% - 1rem)".
func (p Percent) CalcMinus(amount string) string {
	return "calc(" + p.String() + " - " + amount + ")"
}
