// Package money provides functionality for handling monetary values.
//
// Amounts are arbitrary-precision decimals. Arithmetic never rounds; callers
// that derive amounts (interest) round them with Round before booking.
// Invariants:
//   - Formatted amounts always carry exactly StorePlaces decimal places.
//   - Parsing accepts plain decimal notation with at most StorePlaces decimal
//     places (no currency symbols or grouping).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StorePlaces is the number of decimal places amounts are written with.
const StorePlaces int32 = 2

// Amount is a monetary value in the bank's single implicit currency.
type Amount = decimal.Decimal

// Zero is the zero amount.
var Zero = decimal.Zero

// Parse converts a plain decimal string such as "1000" or "-500.25" into an Amount.
// Values finer than StorePlaces, such as "0.005", are rejected.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	if !d.Equal(Round(d)) {
		return Zero, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, StorePlaces)
	}
	return d, nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Amount {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.MustParse(%q): %v", s, err))
	}
	return d
}

// New creates an Amount from whole units, e.g. New(1000) is 1000.00.
func New(units int64) Amount {
	return decimal.NewFromInt(units)
}

// Format renders an amount with exactly StorePlaces decimal places, rounding half away from zero.
func Format(a Amount) string {
	return a.StringFixed(StorePlaces)
}

// Round rounds a to StorePlaces, half away from zero.
func Round(a Amount) Amount {
	return a.Round(StorePlaces)
}

// IsPositive reports whether a is strictly greater than zero.
func IsPositive(a Amount) bool {
	return a.IsPositive()
}

// Rate is a multiplicative rate such as a monthly interest rate.
type Rate struct {
	value decimal.Decimal
}

// NewRate parses a rate expressed as a fraction, e.g. "0.00025" for 0.025%.
func NewRate(fraction string) Rate {
	return Rate{value: decimal.RequireFromString(fraction)}
}

// Apply returns a × rate without rounding. Use Accrue for bookable amounts.
func (r Rate) Apply(a Amount) Amount {
	return a.Mul(r.value)
}

// Accrue returns a × rate rounded to StorePlaces.
func (r Rate) Accrue(a Amount) Amount {
	return Round(r.Apply(a))
}

// String renders the rate as a percentage, e.g. "0.025%".
func (r Rate) String() string {
	return r.value.Mul(decimal.NewFromInt(100)).String() + "%"
}
