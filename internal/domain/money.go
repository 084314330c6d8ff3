package domain

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value encoded on the wire as a plain JSON number.
// Historical documents carry the occasional malformed value; those decode to
// zero instead of failing, so a recalculation pass over old data always
// completes.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromFloat builds an Amount from a float value.
func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

// MarshalJSON encodes the amount as a plain JSON number, matching the stored
// document format.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts numbers, quoted numbers, null and garbage; anything
// that does not parse becomes zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d
	return nil
}
