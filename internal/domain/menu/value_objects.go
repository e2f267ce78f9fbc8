package menu

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice     = errors.New("a valid number is required")
	ErrPriceNegative    = errors.New("price cannot be negative")
	ErrPriceDigits      = errors.New("price has more than 10 digits")
	ErrPricePrecision   = errors.New("price has more than 2 decimal places")
	ErrPriceWholeDigits = errors.New("price has more than 8 digits before the decimal point")
)

const (
	priceMaxDigits   = 10
	priceDecimals    = 2
	priceMaxIntegers = priceMaxDigits - priceDecimals
)

// Money is an amount in cents. It maps to numeric(10,2).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrPriceNegative
	}
	return Money{cents: cents}, nil
}

// ParseMoney accepts any decimal literal, including "+5" and "1e1".
// Digits are counted as written, so "1.000" has three decimal places.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, ErrInvalidPrice
	}
	if d.IsNegative() {
		return Money{}, ErrPriceNegative
	}

	digits, exp := d.NumDigits(), int(d.Exponent())
	var total, decimals int
	switch {
	case exp >= 0:
		total = digits + exp
	case digits > -exp:
		total, decimals = digits, -exp
	default:
		total, decimals = -exp, -exp
	}

	switch {
	case total > priceMaxDigits:
		return Money{}, ErrPriceDigits
	case decimals > priceDecimals:
		return Money{}, ErrPricePrecision
	case total-decimals > priceMaxIntegers:
		return Money{}, ErrPriceWholeDigits
	}
	return Money{cents: d.Shift(priceDecimals).IntPart()}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// String renders the amount with exactly two decimals, e.g. "12.50".
func (m Money) String() string {
	return decimal.New(m.cents, -priceDecimals).StringFixed(priceDecimals)
}
