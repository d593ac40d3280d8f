package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a signed amount counted in thousandths of the display unit.
// 4242 displays as "4.242", 42000 displays as "42".
type Money int64

// moneyPrecision is the number of fractional digits a display string carries.
const moneyPrecision = 3

// Prefixes for magnitudes below one display unit, one per digit band.
const (
	singleDigit    = "0.00"
	singleNegDigit = "-0.00"
	doubleDigit    = "0.0"
	doubleNegDigit = "-0.0"
	tripleDigit    = "0."
	tripleNegDigit = "-0."
)

// ErrValueTooPrecise is returned by ParseMoney when the input carries more
// than three fractional digits. The extra digits are rejected outright,
// never rounded away.
var ErrValueTooPrecise = &Error{Kind: KindInvalidInput, Message: "the money value given is too precise"}

func (m Money) String() string {
	switch {
	case m == 0:
		return "0.000"
	case m >= 1 && m <= 9:
		return singleDigit + strconv.FormatInt(int64(m), 10)
	case m >= -9 && m <= -1:
		return singleNegDigit + strconv.FormatInt(-int64(m), 10)
	case m >= 10 && m <= 99:
		return doubleDigit + strconv.FormatInt(int64(m), 10)
	case m >= -99 && m <= -10:
		return doubleNegDigit + strconv.FormatInt(-int64(m), 10)
	case m >= 100 && m <= 999:
		return tripleDigit + strconv.FormatInt(int64(m), 10)
	case m >= -999 && m <= -100:
		return tripleNegDigit + strconv.FormatInt(-int64(m), 10)
	default:
		s := strconv.FormatInt(int64(m), 10)
		if strings.HasSuffix(s, "000") {
			return s[:len(s)-moneyPrecision]
		}
		return s[:len(s)-moneyPrecision] + "." + s[len(s)-moneyPrecision:]
	}
}

// ParseMoney reads a decimal string with an optional leading '-', an integer
// part and at most three digits after a single '.'. The value is evaluated
// exactly and scaled by 1000, so ParseMoney(m.String()) == m for every m.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &Error{Kind: KindInvalidInput, Message: "could not parse money from string", Err: err}
	}

	if d.Exponent() < -moneyPrecision {
		return 0, ErrValueTooPrecise
	}

	scaled := d.Shift(moneyPrecision).BigInt()
	if !scaled.IsInt64() {
		return 0, InvalidInput("the money value given is out of range")
	}

	return Money(scaled.Int64()), nil
}
