package domain

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "42", Money(42000).String())
	assert.Equal(t, "-42", Money(-42000).String())
	assert.Equal(t, "4.242", Money(4242).String())
	assert.Equal(t, "-4.242", Money(-4242).String())
	assert.Equal(t, "0.000", Money(0).String())
	assert.Equal(t, "42.100", Money(42100).String())
	assert.Equal(t, "1000", Money(1000000).String())
	assert.Equal(t, "1.001", Money(1001).String())
}

func TestMoneyStringSingleDigit(t *testing.T) {
	for i := int64(1); i <= 9; i++ {
		assert.Equal(t, "0.00"+strconv.FormatInt(i, 10), Money(i).String())
		assert.Equal(t, "-0.00"+strconv.FormatInt(i, 10), Money(-i).String())
	}
}

func TestMoneyStringDoubleDigit(t *testing.T) {
	for i := int64(10); i <= 99; i++ {
		assert.Equal(t, "0.0"+strconv.FormatInt(i, 10), Money(i).String())
		assert.Equal(t, "-0.0"+strconv.FormatInt(i, 10), Money(-i).String())
	}
}

func TestMoneyStringTripleDigit(t *testing.T) {
	for i := int64(100); i <= 999; i++ {
		assert.Equal(t, "0."+strconv.FormatInt(i, 10), Money(i).String())
		assert.Equal(t, "-0."+strconv.FormatInt(i, 10), Money(-i).String())
	}
}

func TestParseMoney(t *testing.T) {
	cases := map[string]Money{
		"42":     42000,
		"42.5":   42500,
		"42.50":  42500,
		"42.507": 42507,
		"0.001":  1,
		"-0.003": -3,
		"-4.242": -4242,
		"0.000":  0,
		"1000":   1000000,
	}

	for input, want := range cases {
		got, err := ParseMoney(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseMoneyTooPrecise(t *testing.T) {
	for _, input := range []string{"42.5071", "0.0001", "-0.0001", "1.00000"} {
		_, err := ParseMoney(input)
		require.ErrorIs(t, err, ErrValueTooPrecise, "input %q", input)
	}
}

func TestParseMoneyInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "4.2.4", "1,5"} {
		_, err := ParseMoney(input)
		require.Error(t, err, "input %q", input)

		var appErr *Error
		require.ErrorAs(t, err, &appErr, "input %q", input)
		assert.Equal(t, KindInvalidInput, appErr.Kind, "input %q", input)
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	values := []Money{
		0, 1, -1, 9, -9, 10, -10, 99, -99, 100, -100, 999, -999,
		1000, -1000, 1001, -1001, 4242, -4242, 42000, -42000,
		42100, -42100, 42507, -42507,
		math.MaxInt64, math.MinInt64,
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		values = append(values, Money(rng.Int63n(2_000_000_000_000)-1_000_000_000_000))
	}

	for _, v := range values {
		parsed, err := ParseMoney(v.String())
		require.NoError(t, err, "value %d rendered %q", int64(v), v.String())
		assert.Equal(t, v, parsed, "value %d rendered %q", int64(v), v.String())
	}
}
