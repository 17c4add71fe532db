package moneyfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// Float converts cents to a floating-point number of whole currency units,
// equal to cents / 100.
// See also method [Formatter.Cents].
//
// This conversion may lose precision for magnitudes above 2^53 cents, as
// float64 cannot represent every such integer exactly.
func (f *Formatter) Float(cents int64) float64 {
	v, _ := decimal.MustNew(cents, 2).Float64()
	return v
}

// Cents converts a floating-point number of whole currency units to cents,
// equal to x * 100 rounded to the nearest integer.
// Fractional digits beyond the second are rounded using [rounding half to
// even] (banker's rounding).
// See also method [Formatter.Float].
//
// Cents returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the result cannot be represented as an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (f *Formatter) Cents(x float64) (int64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("converting float: special value %v", x)
	}
	d, err := decimal.Parse(strconv.FormatFloat(x, 'f', -1, 64))
	if err != nil {
		return 0, fmt.Errorf("converting float: %w", err)
	}
	c, err := toCents(d)
	if err != nil {
		return 0, fmt.Errorf("converting float: %w", err)
	}
	return c, nil
}

// toCents converts a decimal number of whole currency units to cents,
// rounding half to even beyond the second fractional digit.
func toCents(d decimal.Decimal) (int64, error) {
	whole, frac, ok := d.Int64(2)
	if !ok {
		return 0, errAmountOverflow
	}
	if whole > 0 && whole > (math.MaxInt64-frac)/100 {
		return 0, errAmountOverflow
	}
	if whole < 0 && whole < (math.MinInt64-frac)/100 {
		return 0, errAmountOverflow
	}
	return whole*100 + frac, nil
}

// ParseCents converts a formatted amount string to cents.
// It strips every occurrence of the resolved thousands separator, swaps the
// first occurrence of the resolved decimal point for ".", and parses the
// remainder as a decimal number.
// Fractional digits beyond the second are rounded half to even.
//
// ParseCents trusts its input: it accepts negative amounts and reports an
// error on anything that is not a number. Use [Formatter.AmountRule] to
// validate user input beforehand.
func (f *Formatter) ParseCents(s string, opts ...Option) (int64, error) {
	o := f.resolve(opts)
	n := s
	if o.thousandsSeparator != "" {
		n = strings.ReplaceAll(n, o.thousandsSeparator, "")
	}
	if o.decimalPoint != "" && o.decimalPoint != "." {
		n = strings.Replace(n, o.decimalPoint, ".", 1)
	}
	n = strings.TrimSpace(n)
	// A bare trailing decimal point carries no fractional digits.
	n = strings.TrimSuffix(n, ".")
	d, err := decimal.Parse(n)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	c, err := toCents(d)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return c, nil
}

// ParseFloat converts a formatted amount string to a floating-point number
// of whole currency units. It is [Formatter.ParseCents] composed with
// [Formatter.Float].
func (f *Formatter) ParseFloat(s string, opts ...Option) (float64, error) {
	c, err := f.ParseCents(s, opts...)
	if err != nil {
		return 0, err
	}
	return f.Float(c), nil
}
