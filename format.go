package moneyfmt

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// AmountString renders cents as a bare amount string: integer digits
// grouped in threes by the thousands separator, followed by the decimal
// point and the two-digit fractional part as dictated by the decimal
// policy.
//
// The string is assembled from the integer and fractional parts directly,
// so decimal points and separators that reuse "." or "," cannot corrupt
// each other.
func (f *Formatter) AmountString(cents int64, opts ...Option) string {
	return f.amountString(cents, f.resolve(opts))
}

func (f *Formatter) amountString(cents int64, o options) string {
	s := decimal.MustNew(cents, 2).String()
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	pre := len(whole) % 3
	if pre == 0 {
		pre = 3
	}
	b.WriteString(whole[:pre])
	for i := pre; i < len(whole); i += 3 {
		b.WriteString(o.thousandsSeparator)
		b.WriteString(whole[i : i+3])
	}
	switch o.policy {
	case ShowAlways:
		b.WriteString(o.decimalPoint)
		b.WriteString(frac)
	case HideAlways:
		// fractional digits truncated away
	case HideIfZero:
		if frac != "00" {
			b.WriteString(o.decimalPoint)
			b.WriteString(frac)
		}
	}
	return b.String()
}

// AmountStringFloat renders a floating-point number of whole currency units
// as a bare amount string. It is [Formatter.Cents] composed with
// [Formatter.AmountString].
func (f *Formatter) AmountStringFloat(x float64, opts ...Option) (string, error) {
	c, err := f.Cents(x)
	if err != nil {
		return "", err
	}
	return f.AmountString(c, opts...), nil
}

// Format renders cents as a currency-symbol-decorated amount string.
// The symbol comes from [WithSymbol] if given, otherwise from the symbol
// table entry for the resolved currency; a missing entry renders an empty
// symbol. Unless [HideSymbol] is set, symbol and amount are joined by the
// symbol delimiter in the order given by the symbol position.
func (f *Formatter) Format(cents int64, opts ...Option) string {
	o := f.resolve(opts)
	return f.decorate(f.amountString(cents, o), o)
}

// FormatFloat renders a floating-point number of whole currency units as a
// currency-symbol-decorated amount string.
// See also method [Formatter.Format].
func (f *Formatter) FormatFloat(x float64, opts ...Option) (string, error) {
	c, err := f.Cents(x)
	if err != nil {
		return "", err
	}
	return f.Format(c, opts...), nil
}

// FormatAmount renders a plain number interpreted according to the resolved
// [AmountType]: a [FloatNumber] is scaled by 100, an [IntegerWithDecimals]
// is rounded to whole cents (half to even).
// See also methods [Formatter.Format] and [Formatter.FormatFloat].
func (f *Formatter) FormatAmount(x float64, opts ...Option) (string, error) {
	o := f.resolve(opts)
	var c int64
	var err error
	if o.amountType == FloatNumber {
		c, err = f.Cents(x)
	} else {
		c, err = roundToWhole(x)
	}
	if err != nil {
		return "", err
	}
	return f.decorate(f.amountString(c, o), o), nil
}

// roundToWhole rounds a plain number to the nearest whole cent value,
// half to even.
func roundToWhole(x float64) (int64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("converting float: special value %v", x)
	}
	r := math.RoundToEven(x)
	if r >= float64(math.MaxInt64) || r < float64(math.MinInt64) {
		return 0, fmt.Errorf("converting float: %w", errAmountOverflow)
	}
	return int64(r), nil
}

func (f *Formatter) decorate(amount string, o options) string {
	if o.hideSymbol {
		return amount
	}
	symbol := o.symbol
	if !o.hasSymbol {
		symbol = f.symbols[o.currency]
	}
	if o.position == SymbolAfter {
		return amount + o.delimiter + symbol
	}
	return symbol + o.delimiter + amount
}
