package moneyfmt

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	errAmountFormat = errors.New("invalid amount format")
	errAmountValue  = errors.New("amount must be a non-negative number")
	errAmountRange  = errors.New("amount out of range")
)

// AmountRule validates user-entered amount strings.
// Checks run in a fixed order and short-circuit at the first failure:
//
//  1. pattern match: optional surrounding whitespace, digit groups
//     optionally interspersed with whitespace, optionally followed by the
//     decimal point and up to two digits;
//  2. refinement: the stripped value must parse to a non-negative number;
//  3. range check (limited rules only): the value must lie within the
//     configured bounds.
//
// If the configured decimal point is not exactly one character, the
// pattern falls back to a literal ".", while the refinement and the
// transforms keep using the configured decimal point. This inconsistency
// is deliberate and matches the formatting surface it guards.
type AmountRule struct {
	f            *Formatter
	re           *regexp.Regexp
	decimalPoint string
	limited      bool
	min, max     int64
	minText      string
	maxText      string
}

// AmountRule returns a validator for amount strings using the formatter's
// decimal point.
func (f *Formatter) AmountRule() *AmountRule {
	return &AmountRule{
		f:            f,
		re:           amountPattern(f.defaults.decimalPoint),
		decimalPoint: f.defaults.decimalPoint,
	}
}

// AmountRuleLimited returns a validator for amount strings whose value must
// additionally lie within [min, max], both given in cents.
// The failure message embeds min and max rendered with the [ShowAlways]
// policy and the formatter's separators.
func (f *Formatter) AmountRuleLimited(min, max int64) *AmountRule {
	r := f.AmountRule()
	r.limited = true
	r.min, r.max = min, max
	r.minText = f.AmountString(min, WithDecimalPolicy(ShowAlways))
	r.maxText = f.AmountString(max, WithDecimalPolicy(ShowAlways))
	return r
}

func amountPattern(decimalPoint string) *regexp.Regexp {
	dp := `\.`
	if utf8.RuneCountInString(decimalPoint) == 1 {
		dp = regexp.QuoteMeta(decimalPoint)
	}
	return regexp.MustCompile(`^\s*\d+(?:\s*\d+)*(?:` + dp + `\d{0,2})?\s*$`)
}

// Validate reports whether the string is an acceptable amount.
// The returned error carries a fixed human-readable message for the first
// unmet condition.
func (r *AmountRule) Validate(s string) error {
	if !r.re.MatchString(s) {
		return fmt.Errorf("validating amount %q: %w", s, errAmountFormat)
	}
	v, err := r.value(s)
	if err != nil {
		return err
	}
	if r.limited && (v < float64(r.min)/100 || v > float64(r.max)/100) {
		return fmt.Errorf("validating amount %q: must be between %s and %s: %w", s, r.minText, r.maxText, errAmountRange)
	}
	return nil
}

// value is the refinement step: strip whitespace, swap the configured
// decimal point for ".", and parse. It is a second line of defense behind
// the pattern, rejecting negative and non-numeric results.
func (r *AmountRule) value(s string) (float64, error) {
	n := strings.Join(strings.Fields(s), "")
	n = strings.Replace(n, r.decimalPoint, ".", 1)
	v, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("validating amount %q: %w", s, errAmountValue)
	}
	return v, nil
}

// Cents validates the string and transforms it into cents.
// Validation always precedes the transform: a string failing the pattern or
// range check never reaches [Formatter.ParseCents].
func (r *AmountRule) Cents(s string) (int64, error) {
	if err := r.Validate(s); err != nil {
		return 0, err
	}
	return r.f.ParseCents(s)
}

// Float validates the string and transforms it into a floating-point
// number of whole currency units.
// See also method [AmountRule.Cents].
func (r *AmountRule) Float(s string) (float64, error) {
	if err := r.Validate(s); err != nil {
		return 0, err
	}
	return r.f.ParseFloat(s)
}
