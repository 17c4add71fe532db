package moneyfmt

import (
	"errors"
	"fmt"
)

// DecimalPolicy controls whether the two-digit fractional part of an amount
// is rendered.
// The zero value is [HideIfZero].
type DecimalPolicy uint8

const (
	// HideIfZero renders the fractional part only if it is not "00".
	HideIfZero DecimalPolicy = iota
	// ShowAlways renders exactly two fractional digits.
	ShowAlways
	// HideAlways drops the fractional part entirely.
	// The integer part is not re-rounded, the fractional digits are truncated away.
	HideAlways
)

var errUnknownPolicy = errors.New("unknown decimal policy")

// ParseDecimalPolicy converts a string to a decimal policy.
// The valid inputs are "hideIfZero", "showAlways", and "hideAlways".
func ParseDecimalPolicy(s string) (DecimalPolicy, error) {
	switch s {
	case "hideIfZero":
		return HideIfZero, nil
	case "showAlways":
		return ShowAlways, nil
	case "hideAlways":
		return HideAlways, nil
	}
	return HideIfZero, fmt.Errorf("%w: %q", errUnknownPolicy, s)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p DecimalPolicy) String() string {
	switch p {
	case HideIfZero:
		return "hideIfZero"
	case ShowAlways:
		return "showAlways"
	case HideAlways:
		return "hideAlways"
	}
	return fmt.Sprintf("DecimalPolicy(%d)", uint8(p))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p DecimalPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDecimalPolicy].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *DecimalPolicy) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParseDecimalPolicy(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", HideIfZero, err)
	}
	return nil
}

// SymbolPosition controls on which side of the amount the currency symbol
// is placed.
// The zero value is [SymbolBefore].
type SymbolPosition uint8

const (
	// SymbolBefore renders symbol, delimiter, amount.
	SymbolBefore SymbolPosition = iota
	// SymbolAfter renders amount, delimiter, symbol.
	SymbolAfter
)

var errUnknownPosition = errors.New("unknown symbol position")

// ParseSymbolPosition converts a string to a symbol position.
// The valid inputs are "before" and "after".
func ParseSymbolPosition(s string) (SymbolPosition, error) {
	switch s {
	case "before":
		return SymbolBefore, nil
	case "after":
		return SymbolAfter, nil
	}
	return SymbolBefore, fmt.Errorf("%w: %q", errUnknownPosition, s)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p SymbolPosition) String() string {
	switch p {
	case SymbolBefore:
		return "before"
	case SymbolAfter:
		return "after"
	}
	return fmt.Sprintf("SymbolPosition(%d)", uint8(p))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p SymbolPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseSymbolPosition].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *SymbolPosition) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParseSymbolPosition(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", SymbolBefore, err)
	}
	return nil
}

// AmountType states how a plain number fed to [Formatter.FormatAmount] is
// interpreted.
// The zero value is [IntegerWithDecimals].
type AmountType uint8

const (
	// IntegerWithDecimals treats the number as cents, the canonical
	// scaled-by-100 storage representation.
	IntegerWithDecimals AmountType = iota
	// FloatNumber treats the number as whole currency units and scales it
	// by 100 before formatting.
	FloatNumber
)

var errUnknownAmountType = errors.New("unknown amount type")

// ParseAmountType converts a string to an amount type.
// The valid inputs are "integerWithDecimals" and "floatNumber".
func ParseAmountType(s string) (AmountType, error) {
	switch s {
	case "integerWithDecimals":
		return IntegerWithDecimals, nil
	case "floatNumber":
		return FloatNumber, nil
	}
	return IntegerWithDecimals, fmt.Errorf("%w: %q", errUnknownAmountType, s)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t AmountType) String() string {
	switch t {
	case IntegerWithDecimals:
		return "integerWithDecimals"
	case FloatNumber:
		return "floatNumber"
	}
	return fmt.Sprintf("AmountType(%d)", uint8(t))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (t AmountType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmountType].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (t *AmountType) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseAmountType(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", IntegerWithDecimals, err)
	}
	return nil
}
