package moneyfmt

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
)

var (
	errInvalidCurrency = errors.New("invalid currency")
	errEqualSeparators = errors.New("decimal point and thousands separator must differ")
)

// defaultSymbols maps the built-in currency codes to their display symbols.
// Codes outside this table render an empty symbol unless the caller supplies
// one via [Config.Symbols] or [WithSymbol].
var defaultSymbols = map[string]string{
	"usd":  "$",
	"rub":  "₽",
	"gbp":  "£",
	"eur":  "€",
	"usdt": "₮",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the formatting defaults captured by [New].
// Only Currencies is required; every other field falls back to a stated
// default when left at its zero value.
type Config struct {
	// Currencies is the set of allowed currency codes, e.g. "usd", "eur".
	// The first element is the implicit default currency.
	Currencies []string `validate:"required,min=1,dive,required"`

	// DefaultCurrency overrides the implicit default. It must be a member
	// of Currencies.
	DefaultCurrency string

	// DefaultAmountType states how FormatAmount interprets plain numbers.
	// The default is IntegerWithDecimals.
	DefaultAmountType AmountType `validate:"max=1"`

	// DecimalPoint separates the integer and fractional parts.
	// The default is ",". An empty value selects the default.
	DecimalPoint string `validate:"excludesall=0123456789"`

	// ThousandsSeparator groups integer digits in threes.
	// The default is " ". An empty value selects the default.
	ThousandsSeparator string `validate:"excludesall=0123456789"`

	// DecimalPolicy controls rendering of the fractional part.
	// The default is HideIfZero.
	DecimalPolicy DecimalPolicy `validate:"max=2"`

	// SymbolPosition places the currency symbol before or after the amount.
	// The default is SymbolBefore.
	SymbolPosition SymbolPosition `validate:"max=1"`

	// SymbolDelimiter is inserted between the symbol and the amount.
	// The default is the empty string.
	SymbolDelimiter string `validate:"excludesall=0123456789"`

	// Symbols maps currency codes to display symbols. Entries are merged
	// over the built-in table and take precedence over it.
	Symbols map[string]string
}

// Formatter is a closed family of formatting, parsing, and validation
// functions sharing the configuration captured at construction time.
// The configuration is copied by [New] and never mutated afterwards, so
// a Formatter is safe for concurrent use by multiple goroutines.
type Formatter struct {
	currencies []string
	symbols    map[string]string
	defaults   options
}

// New returns a formatter bound to the given configuration.
//
// New returns an error if:
//   - the currency set is empty or contains an empty code;
//   - the default currency is not a member of the currency set;
//   - a separator contains a decimal digit;
//   - the decimal point equals the thousands separator, which would make
//     formatted amounts unparseable.
func New(cfg Config) (*Formatter, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	decPoint := cfg.DecimalPoint
	if decPoint == "" {
		decPoint = ","
	}
	thouSep := cfg.ThousandsSeparator
	if thouSep == "" {
		thouSep = " "
	}
	if decPoint == thouSep {
		return nil, fmt.Errorf("validating config: %w", errEqualSeparators)
	}

	currencies := slices.Clone(cfg.Currencies)
	defCurrency := cfg.DefaultCurrency
	if defCurrency == "" {
		defCurrency = currencies[0]
	}
	if !slices.Contains(currencies, defCurrency) {
		return nil, fmt.Errorf("validating config: %w: %q", errInvalidCurrency, defCurrency)
	}

	symbols := maps.Clone(defaultSymbols)
	for code, symbol := range cfg.Symbols {
		symbols[code] = symbol
	}

	return &Formatter{
		currencies: currencies,
		symbols:    symbols,
		defaults: options{
			currency:           defCurrency,
			amountType:         cfg.DefaultAmountType,
			decimalPoint:       decPoint,
			thousandsSeparator: thouSep,
			policy:             cfg.DecimalPolicy,
			position:           cfg.SymbolPosition,
			delimiter:          cfg.SymbolDelimiter,
		},
	}, nil
}

// MustNew is like [New] but panics if the formatter cannot be constructed.
// It simplifies safe initialization of global variables holding formatters.
func MustNew(cfg Config) *Formatter {
	f, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("New(%+v) failed: %v", cfg, err))
	}
	return f
}

// Currencies returns a copy of the allowed currency codes.
func (f *Formatter) Currencies() []string {
	return slices.Clone(f.currencies)
}

// Symbols returns a copy of the resolved currency-symbol table, the
// built-in symbols merged with the ones supplied via [Config.Symbols].
func (f *Formatter) Symbols() map[string]string {
	return maps.Clone(f.symbols)
}

// DefaultCurrency returns the currency used when no [WithCurrency] override
// is given.
func (f *Formatter) DefaultCurrency() string {
	return f.defaults.currency
}

// ValidateCurrency reports whether the code is a member of the allowed
// currency set.
func (f *Formatter) ValidateCurrency(code string) error {
	if slices.Contains(f.currencies, code) {
		return nil
	}
	return fmt.Errorf("validating currency %q: %w", code, errInvalidCurrency)
}
