package moneyfmt

// options is the resolved per-call configuration. Every formatting and
// parsing call starts from the formatter defaults and applies its overrides
// on top, so no call can affect the shared configuration.
type options struct {
	currency           string
	symbol             string
	hasSymbol          bool
	hideSymbol         bool
	amountType         AmountType
	decimalPoint       string
	thousandsSeparator string
	policy             DecimalPolicy
	position           SymbolPosition
	delimiter          string
}

// Option overrides a single formatting default for one call.
type Option func(*options)

func (f *Formatter) resolve(opts []Option) options {
	o := f.defaults
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithCurrency selects the currency whose symbol decorates the amount.
// A code missing from the symbol table renders an empty symbol.
func WithCurrency(code string) Option {
	return func(o *options) { o.currency = code }
}

// WithSymbol sets the currency symbol explicitly, bypassing the symbol
// table lookup.
func WithSymbol(symbol string) Option {
	return func(o *options) { o.symbol = symbol; o.hasSymbol = true }
}

// HideSymbol omits the currency symbol and the delimiter, returning the
// bare amount string.
func HideSymbol() Option {
	return func(o *options) { o.hideSymbol = true }
}

// WithAmountType overrides how [Formatter.FormatAmount] interprets its
// numeric argument.
func WithAmountType(t AmountType) Option {
	return func(o *options) { o.amountType = t }
}

// WithDecimalPoint overrides the decimal point for one call.
func WithDecimalPoint(s string) Option {
	return func(o *options) { o.decimalPoint = s }
}

// WithThousandsSeparator overrides the thousands separator for one call.
// An empty separator disables grouping.
func WithThousandsSeparator(s string) Option {
	return func(o *options) { o.thousandsSeparator = s }
}

// WithDecimalPolicy overrides the decimal policy for one call.
func WithDecimalPolicy(p DecimalPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithSymbolPosition overrides the symbol position for one call.
func WithSymbolPosition(p SymbolPosition) Option {
	return func(o *options) { o.position = p }
}

// WithSymbolDelimiter overrides the text between the symbol and the amount
// for one call.
func WithSymbolDelimiter(s string) Option {
	return func(o *options) { o.delimiter = s }
}
