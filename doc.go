/*
Package moneyfmt converts monetary amounts between their canonical storage
representation, an integer number of cents, and human-readable,
currency-symbol-annotated strings. It also builds validators for
user-entered amount strings. All exact numeric work is delegated to the
[decimal] package.

# Representation

Amounts are stored as int64 cents, the real-world value scaled by 100.
Storing scaled integers avoids floating-point drift; float64 values exist
only at the display boundary and conversions between the two are explicit.
Magnitudes above 2^53 cents lose precision when narrowed to float64, a
documented limitation of that boundary.

# Formatter

A [Formatter] is constructed once from a [Config]: the allowed currency
codes, a currency-to-symbol table, and the formatting defaults (decimal
point, thousands separator, decimal policy, symbol position and delimiter).
The configuration is copied at construction time and never mutated, so a
Formatter is safe for concurrent use without coordination. Every operation
accepts functional options that override the defaults for that call only.

# Formatting and parsing

[Formatter.AmountString] renders cents as a bare amount string with grouped
integer digits; the [DecimalPolicy] decides whether the two fractional
digits appear. [Formatter.Format], [Formatter.FormatFloat], and
[Formatter.FormatAmount] decorate the amount string with a currency symbol.
[Formatter.ParseCents] and [Formatter.ParseFloat] invert the rendering.

# Rounding

One rounding rule is used throughout: rounding half to even (banker's
rounding), applied whenever a value carries more than two fractional
digits. Formatting never re-rounds; the [HideAlways] policy truncates the
fractional digits away without touching the integer part.

# Validation

[AmountRule] checks user input in three short-circuiting steps: a pattern
match, a non-negative numeric refinement, and an optional range check. Its
Cents and Float methods transform a validated string into the canonical
numeric representations; validation always precedes transformation. The
formatting and parsing functions themselves trust their input and report
malformed numbers as errors rather than panicking.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package moneyfmt
