package str

import "errors"

// Sentinel errors returned by formatting helpers.
var (
	// ErrUnknownCurrency is returned by [FormatCurrency] when the currency
	// is not a recognised ISO 4217 code.
	ErrUnknownCurrency = errors.New("str: unknown currency code")

	// ErrInvalidLocale is returned by [FormatCurrency] when the locale is
	// not a well-formed BCP 47 language tag.
	ErrInvalidLocale = errors.New("str: invalid locale")
)
