package str

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyOptions configures [FormatCurrency].
type CurrencyOptions struct {
	// Currency is an ISO 4217 code such as "USD" or "EUR".
	Currency string

	// Locale is a BCP 47 tag such as "en-US" or "de-DE". It selects the
	// currency symbol and the digit grouping.
	Locale string
}

// DefaultCurrencyOptions returns USD formatted for en-US.
func DefaultCurrencyOptions() CurrencyOptions {
	return CurrencyOptions{Currency: "USD", Locale: "en-US"}
}

// CurrencyOption mutates [CurrencyOptions].
type CurrencyOption func(*CurrencyOptions)

// WithCurrency selects the ISO 4217 currency code.
func WithCurrency(code string) CurrencyOption {
	return func(o *CurrencyOptions) { o.Currency = code }
}

// WithLocale selects the BCP 47 locale.
func WithLocale(tag string) CurrencyOption {
	return func(o *CurrencyOptions) { o.Locale = tag }
}

// FormatCurrency renders amount as "<symbol><number>", rounded to the
// currency's standard number of minor digits and grouped for the locale.
// Negative amounts are prefixed with "-".
//
//	FormatCurrency(1234.5)                  // "$1,234.50", nil
//	FormatCurrency(-42)                     // "-$42.00", nil
//	FormatCurrency(1, WithCurrency("NOPE")) // "", ErrUnknownCurrency
func FormatCurrency(amount float64, opts ...CurrencyOption) (string, error) {
	o := DefaultCurrencyOptions()
	for _, opt := range opts {
		opt(&o)
	}

	unit, err := currency.ParseISO(o.Currency)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, o.Currency)
	}
	tag, err := language.Parse(o.Locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidLocale, o.Locale, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)

	// Round before choosing the sign so that amounts that round to zero
	// never print as "-$0.00".
	pow := math.Pow10(scale)
	amount = math.Round(amount*pow) / pow

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	symbol := p.Sprint(currency.Symbol(unit))
	digits := p.Sprint(number.Decimal(amount, number.Scale(scale)))
	return sign + symbol + digits, nil
}
