// Package str provides string validation, formatting and generation
// helpers.
//
// # Validation
//
//	str.IsEmail("ada@example.com") // true
//	str.IsPhone("+44 20 7946 0958") // true
//
// # Formatting
//
// Case conversion is Unicode-aware and backed by golang.org/x/text/cases:
//
//	str.ToTitleCase("hello WORLD") // "Hello World"
//	str.Capitalize("élan vital")   // "Élan vital"
//
// [FormatCurrency] uses the CLDR data in golang.org/x/text for the currency
// symbol, the number of minor digits and locale-specific digit grouping:
//
//	s, _ := str.FormatCurrency(1234.5)                                       // "$1,234.50"
//	s, _ = str.FormatCurrency(1234.5, str.WithCurrency("EUR"), str.WithLocale("de-DE")) // "€1.234,50"
//
// # Generation & parsing
//
//	token := str.Random(32)                  // crypto/rand, alphanumeric
//	q := str.ParseQueryString("?a=1&b=x+y") // map[a:1 b:x y]
package str
