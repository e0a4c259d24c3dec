package str

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase upper-cases the first letter of every word and lower-cases
// the rest.
//
//	ToTitleCase("the QUICK brown fox") // "The Quick Brown Fox"
func ToTitleCase(s string) string {
	// Casers keep state, so one is created per call.
	return cases.Title(language.Und).String(s)
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
//
//	Capitalize("hello World") // "Hello World"
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
