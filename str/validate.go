package str

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+[1-9][0-9]{6,14}|[0-9]{7,15})$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// IsEmail reports whether s has the shape local@domain.tld: exactly one
// "@", no whitespace, and at least one "." in the domain part.
//
// This is a shape check, not RFC 5322 validation.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s looks like a phone number: 7 to 15 digits,
// optionally preceded by "+" (in which case the first digit is non-zero).
// Spaces, dots, dashes and parentheses are ignored.
func IsPhone(s string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(s))
}
