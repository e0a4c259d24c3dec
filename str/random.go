package str

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// AlphaNumeric is the default alphabet used by [Random].
const AlphaNumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomOptions configures [Random].
type RandomOptions struct {
	// Alphabet lists the runes to draw from. Repeated runes are drawn
	// proportionally more often.
	Alphabet string
}

// DefaultRandomOptions returns options drawing from [AlphaNumeric].
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Alphabet: AlphaNumeric}
}

// RandomOption mutates [RandomOptions].
type RandomOption func(*RandomOptions)

// WithAlphabet sets the runes [Random] draws from.
func WithAlphabet(alphabet string) RandomOption {
	return func(o *RandomOptions) { o.Alphabet = alphabet }
}

// Random returns a string of n runes drawn uniformly from the alphabet
// using crypto/rand. It returns "" when n <= 0 or the alphabet is empty.
func Random(n int, opts ...RandomOption) string {
	o := DefaultRandomOptions()
	for _, opt := range opts {
		opt(&o)
	}
	alphabet := []rune(o.Alphabet)
	if n <= 0 || len(alphabet) == 0 {
		return ""
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]rune, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(fmt.Errorf("str: reading random source: %w", err))
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out)
}
