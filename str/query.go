package str

import (
	"net/url"
	"strings"
)

// ParseQueryString decodes a URL query string into a flat map.
//
// A leading "?" is ignored, "+" decodes to a space, and percent escapes
// are resolved. When a key repeats, the last value wins. Pairs whose key
// or value cannot be unescaped are skipped; a pair without "=" maps to "".
//
//	ParseQueryString("?name=Ada+Lovelace&lang=go") // map[lang:go name:Ada Lovelace]
func ParseQueryString(qs string) map[string]string {
	out := make(map[string]string)
	qs = strings.TrimPrefix(qs, "?")
	for _, pair := range strings.Split(qs, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			continue
		}
		out[key] = val
	}
	return out
}
