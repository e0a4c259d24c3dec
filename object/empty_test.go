package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-js-utils/object"
)

func TestIsEmptyObject(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *struct{}

	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"empty map", map[string]any{}, true},
		{"nil map", nilMap, true},
		{"empty struct", struct{}{}, true},
		{"pointer to empty map", &map[int]int{}, true},
		{"non-empty map", map[string]int{"a": 1}, false},
		{"struct with fields", struct{ A int }{}, false},
		{"nil", nil, false},
		{"nil pointer", nilPtr, false},
		{"empty slice", []int{}, false},
		{"empty string", "", false},
		{"zero", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, object.IsEmptyObject(tc.value))
		})
	}
}
