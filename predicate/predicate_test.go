package predicate_test

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-js-utils/async"
	"github.com/hasbyte1/go-js-utils/predicate"
)

// ─── IsIndexOf ────────────────────────────────────────────────────────────────

func TestIsIndexOf(t *testing.T) {
	items := []int{1, 2, 3}

	cases := []struct {
		name string
		idx  any
		want bool
	}{
		{"zero", 0, true},
		{"last", 2, true},
		{"length", 3, false},
		{"numeric string", "2", true},
		{"padded string", " 1 ", true},
		{"float string", "1.0", true},
		{"fractional string", "1.5", false},
		{"non-numeric string", "one", false},
		{"exponent string", "1e0", true},
		{"hex string", "0x1", false},
		{"empty string", "", false},
		{"blank string", "   ", false},
		{"negative", -1, false},
		{"fraction", 1.5, false},
		{"integral float", 2.0, true},
		{"NaN", math.NaN(), false},
		{"infinity", math.Inf(1), false},
		{"int8", int8(1), true},
		{"uint", uint(2), true},
		{"uint out of range", uint64(9), false},
		{"nil", nil, false},
		{"bool", true, false},
		{"struct", struct{}{}, false},
		{"slice", []int{0}, false},
		{"map", map[string]int{"a": 0}, false},
		{"func", func() {}, false},
		{"time", time.Unix(0, 0), false},
		{"error", errors.New("0"), false},
		{"regexp", regexp.MustCompile("0"), false},
		{"pointer", new(int), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, predicate.IsIndexOf(tc.idx, items))
		})
	}
}

func TestIsIndexOf_NonArray(t *testing.T) {
	assert.False(t, predicate.IsIndexOf(0, "abc"))
	assert.False(t, predicate.IsIndexOf(0, nil))
	assert.False(t, predicate.IsIndexOf(0, map[int]int{0: 1}))
	assert.False(t, predicate.IsIndexOf(0, []int{}))
	assert.True(t, predicate.IsIndexOf(1, [2]string{"a", "b"}))
}

func TestIsIndexOf_DoesNotMutate(t *testing.T) {
	items := []int{1, 2, 3}
	predicate.IsIndexOf("1", items)
	assert.Equal(t, []int{1, 2, 3}, items)
}

// ─── IsArray / IsIndexable ────────────────────────────────────────────────────

func TestIsArray(t *testing.T) {
	var nilSlice []int

	assert.True(t, predicate.IsArray([]int{1}))
	assert.True(t, predicate.IsArray([]any{}))
	assert.True(t, predicate.IsArray([3]int{}))
	assert.True(t, predicate.IsArray(nilSlice))
	assert.False(t, predicate.IsArray(nil))
	assert.False(t, predicate.IsArray("abc"))
	assert.False(t, predicate.IsArray(map[string]int{}))
	assert.False(t, predicate.IsArray(&[]int{1}))
}

func TestIsIndexable(t *testing.T) {
	var nilSlice []int

	assert.True(t, predicate.IsIndexable([]int{1}))
	assert.True(t, predicate.IsIndexable([1]string{""}))
	assert.False(t, predicate.IsIndexable([]int{}))
	assert.False(t, predicate.IsIndexable(nilSlice))
	assert.False(t, predicate.IsIndexable([0]int{}))
	assert.False(t, predicate.IsIndexable("abc"))
}

// ─── IsString / IsNumber ──────────────────────────────────────────────────────

func TestIsString(t *testing.T) {
	type name string

	assert.True(t, predicate.IsString(""))
	assert.True(t, predicate.IsString(name("x")))
	assert.False(t, predicate.IsString([]byte("x")))
	assert.False(t, predicate.IsString(nil))
	assert.False(t, predicate.IsString(1))
}

func TestIsNumber(t *testing.T) {
	for _, v := range []any{0, int8(1), uint16(2), int64(-3), 1.5, float32(2), math.NaN(), time.Second} {
		assert.True(t, predicate.IsNumber(v), "%T should be a number", v)
	}
	for _, v := range []any{nil, "1", true, []int{1}, complex(1, 1)} {
		assert.False(t, predicate.IsNumber(v), "%T should not be a number", v)
	}
}

// ─── Promise predicates ───────────────────────────────────────────────────────

func TestIsPromise(t *testing.T) {
	assert.True(t, predicate.IsPromise(async.Resolve(1)))
	assert.False(t, predicate.IsPromise(1))
}

func TestIsAsyncFunction(t *testing.T) {
	declared := async.Func[int](func(context.Context) (int, error) { return 1, nil })
	manual := func() *async.Promise[int] { return async.Resolve(1) }

	assert.True(t, predicate.IsAsyncFunction(declared))
	assert.False(t, predicate.IsAsyncFunction(manual))
}
