package predicate

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-js-utils/async"
)

// IsPromise reports whether value is an [async.Promise]. See
// [async.IsPromise].
func IsPromise(value any) bool { return async.IsPromise(value) }

// IsAsyncFunction reports whether value is declared as an [async.Func].
// A function that merely returns a promise is reported as false. See
// [async.IsAsyncFunction].
func IsAsyncFunction(value any) bool { return async.IsAsyncFunction(value) }

// IsArray reports whether value is a slice or an array. A typed nil slice
// is an array; an untyped nil is not.
func IsArray(value any) bool {
	if value == nil {
		return false
	}
	k := reflect.TypeOf(value).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsIndexable reports whether value is a non-empty slice or array.
func IsIndexable(value any) bool {
	return IsArray(value) && reflect.ValueOf(value).Len() != 0
}

// IsString reports whether value's dynamic kind is string.
func IsString(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.String
}

// IsNumber reports whether value's dynamic kind is a signed, unsigned or
// floating-point number. NaN and infinities count as numbers.
func IsNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsIndexOf reports whether idx is a valid position in array.
//
// array must be a slice or an array. idx may be any integer, an integral
// finite float, or a non-empty string that parses as such a number
// (surrounding whitespace is ignored). The position must lie in
// [0, len(array)). Any other idx type reports false.
//
//	IsIndexOf(0, []int{1, 2, 3})   // true
//	IsIndexOf("2", []int{1, 2, 3}) // true
//	IsIndexOf(3, []int{1, 2, 3})   // false
//	IsIndexOf(1.5, []int{1, 2, 3}) // false
func IsIndexOf(idx any, array any) bool {
	if !IsArray(array) || idx == nil {
		return false
	}
	n := reflect.ValueOf(array).Len()

	v := reflect.ValueOf(idx)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		return i >= 0 && i < int64(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() < uint64(n)
	case reflect.Float32, reflect.Float64:
		return floatIndexIn(v.Float(), n)
	case reflect.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		return floatIndexIn(f, n)
	default:
		return false
	}
}

func floatIndexIn(f float64, n int) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}
	return f >= 0 && f < float64(n)
}
