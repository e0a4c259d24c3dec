package object

import "reflect"

// IsEmptyObject reports whether v is an object with no entries: a map of
// length zero (a nil map included) or a struct type without fields.
// Pointers are followed; a nil pointer is not an empty object. Any other
// value, including empty slices and strings, reports false.
func IsEmptyObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		return rv.NumField() == 0
	default:
		return false
	}
}
