// Package predicate provides runtime type checks over values of unknown
// type.
//
// Every predicate takes an any, never panics and never mutates its
// argument. Unexpected or malformed input is simply reported as false.
//
//	predicate.IsArray([]int{1, 2})          // true
//	predicate.IsIndexable([]string{})       // false (empty)
//	predicate.IsIndexOf("2", []int{1, 2, 3}) // true
//	predicate.IsPromise(async.Resolve(1))   // true
//
// Go has no flow-sensitive narrowing, so callers still type-assert after a
// positive check.
package predicate
