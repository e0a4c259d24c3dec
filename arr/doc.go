// Package arr provides standalone generic helpers for Go slices.
//
// All helpers operate on plain []T values, never modify their input and
// always return a newly allocated slice:
//
//	arr.Unique([]int{1, 2, 2, 3})                 // → [1 2 3]
//	arr.Remove([]string{"a", "b", "a"}, "a")      // → [b]
//	arr.RemoveAtIndex([]int{10, 20, 30}, 1)       // → [10 30]
//	arr.Merge([]int{1}, []int{2, 3})              // → [1 2 3]
//	arr.ArraysEqual([]int{1, 2}, []int{1, 2})     // → true
//	arr.GroupBy(words, func(w string) int { return len(w) })
//
// # Portability
//
// The helpers mirror the usual JavaScript array idioms (filter, splice,
// concat, Set de-duplication) and translate directly to other languages.
package arr
