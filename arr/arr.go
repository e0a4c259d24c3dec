package arr

import "math/rand/v2"

// ─────────────────────────────────────────────────────────────────────────────
// Removal
// ─────────────────────────────────────────────────────────────────────────────

// Remove returns a copy of items with every element equal to value
// removed.
func Remove[T comparable](items []T, value T) []T {
	return RemoveFunc(items, func(item T) bool { return item == value })
}

// RemoveFunc returns a copy of items without the elements for which fn
// returns true.
func RemoveFunc[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// RemoveAtIndex returns a copy of items without the element at index.
// An index outside [0, len(items)) returns an unchanged copy.
func RemoveAtIndex[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Merge concatenates slices in argument order into a new slice.
func Merge[T any](slices ...[]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// De-duplication & grouping
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns items with duplicates removed, keeping the first
// occurrence of each value in its original position.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy is like [Unique] but compares the keys extracted by fn.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// GroupBy groups items by the key extracted by fn. Each group keeps the
// relative order of its items.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly permuted copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// ArraysEqual reports whether a and b have the same length and equal
// elements at every position. A nil slice equals an empty one. Float NaN
// elements never compare equal, not even to themselves.
func ArraysEqual[T comparable](a, b []T) bool {
	return ArraysEqualFunc(a, b, func(x, y T) bool { return x == y })
}

// ArraysEqualFunc is like [ArraysEqual] but compares elements with eq.
func ArraysEqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
