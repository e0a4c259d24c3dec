// Package object provides reflection-based helpers for arbitrary Go
// values: deep copying and emptiness checks.
//
//	type Config struct {
//	    Tags  []string
//	    Extra map[string]any
//	}
//	c2 := object.DeepClone(c1) // c2.Tags and c2.Extra share nothing with c1
//
//	object.IsEmptyObject(map[string]int{}) // true
//	object.IsEmptyObject(struct{}{})       // true
package object
