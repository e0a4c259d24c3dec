package object

import "reflect"

// DeepClone returns a deep copy of v.
//
// Pointers, slices, arrays, maps and interface values are copied
// recursively. Shared or cyclic pointers and maps are reproduced in the
// copy; slices are copied element by element, so two slices sharing a
// backing array become independent.
// Exported struct fields are deep-copied; unexported fields cannot be set
// through reflection and are copied shallowly. Funcs, channels and
// unsafe pointers are copied by reference.
func DeepClone[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	dst := reflect.New(src.Type()).Elem()
	c := cloner{seen: make(map[visit]reflect.Value)}
	c.clone(dst, src)
	return *dst.Addr().Interface().(*T)
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type cloner struct {
	seen map[visit]reflect.Value
}

func (c *cloner) clone(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		key := visit{src.Pointer(), src.Type()}
		if prev, ok := c.seen[key]; ok {
			dst.Set(prev)
			return
		}
		n := reflect.New(src.Type().Elem())
		c.seen[key] = n
		c.clone(n.Elem(), src.Elem())
		dst.Set(n)

	case reflect.Interface:
		if src.IsNil() {
			return
		}
		inner := src.Elem()
		n := reflect.New(inner.Type()).Elem()
		c.clone(n, inner)
		dst.Set(n)

	case reflect.Slice:
		if src.IsNil() {
			return
		}
		n := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			c.clone(n.Index(i), src.Index(i))
		}
		dst.Set(n)

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			c.clone(dst.Index(i), src.Index(i))
		}

	case reflect.Map:
		if src.IsNil() {
			return
		}
		key := visit{src.Pointer(), src.Type()}
		if prev, ok := c.seen[key]; ok {
			dst.Set(prev)
			return
		}
		n := reflect.MakeMapWithSize(src.Type(), src.Len())
		c.seen[key] = n
		iter := src.MapRange()
		for iter.Next() {
			k := reflect.New(iter.Key().Type()).Elem()
			c.clone(k, iter.Key())
			v := reflect.New(iter.Value().Type()).Elem()
			c.clone(v, iter.Value())
			n.SetMapIndex(k, v)
		}
		dst.Set(n)

	case reflect.Struct:
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if f := dst.Field(i); f.CanSet() {
				c.clone(f, src.Field(i))
			}
		}

	default:
		dst.Set(src)
	}
}
