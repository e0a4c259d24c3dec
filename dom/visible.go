package dom

// Rect is an element's bounding box in viewport coordinates, with the
// origin at the top-left corner of the viewport.
type Rect struct {
	Top, Left, Bottom, Right float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// BoundingClientRect returns r, so that a Rect satisfies [Element].
func (r Rect) BoundingClientRect() Rect { return r }

// Viewport is the size of the visible area.
type Viewport struct {
	Width, Height float64
}

// Element is anything that can report its layout box.
//
// The helpers below report false for a nil Element but call
// BoundingClientRect on any other value, so an implementation held as a
// typed nil pointer must handle its nil receiver itself.
type Element interface {
	BoundingClientRect() Rect
}

// IsElementVisible reports whether el lies entirely inside vp. el must be
// nil or a value whose BoundingClientRect can be called.
func IsElementVisible(el Element, vp Viewport) bool {
	if el == nil {
		return false
	}
	r := el.BoundingClientRect()
	return r.Top >= 0 && r.Left >= 0 && r.Bottom <= vp.Height && r.Right <= vp.Width
}

// IsElementPartiallyVisible reports whether el overlaps vp with a
// positive area.
func IsElementPartiallyVisible(el Element, vp Viewport) bool {
	if el == nil {
		return false
	}
	r := el.BoundingClientRect()
	if r.Width() <= 0 || r.Height() <= 0 {
		return false
	}
	return r.Bottom > 0 && r.Right > 0 && r.Top < vp.Height && r.Left < vp.Width
}
