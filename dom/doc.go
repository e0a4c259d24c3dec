// Package dom provides small helpers over a rendered document: element
// visibility from layout geometry and form serialisation from HTML.
//
// # Visibility
//
// The host supplies geometry through the [Element] interface (a [Rect]
// is itself an Element):
//
//	dom.IsElementVisible(dom.Rect{Top: 10, Left: 10, Bottom: 50, Right: 200},
//	    dom.Viewport{Width: 1024, Height: 768}) // true
//
// # Forms
//
// [FormValues] parses an HTML document with golang.org/x/net/html and
// collects the successful controls of a form, the same set a browser would
// submit. [FormSubmitJSON] serialises them as a JSON object:
//
//	body, err := dom.FormSubmitJSON(strings.NewReader(page), "signup")
//	// {"email":"ada@example.com","topics":["go","js"]}
package dom
