package dom

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FormValues parses the HTML document in r and returns the successful
// controls of the form whose id is formID, or of the first form when
// formID is empty.
//
// Collected controls:
//   - named inputs, except the submit, reset, button, image and file types;
//   - checkboxes and radios only when checked, with value "on" by default;
//   - textareas, with their text content;
//   - selects, with every selected option, or the first option of a
//     single select when none is marked selected.
//
// Disabled controls, controls inside a disabled fieldset and disabled
// options are skipped. Values keep document order.
func FormValues(r io.Reader, formID string) (url.Values, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parsing html: %w", err)
	}
	form := findForm(doc, formID)
	if form == nil {
		if formID == "" {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("%w: id %q", ErrFormNotFound, formID)
	}
	values := url.Values{}
	collectControls(form, values)
	return values, nil
}

// FormJSON encodes values as a JSON object. Keys with a single value map
// to a string and keys with several values map to an array of strings.
func FormJSON(values url.Values) ([]byte, error) {
	obj := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			obj[k] = vs[0]
		} else {
			obj[k] = vs
		}
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("dom: encoding form: %w", err)
	}
	return b, nil
}

// FormSubmitJSON returns the JSON body a browser-side form-to-JSON submit
// would send: [FormValues] followed by [FormJSON].
func FormSubmitJSON(r io.Reader, formID string) ([]byte, error) {
	values, err := FormValues(r, formID)
	if err != nil {
		return nil, err
	}
	return FormJSON(values)
}

func findForm(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Form {
		if id == "" || attr(n, "id") == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findForm(c, id); f != nil {
			return f
		}
	}
	return nil
}

func collectControls(n *html.Node, values url.Values) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Fieldset:
			if !hasAttr(c, "disabled") {
				collectControls(c, values)
			}
		case atom.Input:
			collectInput(c, values)
		case atom.Textarea:
			if name := attr(c, "name"); name != "" && !hasAttr(c, "disabled") {
				values.Add(name, textContent(c))
			}
		case atom.Select:
			collectSelect(c, values)
		default:
			collectControls(c, values)
		}
	}
}

func collectInput(n *html.Node, values url.Values) {
	name := attr(n, "name")
	if name == "" || hasAttr(n, "disabled") {
		return
	}
	switch strings.ToLower(attr(n, "type")) {
	case "submit", "reset", "button", "image", "file":
		return
	case "checkbox", "radio":
		if !hasAttr(n, "checked") {
			return
		}
		v, ok := lookupAttr(n, "value")
		if !ok {
			v = "on"
		}
		values.Add(name, v)
	default:
		values.Add(name, attr(n, "value"))
	}
}

func collectSelect(n *html.Node, values url.Values) {
	name := attr(n, "name")
	if name == "" || hasAttr(n, "disabled") {
		return
	}
	var options []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch {
			case c.DataAtom == atom.Option && !hasAttr(c, "disabled"):
				options = append(options, c)
			case c.DataAtom == atom.Optgroup && !hasAttr(c, "disabled"):
				walk(c)
			}
		}
	}
	walk(n)

	selected := 0
	for _, opt := range options {
		if hasAttr(opt, "selected") {
			values.Add(name, optionValue(opt))
			selected++
		}
	}
	if selected == 0 && !hasAttr(n, "multiple") && len(options) > 0 {
		values.Add(name, optionValue(options[0]))
	}
}

func optionValue(n *html.Node) string {
	if v, ok := lookupAttr(n, "value"); ok {
		return v
	}
	return strings.Join(strings.Fields(textContent(n)), " ")
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}
