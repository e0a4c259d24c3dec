package dom

import "errors"

// ErrFormNotFound is returned when the document has no form matching the
// requested id (or no form at all when the id is empty).
var ErrFormNotFound = errors.New("dom: form not found")
