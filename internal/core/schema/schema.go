// Package schema implements template-based validation of decoded JSON
// documents: one level of key → primitive-kind checking, with a strict mode
// requiring key-set equality and a lenient mode tolerating missing fields.
package schema

// Kind is the expected JSON kind of a template field.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	List
	Map
)

// Template maps field names to their expected kinds.
type Template map[string]Kind

// Validate reports whether doc conforms to tpl. In strict mode the document's
// key set must exactly equal the template's and every value's kind must
// match. In lenient mode every key present in doc must exist in tpl with a
// matching kind; missing fields are tolerated. Pure predicate, no nesting.
func Validate(doc map[string]any, tpl Template, strict bool) bool {
	if strict && len(doc) != len(tpl) {
		return false
	}
	for field, value := range doc {
		kind, ok := tpl[field]
		if !ok {
			return false
		}
		if !matches(value, kind) {
			return false
		}
	}
	return true
}

// matches checks a decoded JSON value against a kind. encoding/json decodes
// every JSON number as float64.
func matches(value any, kind Kind) bool {
	switch kind {
	case String:
		_, ok := value.(string)
		return ok
	case Number:
		_, ok := value.(float64)
		return ok
	case Bool:
		_, ok := value.(bool)
		return ok
	case List:
		_, ok := value.([]any)
		return ok
	case Map:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}
