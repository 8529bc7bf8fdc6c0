package ast

import "ember/internal/source"

// Attr is one key/value annotation attached to a declaration,
// e.g. `@lang("drop")` carries Key "lang" and Value "drop".
// Annotations with no value keep Value == NoStringID.
type Attr struct {
	Key   source.StringID
	Value source.StringID
	Span  source.Span
}
