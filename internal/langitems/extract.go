package langitems

import (
	"ember/internal/ast"
	"ember/internal/source"
)

// MarkerKey is the annotation key that tags a lang-item declaration.
const MarkerKey = "lang"

// ExtractLangName scans a declaration's annotations in order and returns
// the value of the first `lang` key/value pair. First match wins: a
// second `lang` annotation on the same declaration is never consulted.
// A `lang` annotation without a value is not a pair and is skipped.
func ExtractLangName(strings *source.Interner, attrs []ast.Attr) (string, bool) {
	for _, attr := range attrs {
		key, ok := strings.Lookup(attr.Key)
		if !ok || key != MarkerKey {
			continue
		}
		if attr.Value == source.NoStringID {
			continue
		}
		value, ok := strings.Lookup(attr.Value)
		if !ok {
			continue
		}
		return value, true
	}
	return "", false
}
