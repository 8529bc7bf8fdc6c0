package langitems

import (
	"ember/internal/unitmeta"
)

// BuiltinBound is the narrow subset of lang items the type checker
// consumes as structural capability bounds rather than as operator
// implementations.
type BuiltinBound uint8

const (
	// BoundFreeze marks values that may be frozen and shared.
	BoundFreeze BuiltinBound = iota
	// BoundSend marks values that may cross a concurrency boundary.
	BoundSend
	// BoundSized marks types with a statically known size.
	BoundSized
)

func (b BuiltinBound) String() string {
	switch b {
	case BoundFreeze:
		return "freeze"
	case BoundSend:
		return "send"
	case BoundSized:
		return "sized"
	}
	return "unknown"
}

// BuiltinKind reports whether id is bound to one of the capability lang
// items. Freeze, Send and Sized are checked in that fixed order; an id
// bound to any other slot (or to none) yields no match. Only meaningful
// once the table is fully populated.
func (it *Items) BuiltinKind(id unitmeta.DefID) (BuiltinBound, bool) {
	if !id.IsValid() {
		return 0, false
	}
	if bound, ok := it.Get(FreezeTraitItem); ok && bound == id {
		return BoundFreeze, true
	}
	if bound, ok := it.Get(SendTraitItem); ok && bound == id {
		return BoundSend, true
	}
	if bound, ok := it.Get(SizedTraitItem); ok && bound == id {
		return BoundSized, true
	}
	return 0, false
}
