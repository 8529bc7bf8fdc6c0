package langitems

import (
	"fmt"

	"ember/internal/unitmeta"
)

// Items is the lang-item table: one optional DefID per catalog entry.
// It is populated once by a Collector, then handed to later stages as a
// read-only lookup keyed by LangItem.
type Items struct {
	slots [ItemCount]unitmeta.DefID
}

// NewItems returns a table with every slot empty.
func NewItems() Items {
	return Items{}
}

// Get returns the binding for kind, if any.
func (it *Items) Get(kind LangItem) (unitmeta.DefID, bool) {
	if kind >= ItemCount {
		return unitmeta.DefID{}, false
	}
	id := it.slots[kind]
	return id, id.IsValid()
}

// Require returns the binding for kind or a *MissingItemError. Stages
// for which an absent hook makes further compilation meaningless call
// this instead of Get.
func (it *Items) Require(kind LangItem) (unitmeta.DefID, error) {
	id, ok := it.Get(kind)
	if !ok {
		return unitmeta.DefID{}, &MissingItemError{Kind: kind}
	}
	return id, nil
}

// Each calls fn for every bound slot, in catalog order.
func (it *Items) Each(fn func(kind LangItem, id unitmeta.DefID)) {
	for kind := LangItem(0); kind < ItemCount; kind++ {
		if id := it.slots[kind]; id.IsValid() {
			fn(kind, id)
		}
	}
}

type bindOutcome uint8

const (
	bindSet bindOutcome = iota
	bindNoop
	bindConflict
)

// bind applies the insertion policy: an empty slot takes id, the same id
// again is a no-op, and a different id is a conflict that keeps the
// original in place so collection can go on accumulating errors.
func (it *Items) bind(kind LangItem, id unitmeta.DefID) bindOutcome {
	switch prev := it.slots[kind]; {
	case !prev.IsValid():
		it.slots[kind] = id
		return bindSet
	case prev == id:
		return bindNoop
	default:
		return bindConflict
	}
}

// MissingItemError reports a Require call against an empty slot.
type MissingItemError struct {
	Kind LangItem
}

func (e *MissingItemError) Error() string {
	return fmt.Sprintf("requires `%s` lang item", e.Kind.Name())
}
