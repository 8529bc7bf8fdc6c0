package langitems

import (
	"errors"
	"strings"
	"testing"

	"ember/internal/unitmeta"
)

func TestFreshItemsEmpty(t *testing.T) {
	items := NewItems()
	for kind := LangItem(0); kind < ItemCount; kind++ {
		if _, ok := items.Get(kind); ok {
			t.Errorf("fresh table must have no binding for %s", kind.Name())
		}
		_, err := items.Require(kind)
		var missing *MissingItemError
		if !errors.As(err, &missing) {
			t.Fatalf("Require(%s) error = %v, want MissingItemError", kind.Name(), err)
		}
		if missing.Kind != kind {
			t.Errorf("MissingItemError.Kind = %v, want %v", missing.Kind, kind)
		}
	}
}

func TestMissingItemErrorMessage(t *testing.T) {
	items := NewItems()
	_, err := items.Require(DropTraitItem)
	if err == nil || !strings.Contains(err.Error(), "`drop`") {
		t.Errorf("error must name the missing item: %v", err)
	}
}

func TestBindPolicy(t *testing.T) {
	items := NewItems()
	first := unitmeta.Local(7)
	other := unitmeta.DefID{Unit: 2, Node: 7}

	if got := items.bind(DropTraitItem, first); got != bindSet {
		t.Fatalf("first bind = %v, want bindSet", got)
	}
	// Idempotent: rebinding the same id changes nothing and is no error.
	if got := items.bind(DropTraitItem, first); got != bindNoop {
		t.Errorf("same-id rebind = %v, want bindNoop", got)
	}
	// A different id is a conflict and the original survives.
	if got := items.bind(DropTraitItem, other); got != bindConflict {
		t.Errorf("conflicting bind = %v, want bindConflict", got)
	}
	if id, ok := items.Get(DropTraitItem); !ok || id != first {
		t.Errorf("original binding must survive a conflict: got %v", id)
	}
}

func TestRequireAfterBind(t *testing.T) {
	items := NewItems()
	id := unitmeta.Local(3)
	items.bind(AddTraitItem, id)

	got, err := items.Require(AddTraitItem)
	if err != nil {
		t.Fatalf("Require after bind: %v", err)
	}
	if got != id {
		t.Errorf("Require = %v, want %v", got, id)
	}
}

func TestEachInCatalogOrder(t *testing.T) {
	items := NewItems()
	items.bind(StartFnItem, unitmeta.Local(9))
	items.bind(FreezeTraitItem, unitmeta.Local(1))
	items.bind(EqTraitItem, unitmeta.Local(5))

	var kinds []LangItem
	items.Each(func(kind LangItem, _ unitmeta.DefID) {
		kinds = append(kinds, kind)
	})
	want := []LangItem{FreezeTraitItem, EqTraitItem, StartFnItem}
	if len(kinds) != len(want) {
		t.Fatalf("Each visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Each order[%d] = %s, want %s", i, kinds[i].Name(), want[i].Name())
		}
	}
}
