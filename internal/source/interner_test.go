package source

import (
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	// NoStringID is reserved for the empty string.
	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID should resolve to empty string, got %q, ok=%v", s, ok)
	}

	id1 := interner.Intern("lang")
	if id1 == NoStringID {
		t.Error("Intern must not return NoStringID for a non-empty string")
	}

	id2 := interner.Intern("lang")
	if id1 != id2 {
		t.Errorf("re-interning the same string must return the same ID: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "lang" {
		t.Errorf("Lookup returned wrong string: %q, ok=%v", s, ok)
	}

	id3 := interner.Intern("drop")
	if id3 == id1 {
		t.Error("different strings must get different IDs")
	}

	if interner.Len() != 3 { // "", "lang", "drop"
		t.Errorf("Len should be 3, got %d", interner.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	interner := NewInterner()

	id1 := interner.InternBytes([]byte("freeze"))
	id2 := interner.Intern("freeze")

	if id1 != id2 {
		t.Errorf("InternBytes and Intern must agree: %d != %d", id1, id2)
	}
}

func TestInternerLookupInvalid(t *testing.T) {
	interner := NewInterner()

	if _, ok := interner.Lookup(StringID(999)); ok {
		t.Error("Lookup of an unknown ID must fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLookup of an unknown ID must panic")
		}
	}()
	interner.MustLookup(StringID(999))
}
