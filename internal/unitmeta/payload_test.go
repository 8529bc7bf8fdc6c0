package unitmeta

import (
	"context"
	"path/filepath"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "core"+MetaExt)

	in := NewPayload("core", []TaggedItem{
		{Node: 7, Item: 3},
		{Node: 12, Item: 0},
	})
	if err := in.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out, err := ReadPayload(path)
	if err != nil {
		t.Fatalf("ReadPayload: %v", err)
	}
	if out.UnitName != "core" {
		t.Errorf("UnitName = %q, want %q", out.UnitName, "core")
	}
	if len(out.Items) != 2 || out.Items[0] != in.Items[0] || out.Items[1] != in.Items[1] {
		t.Errorf("Items = %+v, want %+v", out.Items, in.Items)
	}
}

func TestPayloadSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old"+MetaExt)

	p := NewPayload("old", nil)
	p.Schema = payloadSchemaVersion + 1
	if err := p.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if _, err := ReadPayload(path); err == nil {
		t.Error("ReadPayload must reject a foreign schema version")
	}
}

func TestLoadDirOrderAndIDs(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; load order must follow sorted paths.
	if err := NewPayload("zlib", []TaggedItem{{Node: 1, Item: 4}}).Write(filepath.Join(dir, "z"+MetaExt)); err != nil {
		t.Fatal(err)
	}
	if err := NewPayload("core", []TaggedItem{{Node: 2, Item: 0}}).Write(filepath.Join(dir, "a"+MetaExt)); err != nil {
		t.Fatal(err)
	}

	store, err := LoadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}
	if store.Name(1) != "core" || store.Name(2) != "zlib" {
		t.Errorf("unit numbering not sorted by path: 1=%q 2=%q", store.Name(1), store.Name(2))
	}

	var seen []UnitID
	store.EachUnit(func(u UnitID) { seen = append(seen, u) })
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("EachUnit order = %v", seen)
	}

	var items []TaggedItem
	store.EachLangItem(1, func(n NodeID, it uint32) bool {
		items = append(items, TaggedItem{Node: n, Item: it})
		return true
	})
	if len(items) != 1 || items[0] != (TaggedItem{Node: 2, Item: 0}) {
		t.Errorf("EachLangItem = %+v", items)
	}
}

func TestLoadDirMissing(t *testing.T) {
	store, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir must not fail: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}
}

func TestEachLangItemStopsEarly(t *testing.T) {
	store := NewStore()
	store.Add(NewPayload("dep", []TaggedItem{{Node: 1, Item: 1}, {Node: 2, Item: 2}}))

	count := 0
	store.EachLangItem(1, func(NodeID, uint32) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("iteration must stop after fn returns false, got %d calls", count)
	}
}

func TestStoreLocalUnitHasNoPayload(t *testing.T) {
	store := NewStore()
	store.Add(NewPayload("dep", nil))

	if name := store.Name(LocalUnit); name != "" {
		t.Errorf("LocalUnit must have no recorded name, got %q", name)
	}
	store.EachLangItem(LocalUnit, func(NodeID, uint32) bool {
		t.Error("LocalUnit must yield no items")
		return false
	})
}
