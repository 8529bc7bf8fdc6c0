package unitmeta

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes.
const payloadSchemaVersion uint16 = 1

// MetaExt is the extension of unit metadata files.
const MetaExt = ".emi"

// TaggedItem is one persisted lang-item binding: the declaration Node
// carries the catalog index Item.
type TaggedItem struct {
	Node NodeID
	Item uint32
}

// Payload is the on-disk metadata a unit leaves behind for units that
// depend on it.
type Payload struct {
	Schema   uint16
	UnitName string
	Items    []TaggedItem
}

// NewPayload builds a payload for the current schema.
func NewPayload(unitName string, items []TaggedItem) *Payload {
	return &Payload{
		Schema:   payloadSchemaVersion,
		UnitName: unitName,
		Items:    items,
	}
}

// Write serializes the payload to path, replacing it atomically.
func (p *Payload) Write(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // best effort, gone after rename

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(p); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadPayload deserializes a payload from path and validates its schema.
func ReadPayload(path string) (*Payload, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var p Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode unit metadata %s: %w", path, err)
	}
	if p.Schema != payloadSchemaVersion {
		return nil, fmt.Errorf("unit metadata %s: schema %d, want %d", path, p.Schema, payloadSchemaVersion)
	}
	return &p, nil
}
