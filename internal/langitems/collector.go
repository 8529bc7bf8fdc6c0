package langitems

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/unitmeta"
)

// Collector fills an Items table from the current unit's declarations
// and from the recorded bindings of every dependency unit.
type Collector struct {
	items    Items
	spans    [ItemCount]source.Span
	reporter diag.Reporter
}

func NewCollector(reporter diag.Reporter) *Collector {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Collector{reporter: reporter}
}

// Items returns the table collected so far, by value.
func (c *Collector) Items() Items {
	return c.items
}

// collectItem binds kind to id, reporting a duplicate when the slot
// already holds a different declaration. The original binding always
// stays in place; collection continues so every duplicate in the unit
// is reported in one run.
func (c *Collector) collectItem(kind LangItem, id unitmeta.DefID, sp source.Span) {
	switch c.items.bind(kind, id) {
	case bindSet:
		c.spans[kind] = sp
	case bindNoop:
		// Same declaration observed twice, e.g. locally and again via
		// a dependency's metadata. Harmless.
	case bindConflict:
		b := diag.ReportError(c.reporter, diag.SemaDuplicateLangItem, sp,
			fmt.Sprintf("duplicate entry for `%s` lang item", kind.Name()))
		if orig := c.spans[kind]; !orig.Empty() {
			b.WithNote(orig, "first bound here")
		}
		b.Emit()
	}
}

// CollectLocal walks every declaration of the unit, module members
// included, and binds the ones tagged with a known `lang` name. Unknown
// names are ignored here; attribute validation owns them.
func (c *Collector) CollectLocal(unit *ast.Unit) {
	ast.WalkItems(unit, func(id ast.ItemID, item *ast.Item) {
		value, ok := ExtractLangName(unit.Strings, unit.ItemAttrs(item))
		if !ok {
			return
		}
		kind, ok := LookupItem(value)
		if !ok {
			return
		}
		c.collectItem(kind, unitmeta.Local(unitmeta.NodeID(id)), item.Span)
	})
}

// CollectExternal replays the lang-item bindings every dependency unit
// recorded at its own compilation. Conflicts with local bindings go
// through the same policy as local duplicates.
func (c *Collector) CollectExternal(store *unitmeta.Store) {
	if store == nil {
		return
	}
	store.EachUnit(func(unit unitmeta.UnitID) {
		store.EachLangItem(unit, func(node unitmeta.NodeID, item uint32) bool {
			if item >= uint32(ItemCount) {
				// Recorded by a newer compiler. Not ours to bind.
				return true
			}
			c.collectItem(LangItem(item), unitmeta.DefID{Unit: unit, Node: node}, source.Span{})
			return true
		})
	})
}

// Collect runs the whole lang-item phase for one compilation: the local
// pass, then the external pass (local first, so a clash is framed as a
// duplicate of the local binding), then the session's error check.
//
// Unlike the Result-style fallibility elsewhere in this package, the
// failure path here is terminal: AbortIfErrors does not return, so the
// caller only ever sees the populated table.
func Collect(sess *diag.Session, unit *ast.Unit, store *unitmeta.Store) Items {
	c := NewCollector(sess.Reporter())
	c.CollectLocal(unit)
	c.CollectExternal(store)
	sess.AbortIfErrors()
	return c.Items()
}
