package ast

import (
	"ember/internal/source"
)

type ItemKind uint8

const (
	ItemFn ItemKind = iota
	ItemType
	ItemContract
	ItemConst
	ItemModule
)

func (k ItemKind) String() string {
	switch k {
	case ItemFn:
		return "fn"
	case ItemType:
		return "type"
	case ItemContract:
		return "contract"
	case ItemConst:
		return "const"
	case ItemModule:
		return "module"
	}
	return "unknown"
}

// Item is one declaration. Module items nest their members in Children;
// every other kind keeps Children empty.
type Item struct {
	Kind     ItemKind
	Name     source.StringID
	Span     source.Span
	Attrs    []AttrID
	Children []ItemID
}

// Unit holds every declaration of one compilation unit.
// The parser (or any other producer) fills it through NewUnit/AddItem.
type Unit struct {
	Name    string
	Items   *Arena[Item]
	Attrs   *Arena[Attr]
	Roots   []ItemID
	Strings *source.Interner
}

// NewUnit creates an empty unit sharing the given interner.
// A nil interner gets a fresh one.
func NewUnit(name string, strings *source.Interner) *Unit {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Unit{
		Name:    name,
		Items:   NewArena[Item](1 << 6),
		Attrs:   NewArena[Attr](1 << 6),
		Strings: strings,
	}
}

// AddAttr stores an annotation and returns its ID.
func (u *Unit) AddAttr(attr Attr) AttrID {
	return AttrID(u.Attrs.Allocate(attr))
}

// AddItem stores a declaration. A parent of NoItemID makes it a root;
// otherwise it becomes a child of parent.
func (u *Unit) AddItem(item Item, parent ItemID) ItemID {
	id := ItemID(u.Items.Allocate(item))
	if !parent.IsValid() {
		u.Roots = append(u.Roots, id)
		return id
	}
	p := u.Items.Get(uint32(parent))
	if p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

// Item returns the declaration for id, or nil for an invalid ID.
func (u *Unit) Item(id ItemID) *Item {
	return u.Items.Get(uint32(id))
}

// Attr returns the annotation for id, or nil for an invalid ID.
func (u *Unit) Attr(id AttrID) *Attr {
	return u.Attrs.Get(uint32(id))
}

// ItemAttrs resolves an item's annotation IDs into values.
func (u *Unit) ItemAttrs(item *Item) []Attr {
	if item == nil || len(item.Attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(item.Attrs))
	for _, id := range item.Attrs {
		if attr := u.Attr(id); attr != nil {
			out = append(out, *attr)
		}
	}
	return out
}
