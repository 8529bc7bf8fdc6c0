package ast

type (
	// ItemID identifies one declaration inside a Unit.
	ItemID uint32
	// AttrID identifies one annotation inside a Unit.
	AttrID uint32
)

const (
	NoItemID ItemID = 0
	NoAttrID AttrID = 0
)

func (id ItemID) IsValid() bool { return id != NoItemID }
func (id AttrID) IsValid() bool { return id != NoAttrID }
