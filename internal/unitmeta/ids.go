package unitmeta

import "fmt"

type (
	// UnitID numbers a compilation unit within one compiler run.
	// The unit being compiled is always LocalUnit; dependencies are
	// numbered in load order starting at 1.
	UnitID uint32
	// NodeID is a declaration ID local to its unit.
	NodeID uint32
)

const (
	LocalUnit UnitID = 0
	NoNodeID  NodeID = 0
)

// DefID names one declaration across unit boundaries. Plain value type;
// two DefIDs are the same binding iff they compare equal.
type DefID struct {
	Unit UnitID
	Node NodeID
}

func (id DefID) IsValid() bool {
	return id.Node != NoNodeID
}

func (id DefID) IsLocal() bool {
	return id.Unit == LocalUnit
}

func (id DefID) String() string {
	return fmt.Sprintf("%d:%d", id.Unit, id.Node)
}

// Local wraps a unit-local node ID into a DefID of the current unit.
func Local(node NodeID) DefID {
	return DefID{Unit: LocalUnit, Node: node}
}
