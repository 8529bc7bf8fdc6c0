package ast

// Visitor observes declarations during a walk.
type Visitor func(id ItemID, item *Item)

// WalkItems visits every declaration of the unit depth-first, parents
// before their nested members, in declaration order.
func WalkItems(u *Unit, visit Visitor) {
	for _, root := range u.Roots {
		walkItem(u, root, visit)
	}
}

func walkItem(u *Unit, id ItemID, visit Visitor) {
	item := u.Item(id)
	if item == nil {
		return
	}
	visit(id, item)
	for _, child := range item.Children {
		walkItem(u, child, visit)
	}
}
