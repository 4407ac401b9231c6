package tir

import "smelt/internal/types"

// TempData marks a temporary binding node.
type TempData struct{}

func (TempData) nodeData() {}

// ObjectTempData wraps a node whose value must be reference counted for the
// lifetime of the temporary.
type ObjectTempData struct {
	Child *Node
}

func (ObjectTempData) nodeData() {}

// TempRefData is the payload of load/store views: a back-reference to the
// owning temporary, never a second owner.
type TempRefData struct {
	Temp *Node
}

func (TempRefData) nodeData() {}

// Temp introduces a fresh local binding of the given type. The name comes
// from the unit's counter and is unique within the unit.
func Temp(u *Unit, ty types.TypeID) *Node {
	v := &Variable{Type: ty, Name: u.nextTempName(), IsLocal: true}
	return &Node{Kind: NodeTemp, Type: ty, Var: v, Data: TempData{}}
}

// ObjectTemp coerces node to a temporary whose value is reference counted:
// the backend brackets its lifetime with the refcount-scope operations.
// This core only flags the requirement.
func ObjectTemp(u *Unit, node *Node) *Node {
	ty := node.ResultType()
	v := &Variable{Type: ty, Name: u.nextTempName(), IsLocal: true}
	return &Node{Kind: NodeObjectTemp, Type: ty, Var: v, Data: ObjectTempData{Child: node}}
}

// Load returns a read view of a temporary. The view references the
// temporary; it does not own it.
func (n *Node) Load() *Node {
	return &Node{Kind: NodeTempLoad, Type: n.Type, Var: n.Var, Data: TempRefData{Temp: n}}
}

// Store returns a write view of a temporary.
func (n *Node) Store() *Node {
	return &Node{Kind: NodeTempStore, Type: n.Type, Var: n.Var, Data: TempRefData{Temp: n}}
}
