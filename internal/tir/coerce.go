package tir

import "smelt/internal/types"

// CoerceData holds the wrapped node of a coercion.
type CoerceData struct {
	Child *Node
}

func (CoerceData) nodeData() {}

// Coerce wraps node in a conversion to the destination type. The result type
// is dst.
func Coerce(node *Node, dst types.TypeID) *Node {
	return &Node{
		Kind: NodeCoerce,
		Type: dst,
		Var:  NewVariable(dst),
		Data: CoerceData{Child: node},
	}
}

// CoerceAll wraps every node in a coercion to dst.
func CoerceAll(nodes []*Node, dst types.TypeID) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = Coerce(n, dst)
	}
	return out
}

// DeferredCoerce wraps node in a conversion to the type of v. The variable's
// type may change before lowering (promotion or demotion elsewhere), so the
// backend must re-read it through ResultType, never a cached copy.
func DeferredCoerce(node *Node, v *Variable) *Node {
	return &Node{
		Kind: NodeDeferredCoerce,
		Var:  v,
		Data: CoerceData{Child: node},
	}
}
