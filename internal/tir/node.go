// Package tir defines the typed intermediate representation consumed by the
// native code-generation backend: a closed set of node kinds, each carrying a
// resolved type and, where applicable, a typed variable binding, plus the
// stride-based address calculator for array subscripting.
package tir

import (
	"fmt"

	"smelt/internal/types"
)

// NodeKind enumerates typed IR node kinds. The set is closed; the backend
// dispatches over it exhaustively.
type NodeKind uint8

const (
	// NodeCoerce converts a child node to a fixed destination type.
	NodeCoerce NodeKind = iota
	// NodeDeferredCoerce converts a child node to the current type of a
	// variable whose type may still be refined.
	NodeDeferredCoerce
	// NodeConst holds a literal value.
	NodeConst
	// NodeNativeCall calls a statically known native target.
	NodeNativeCall
	// NodeObjectCall calls a callable-object expression dynamically.
	NodeObjectCall
	// NodeObjectMap collects keyword arguments into a dynamic mapping value.
	NodeObjectMap
	// NodeTemp introduces a fresh uniquely named local binding.
	NodeTemp
	// NodeObjectTemp is a Temp whose value requires reference-count
	// management by the backend.
	NodeObjectTemp
	// NodeTempLoad reads a temporary (back-reference, not ownership).
	NodeTempLoad
	// NodeTempStore writes a temporary (back-reference, not ownership).
	NodeTempStore
	// NodeDataPointer exposes an array's data pointer for subscripting.
	NodeDataPointer
	// NodeArrayAttr resolves a fixed attribute of an array value.
	NodeArrayAttr
	// NodeShapeAttr specializes NodeArrayAttr for the shape attribute.
	NodeShapeAttr
)

func (k NodeKind) String() string {
	switch k {
	case NodeCoerce:
		return "Coerce"
	case NodeDeferredCoerce:
		return "DeferredCoerce"
	case NodeConst:
		return "Const"
	case NodeNativeCall:
		return "NativeCall"
	case NodeObjectCall:
		return "ObjectCall"
	case NodeObjectMap:
		return "ObjectMap"
	case NodeTemp:
		return "Temp"
	case NodeObjectTemp:
		return "ObjectTemp"
	case NodeTempLoad:
		return "TempLoad"
	case NodeTempStore:
		return "TempStore"
	case NodeDataPointer:
		return "DataPointer"
	case NodeArrayAttr:
		return "ArrayAttr"
	case NodeShapeAttr:
		return "ShapeAttr"
	default:
		return fmt.Sprintf("NodeKind(%d)", k)
	}
}

// Node is a typed IR node: a kind tag, the resolved type, the variable
// binding introduced by the node (if any), and kind-specific payload. Nodes
// own their children structurally; load/store views hold back-references.
type Node struct {
	Kind NodeKind
	Type types.TypeID
	Var  *Variable
	Data NodeData
}

// NodeData is the interface for node-specific payloads.
type NodeData interface {
	nodeData()
}

// ResultType returns the type the node evaluates to. Deferred coercions
// re-read their variable so later type refinements are observed; everything
// else reports the type resolved at construction.
func (n *Node) ResultType() types.TypeID {
	if n.Kind == NodeDeferredCoerce && n.Var != nil {
		return n.Var.Type
	}
	return n.Type
}
