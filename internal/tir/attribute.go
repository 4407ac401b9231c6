package tir

import "smelt/internal/types"

// ArrayAttrData holds the payload of an array attribute access.
type ArrayAttrData struct {
	Array *Node
	Attr  string
}

func (ArrayAttrData) nodeData() {}

// ArrayAttr resolves one of the fixed array attributes on an array-typed
// node:
//
//	ndim    -> native integer
//	shape   -> [rank]intp
//	strides -> [rank]intp
//	data    -> pointer to the element type
//
// Any other name fails with AttrError.
func ArrayAttr(u *Unit, array *Node, attr string) (*Node, error) {
	in := u.types
	arrayType := array.ResultType()
	elem, rank, _, ok := in.ArrayInfo(arrayType)
	if !ok {
		return nil, &AttrError{Attr: attr, Array: arrayType}
	}

	var ty types.TypeID
	switch attr {
	case "ndim":
		ty = in.Builtins().Int32
	case "shape", "strides":
		carr, err := in.CArray(in.Builtins().Intp, rank)
		if err != nil {
			return nil, err
		}
		ty = carr
	case "data":
		ty = in.Pointer(elem)
	default:
		return nil, &AttrError{Attr: attr, Array: arrayType}
	}

	kind := NodeArrayAttr
	if attr == "shape" {
		kind = NodeShapeAttr
	}
	return &Node{
		Kind: kind,
		Type: ty,
		Var:  NewVariable(ty),
		Data: ArrayAttrData{Array: array, Attr: attr},
	}, nil
}

// ShapeAttr specializes ArrayAttr for the shape attribute.
func ShapeAttr(u *Unit, array *Node) (*Node, error) {
	return ArrayAttr(u, array, "shape")
}
