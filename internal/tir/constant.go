package tir

import (
	"fortio.org/safecast"

	"smelt/internal/backend"
	"smelt/internal/types"
)

// ConstData holds the literal value of a constant node.
type ConstData struct {
	Value any
}

func (ConstData) nodeData() {}

// Const builds a constant node. When ty is NoTypeID the type is inferred
// from the value through the unit's classifier.
func Const(u *Unit, value any, ty types.TypeID) (*Node, error) {
	if ty == types.NoTypeID {
		inferred, err := u.classify(u.types, value)
		if err != nil {
			return nil, err
		}
		ty = inferred
	}
	v := &Variable{Type: ty, IsConstant: true, Const: value}
	return &Node{Kind: NodeConst, Type: ty, Var: v, Data: ConstData{Value: value}}, nil
}

// Materialize lowers a constant node to a backend value. The dispatch is
// closed over the type kind: floats and integers become literals, complex
// values become two-field record literals, a zero-valued pointer becomes the
// canonical null pointer. Object and function constants have no compile-time
// representation and fail with ConstError.
func Materialize(u *Unit, b backend.Builder, tl backend.TypeLowerer, n *Node) (backend.Value, error) {
	data, ok := n.Data.(ConstData)
	if !ok {
		return nil, &ConstError{Type: n.Type}
	}
	tt, okT := u.types.Lookup(n.Type)
	if !okT {
		return nil, &ConstError{Type: n.Type}
	}

	switch tt.Kind {
	case types.KindFloat:
		f, okF := floatValue(data.Value)
		if !okF {
			return nil, &ConstError{Type: n.Type}
		}
		mt, err := tl.MachineType(n.Type)
		if err != nil {
			return nil, err
		}
		return b.ConstFloat(mt, f), nil
	case types.KindInt, types.KindIntp, types.KindBool:
		i, okI := intValue(data.Value)
		if !okI {
			return nil, &ConstError{Type: n.Type}
		}
		mt, err := tl.MachineType(n.Type)
		if err != nil {
			return nil, err
		}
		return b.ConstInt(mt, i), nil
	case types.KindComplex:
		c, okC := complexValue(data.Value)
		if !okC {
			return nil, &ConstError{Type: n.Type}
		}
		mt, err := tl.MachineType(n.Type)
		if err != nil {
			return nil, err
		}
		baseMt, errBase := tl.MachineType(tt.Elem)
		if errBase != nil {
			return nil, errBase
		}
		re := b.ConstFloat(baseMt, real(c))
		im := b.ConstFloat(baseMt, imag(c))
		return b.ConstRecord(mt, re, im), nil
	case types.KindPointer:
		i, okI := intValue(data.Value)
		if !okI || i != 0 {
			return nil, &ConstError{Type: n.Type}
		}
		mt, err := tl.MachineType(n.Type)
		if err != nil {
			return nil, err
		}
		return b.NullPointer(mt), nil
	default:
		return nil, &ConstError{Type: n.Type}
	}
}

func floatValue(v any) (float64, bool) {
	switch v := v.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func intValue(v any) (int64, bool) {
	switch v := v.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		i, err := safecast.Conv[int64](v)
		if err != nil {
			return 0, false
		}
		return i, true
	case uintptr:
		i, err := safecast.Conv[int64](uint64(v))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func complexValue(v any) (complex128, bool) {
	switch v := v.(type) {
	case complex64:
		return complex128(v), true
	case complex128:
		return v, true
	default:
		return 0, false
	}
}
