package testkit

import (
	"fmt"

	"smelt/internal/backend"
	"smelt/internal/types"
)

// Lowerer maps source types to evaluator machine types. It covers the
// scalar and pointer kinds the constant-materialization tests need.
type Lowerer struct {
	In *types.Interner
}

var _ backend.TypeLowerer = (*Lowerer)(nil)

// MachineType resolves a source type to an evaluator type.
func (l *Lowerer) MachineType(id types.TypeID) (backend.Type, error) {
	tt, ok := l.In.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("testkit: unknown type#%d", id)
	}
	switch tt.Kind {
	case types.KindBool:
		return &Type{Kind: kindInt, Bits: 8}, nil
	case types.KindInt:
		return &Type{Kind: kindInt, Bits: int(tt.Width)}, nil
	case types.KindIntp:
		return &Type{Kind: kindInt, Bits: types.WordBits}, nil
	case types.KindFloat:
		return &Type{Kind: kindFloat, Bits: int(tt.Width)}, nil
	case types.KindComplex:
		base, err := l.MachineType(tt.Elem)
		if err != nil {
			return nil, err
		}
		return &Type{Kind: kindRecord, Elem: base.(*Type)}, nil
	case types.KindPointer:
		return &Type{Kind: kindPointer, Elem: &Type{Kind: kindInt, Bits: 8}}, nil
	case types.KindObject, types.KindArray:
		return &Type{Kind: kindPointer}, nil
	case types.KindVoid:
		return &Type{Kind: kindVoid}, nil
	default:
		return nil, fmt.Errorf("testkit: no machine type for %s", tt.Kind)
	}
}
