package llvm

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"smelt/internal/backend"
	"smelt/internal/types"
)

// MachineTypeError reports a type with no native machine representation.
type MachineTypeError struct {
	Type types.TypeID
	Kind types.Kind
}

func (e *MachineTypeError) Error() string {
	return fmt.Sprintf("no machine representation for %s type#%d", e.Kind, e.Type)
}

// MachineType resolves a source type to its native machine representation.
// Implements backend.TypeLowerer.
func (e *Emitter) MachineType(id types.TypeID) (backend.Type, error) {
	phase := e.Timer.Begin("type-lowering")
	defer e.Timer.End(phase, e.Types.Format(id))

	t, err := e.machineType(id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (e *Emitter) machineType(id types.TypeID) (lltypes.Type, error) {
	if cached, ok := e.machine[id]; ok {
		return cached, nil
	}
	t, err := e.resolveMachineType(id)
	if err != nil {
		return nil, err
	}
	e.machine[id] = t
	return t, nil
}

// resolveMachineType is the single dispatch over the closed kind set:
// arrays map to the opaque native array descriptor, complex types to a
// two-field record of the base scalar, object-like types to the shared
// object-header reference, the size word to the native word type, and the
// remaining scalars through the fixed tables. Everything else fails closed.
func (e *Emitter) resolveMachineType(id types.TypeID) (lltypes.Type, error) {
	in := e.Types
	tt, ok := in.Lookup(id)
	if !ok {
		return nil, &MachineTypeError{Type: id, Kind: types.KindInvalid}
	}

	if in.IsObjectLike(id) {
		return e.objectPtr, nil
	}

	switch tt.Kind {
	case types.KindVoid:
		return lltypes.Void, nil
	case types.KindBool:
		return lltypes.I1, nil
	case types.KindInt:
		switch tt.Width {
		case types.Width8:
			return lltypes.I8, nil
		case types.Width16:
			return lltypes.I16, nil
		case types.Width32:
			return lltypes.I32, nil
		case types.Width64:
			return lltypes.I64, nil
		default:
			return nil, &MachineTypeError{Type: id, Kind: tt.Kind}
		}
	case types.KindIntp:
		return wordType(), nil
	case types.KindFloat:
		switch tt.Width {
		case types.Width32:
			return lltypes.Float, nil
		case types.Width64:
			return lltypes.Double, nil
		case types.Width128:
			return lltypes.FP128, nil
		default:
			return nil, &MachineTypeError{Type: id, Kind: tt.Kind}
		}
	case types.KindComplex:
		base, err := e.machineType(tt.Elem)
		if err != nil {
			return nil, err
		}
		return lltypes.NewStruct(base, base), nil
	case types.KindArray:
		return e.ndarrayPtr, nil
	case types.KindPointer:
		elem, err := e.machineType(tt.Elem)
		if err != nil {
			return nil, err
		}
		return lltypes.NewPointer(elem), nil
	case types.KindCArray:
		elem, err := e.machineType(tt.Elem)
		if err != nil {
			return nil, err
		}
		return lltypes.NewArray(uint64(tt.Count), elem), nil
	case types.KindCString:
		return lltypes.NewPointer(lltypes.I8), nil
	case types.KindFunc:
		info, okFn := in.FnInfo(id)
		if !okFn {
			return nil, &MachineTypeError{Type: id, Kind: tt.Kind}
		}
		ret, err := e.machineType(info.Result)
		if err != nil {
			return nil, err
		}
		params := make([]lltypes.Type, len(info.Params))
		for i, p := range info.Params {
			mt, errP := e.machineType(p)
			if errP != nil {
				return nil, errP
			}
			params[i] = mt
		}
		return lltypes.NewFunc(ret, params...), nil
	default:
		return nil, &MachineTypeError{Type: id, Kind: tt.Kind}
	}
}
