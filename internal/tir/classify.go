package tir

import (
	"smelt/internal/ndarray"
	"smelt/internal/types"
)

// TupleValue marks a literal tuple of host values.
type TupleValue []any

// ModuleValue marks a reference to a host module, identified by name.
type ModuleValue struct {
	Name string
}

// ClassifyValue is the default value-to-type classifier: runtime array
// descriptors map to array types (with contiguity read from the
// descriptor), tuples to the tuple type, modules to module types, numeric
// values to the matching scalar, and everything else to the dynamic object
// type.
func ClassifyValue(in *types.Interner, value any) (types.TypeID, error) {
	b := in.Builtins()
	switch v := value.(type) {
	case *ndarray.Descriptor:
		elem, err := in.DescriptorType(v.Letter, v.ItemSize)
		if err != nil {
			return types.NoTypeID, err
		}
		contig := types.ContigNone
		switch {
		case v.IsCContiguous():
			contig = types.ContigC
		case v.IsFContiguous():
			contig = types.ContigF
		}
		return in.Array(elem, v.Rank(), contig)
	case TupleValue:
		return b.Tuple, nil
	case ModuleValue:
		return in.Module(v.Name), nil
	case bool:
		return b.Bool, nil
	case int:
		return b.Int64, nil
	case int8:
		return b.Int8, nil
	case int16:
		return b.Int16, nil
	case int32:
		return b.Int32, nil
	case int64:
		return b.Int64, nil
	case uint8:
		return b.Uint8, nil
	case uint16:
		return b.Uint16, nil
	case uint32:
		return b.Uint32, nil
	case uint64:
		return b.Uint64, nil
	case uintptr:
		return b.Intp, nil
	case float32:
		return b.Float32, nil
	case float64:
		return b.Float64, nil
	case complex64:
		return b.Complex64, nil
	case complex128:
		return b.Complex128, nil
	case string:
		return b.CString, nil
	default:
		return b.Object, nil
	}
}
