// Package foreign maps source types to the representation they take when
// crossing into or out of a non-native caller: fixed-width integers, native
// floats, opaque handles, and composite records for complex numbers. The
// mapping is deliberately backend-independent; machine representations for
// compiled code live in backend/llvm.
package foreign

import (
	"fmt"

	"smelt/internal/types"
)

// RepKind enumerates foreign representation kinds.
type RepKind uint8

const (
	// RepVoid is the absence of a representation.
	RepVoid RepKind = iota
	// RepInt is a fixed-width integer.
	RepInt
	// RepFloat is a 4- or 8-byte native float.
	RepFloat
	// RepLongDouble is the extended-precision float used for any other
	// float width.
	RepLongDouble
	// RepPointer is a typed pointer.
	RepPointer
	// RepHandle is an opaque reference to a host object (objects, arrays).
	RepHandle
	// RepComplex is a two-field record {real, imag} of the base float.
	RepComplex
	// RepCString is a null-terminated character pointer.
	RepCString
	// RepFunc is a foreign callable signature.
	RepFunc
	// RepCArray is a fixed-length inline array.
	RepCArray
)

func (k RepKind) String() string {
	switch k {
	case RepVoid:
		return "void"
	case RepInt:
		return "int"
	case RepFloat:
		return "float"
	case RepLongDouble:
		return "longdouble"
	case RepPointer:
		return "pointer"
	case RepHandle:
		return "handle"
	case RepComplex:
		return "complex"
	case RepCString:
		return "cstring"
	case RepFunc:
		return "func"
	case RepCArray:
		return "carray"
	default:
		return fmt.Sprintf("RepKind(%d)", k)
	}
}

// Rep is a foreign-call-compatible representation. It is a closed tree:
// pointers and C-arrays recurse through Elem, functions through Ret/Args,
// complex records through Elem (the base float representation).
type Rep struct {
	Kind   RepKind
	Bits   int // integer/float width
	Signed bool
	Count  int // C-array length
	Elem   *Rep
	Ret    *Rep
	Args   []*Rep
}

// Field is one named component of a composite foreign record.
type Field struct {
	Name string
	Rep  *Rep
}

// Fields decomposes a complex representation into its two components. The
// record reads and writes as a single complex value through the accessor
// types in complex.go.
func (r *Rep) Fields() ([]Field, bool) {
	if r == nil || r.Kind != RepComplex {
		return nil, false
	}
	return []Field{
		{Name: "real", Rep: r.Elem},
		{Name: "imag", Rep: r.Elem},
	}, true
}

// ForeignTypeError reports a type with no defined foreign representation.
type ForeignTypeError struct {
	Type types.TypeID
	Kind types.Kind
}

func (e *ForeignTypeError) Error() string {
	return fmt.Sprintf("no foreign representation for %s type#%d", e.Kind, e.Type)
}

// RepOf returns the foreign representation of a type. The supported cases
// are enumerated exhaustively; anything else fails with ForeignTypeError
// rather than defaulting.
func RepOf(in *types.Interner, id types.TypeID) (*Rep, error) {
	tt, ok := in.Lookup(id)
	if !ok {
		return nil, &ForeignTypeError{Type: id, Kind: types.KindInvalid}
	}

	switch tt.Kind {
	case types.KindVoid:
		return &Rep{Kind: RepVoid}, nil
	case types.KindPointer:
		elem, err := RepOf(in, tt.Elem)
		if err != nil {
			return nil, err
		}
		return &Rep{Kind: RepPointer, Elem: elem}, nil
	case types.KindObject, types.KindArray:
		return &Rep{Kind: RepHandle}, nil
	case types.KindFloat:
		switch tt.Width {
		case types.Width32:
			return &Rep{Kind: RepFloat, Bits: 32}, nil
		case types.Width64:
			return &Rep{Kind: RepFloat, Bits: 64}, nil
		default:
			return &Rep{Kind: RepLongDouble, Bits: int(tt.Width)}, nil
		}
	case types.KindBool:
		return &Rep{Kind: RepInt, Bits: 8, Signed: true}, nil
	case types.KindInt:
		switch tt.Width {
		case types.Width8, types.Width16, types.Width32, types.Width64:
			return &Rep{Kind: RepInt, Bits: int(tt.Width), Signed: tt.Signed}, nil
		default:
			return nil, &ForeignTypeError{Type: id, Kind: tt.Kind}
		}
	case types.KindIntp:
		// The size word crosses foreign boundaries as an unsigned integer
		// of the platform pointer width.
		return &Rep{Kind: RepInt, Bits: types.WordBits, Signed: false}, nil
	case types.KindComplex:
		base, err := RepOf(in, tt.Elem)
		if err != nil {
			return nil, err
		}
		size, okSize := in.ByteSize(id)
		if !okSize {
			return nil, &ForeignTypeError{Type: id, Kind: tt.Kind}
		}
		return &Rep{Kind: RepComplex, Bits: size * 8, Elem: base}, nil
	case types.KindCString:
		return &Rep{Kind: RepCString}, nil
	case types.KindFunc:
		info, okFn := in.FnInfo(id)
		if !okFn {
			return nil, &ForeignTypeError{Type: id, Kind: tt.Kind}
		}
		ret, err := RepOf(in, info.Result)
		if err != nil {
			return nil, err
		}
		args := make([]*Rep, len(info.Params))
		for i, p := range info.Params {
			arg, errArg := RepOf(in, p)
			if errArg != nil {
				return nil, errArg
			}
			args[i] = arg
		}
		return &Rep{Kind: RepFunc, Ret: ret, Args: args}, nil
	case types.KindCArray:
		elem, err := RepOf(in, tt.Elem)
		if err != nil {
			return nil, err
		}
		return &Rep{Kind: RepCArray, Elem: elem, Count: int(tt.Count)}, nil
	default:
		return nil, &ForeignTypeError{Type: id, Kind: tt.Kind}
	}
}
