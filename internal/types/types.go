package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types. The set is closed: every
// consumer dispatches over it exhaustively and fails on anything it does not
// handle.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindIntp // platform-word signed integer (ssize_t analogue)
	KindFloat
	KindComplex
	KindObject
	KindArray
	KindPointer
	KindCArray
	KindCString
	KindIterator
	KindFunc
	KindModule
	KindModuleAttr
	// Singleton marker kinds: no payload, equality is by kind alone.
	KindTuple
	KindList
	KindEllipsis
	KindSlice
	KindNewAxis
	KindPhi
	KindRange
	KindGlobal
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindIntp:
		return "intp"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindPointer:
		return "pointer"
	case KindCArray:
		return "carray"
	case KindCString:
		return "cstring"
	case KindIterator:
		return "iterator"
	case KindFunc:
		return "func"
	case KindModule:
		return "module"
	case KindModuleAttr:
		return "module_attr"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindEllipsis:
		return "ellipsis"
	case KindSlice:
		return "slice"
	case KindNewAxis:
		return "newaxis"
	case KindPhi:
		return "phi"
	case KindRange:
		return "range"
	case KindGlobal:
		return "global"
	case KindBuiltin:
		return "builtin"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of integers/floats in bits.
type Width uint8

const (
	WidthNone Width = 0
	Width8    Width = 8
	Width16   Width = 16
	Width32   Width = 32
	Width64   Width = 64
	Width128  Width = 128
)

// Contig records the memory-contiguity of an array type.
type Contig uint8

const (
	// ContigNone marks arrays with no contiguity guarantee.
	ContigNone Contig = iota
	// ContigC marks row-major (C-order) contiguous arrays.
	ContigC
	// ContigF marks column-major (Fortran-order) contiguous arrays.
	ContigF
)

func (c Contig) String() string {
	switch c {
	case ContigC:
		return "C"
	case ContigF:
		return "F"
	default:
		return "A"
	}
}

// Type is a compact descriptor for any supported type. Composite kinds refer
// to their element type through Elem; Func/Module/ModuleAttr store a slot
// into the interner's side tables through Payload.
type Type struct {
	Kind    Kind
	Elem    TypeID // element/base type for Array, Pointer, CArray, Iterator, Complex
	Count   uint32 // rank for Array, static length for CArray
	Width   Width  // bit width for Int/Float
	Signed  bool   // for Int
	Contig  Contig // for Array
	Payload uint32 // side-table slot for Func/Module/ModuleAttr
}

// Descriptor helpers ---------------------------------------------------------

// MakeInt describes a fixed-width integer.
func MakeInt(width Width, signed bool) Type {
	return Type{Kind: KindInt, Width: width, Signed: signed}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}

// MakeComplex describes a complex type over a floating-point base.
func MakeComplex(base TypeID) Type {
	return Type{Kind: KindComplex, Elem: base}
}

// MakePointer describes a raw pointer to elem.
func MakePointer(elem TypeID) Type {
	return Type{Kind: KindPointer, Elem: elem}
}

// MakeIterator describes an iterator yielding elem.
func MakeIterator(elem TypeID) Type {
	return Type{Kind: KindIterator, Elem: elem}
}
