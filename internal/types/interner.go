package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for scalar and singleton types. Constructing them
// once through the interner makes every later reference comparison-stable.
type Builtins struct {
	Invalid TypeID
	Void    TypeID
	Bool    TypeID

	Int8  TypeID
	Int16 TypeID
	Int32 TypeID
	Int64 TypeID

	Uint8  TypeID
	Uint16 TypeID
	Uint32 TypeID
	Uint64 TypeID

	Intp TypeID

	Float32  TypeID
	Float64  TypeID
	Float128 TypeID

	Complex64  TypeID
	Complex128 TypeID
	Complex256 TypeID

	Object  TypeID
	CString TypeID

	Tuple    TypeID
	List     TypeID
	Ellipsis TypeID
	Slice    TypeID
	NewAxis  TypeID
	Phi      TypeID
	Range    TypeID
	Global   TypeID
	Builtin  TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Two TypeIDs are equal iff the descriptors (and, for payload kinds, the
// side-table contents) compare equal, so ID comparison is type equality.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	fns      []FnInfo
	modules  []ModuleInfo
	attrs    []ModuleAttrInfo
}

// NewInterner constructs an interner seeded with built-in scalars and
// singleton markers.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.fns = append(in.fns, FnInfo{}) // reserve 0 as invalid sentinel
	in.modules = append(in.modules, ModuleInfo{})
	in.attrs = append(in.attrs, ModuleAttrInfo{})

	b := &in.builtins
	b.Invalid = in.internRaw(Type{Kind: KindInvalid})
	b.Void = in.Intern(Type{Kind: KindVoid})
	b.Bool = in.Intern(Type{Kind: KindBool})

	b.Int8 = in.Intern(MakeInt(Width8, true))
	b.Int16 = in.Intern(MakeInt(Width16, true))
	b.Int32 = in.Intern(MakeInt(Width32, true))
	b.Int64 = in.Intern(MakeInt(Width64, true))

	b.Uint8 = in.Intern(MakeInt(Width8, false))
	b.Uint16 = in.Intern(MakeInt(Width16, false))
	b.Uint32 = in.Intern(MakeInt(Width32, false))
	b.Uint64 = in.Intern(MakeInt(Width64, false))

	b.Intp = in.Intern(Type{Kind: KindIntp})

	b.Float32 = in.Intern(MakeFloat(Width32))
	b.Float64 = in.Intern(MakeFloat(Width64))
	b.Float128 = in.Intern(MakeFloat(Width128))

	b.Complex64 = in.Intern(MakeComplex(b.Float32))
	b.Complex128 = in.Intern(MakeComplex(b.Float64))
	b.Complex256 = in.Intern(MakeComplex(b.Float128))

	b.Object = in.Intern(Type{Kind: KindObject})
	b.CString = in.Intern(Type{Kind: KindCString})

	b.Tuple = in.Intern(Type{Kind: KindTuple})
	b.List = in.Intern(Type{Kind: KindList})
	b.Ellipsis = in.Intern(Type{Kind: KindEllipsis})
	b.Slice = in.Intern(Type{Kind: KindSlice})
	b.NewAxis = in.Intern(Type{Kind: KindNewAxis})
	b.Phi = in.Intern(Type{Kind: KindPhi})
	b.Range = in.Intern(Type{Kind: KindRange})
	b.Global = in.Intern(Type{Kind: KindGlobal})
	b.Builtin = in.Intern(Type{Kind: KindBuiltin})
	return in
}

// Builtins returns TypeIDs for built-in types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	key := typeKey(t)
	in.index[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Array creates or finds the array type with the given element type, rank and
// contiguity. Rank must be non-negative.
func (in *Interner) Array(elem TypeID, rank int, contig Contig) (TypeID, error) {
	if rank < 0 {
		return NoTypeID, &TypeError{Kind: ErrInvalidConstruction, Elem: elem, Rank: rank}
	}
	count, err := safecast.Conv[uint32](rank)
	if err != nil {
		return NoTypeID, &TypeError{Kind: ErrInvalidConstruction, Elem: elem, Rank: rank}
	}
	return in.Intern(Type{Kind: KindArray, Elem: elem, Count: count, Contig: contig}), nil
}

// CArray creates or finds the fixed-length C-array type. Length must be
// non-negative.
func (in *Interner) CArray(elem TypeID, length int) (TypeID, error) {
	if length < 0 {
		return NoTypeID, &TypeError{Kind: ErrInvalidConstruction, Elem: elem, Length: length}
	}
	count, err := safecast.Conv[uint32](length)
	if err != nil {
		return NoTypeID, &TypeError{Kind: ErrInvalidConstruction, Elem: elem, Length: length}
	}
	return in.Intern(Type{Kind: KindCArray, Elem: elem, Count: count}), nil
}

// Pointer creates or finds the pointer-to-elem type.
func (in *Interner) Pointer(elem TypeID) TypeID {
	return in.Intern(MakePointer(elem))
}

// Iterator creates or finds the iterator-over-elem type.
func (in *Interner) Iterator(elem TypeID) TypeID {
	return in.Intern(MakeIterator(elem))
}

// ArrayInfo returns (elem, rank, contig, true) when id is an array type.
func (in *Interner) ArrayInfo(id TypeID) (elem TypeID, rank int, contig Contig, ok bool) {
	tt, okT := in.Lookup(id)
	if !okT || tt.Kind != KindArray {
		return NoTypeID, 0, ContigNone, false
	}
	return tt.Elem, int(tt.Count), tt.Contig, true
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Count   uint32
	Width   Width
	Signed  bool
	Contig  Contig
	Payload uint32
}
