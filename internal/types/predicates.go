package types

// Kind-classification helpers. These answer the fixed set of boolean queries
// the rest of the compiler dispatches on.

// IsInteger reports whether id is a fixed-width or word-sized integer.
func (in *Interner) IsInteger(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && (tt.Kind == KindInt || tt.Kind == KindIntp || tt.Kind == KindBool)
}

// IsFloat reports whether id is a floating-point type.
func (in *Interner) IsFloat(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindFloat
}

// IsComplex reports whether id is a complex type.
func (in *Interner) IsComplex(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindComplex
}

// IsArray reports whether id is a multi-dimensional array type.
func (in *Interner) IsArray(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindArray
}

// IsPointer reports whether id is a raw pointer type.
func (in *Interner) IsPointer(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindPointer
}

// IsObjectLike reports whether values of the type are held as references to
// dynamic host objects. Arrays are deliberately excluded: they carry their
// own descriptor representation even though they are objects at runtime.
func (in *Interner) IsObjectLike(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindObject, KindTuple, KindList, KindIterator,
		KindModule, KindModuleAttr, KindEllipsis, KindSlice, KindNewAxis:
		return true
	default:
		return false
	}
}
