package types

import "testing"

func TestKindPredicates(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	arr, err := in.Array(b.Float64, 1, ContigNone)
	if err != nil {
		t.Fatalf("array: %v", err)
	}

	if !in.IsInteger(b.Int32) || !in.IsInteger(b.Intp) || !in.IsInteger(b.Bool) {
		t.Fatalf("integer predicate too narrow")
	}
	if in.IsInteger(b.Float64) {
		t.Fatalf("float is not an integer")
	}
	if !in.IsFloat(b.Float128) || in.IsFloat(b.Complex128) {
		t.Fatalf("float predicate wrong")
	}
	if !in.IsComplex(b.Complex64) || in.IsComplex(b.Float32) {
		t.Fatalf("complex predicate wrong")
	}
	if !in.IsArray(arr) || in.IsArray(b.Object) {
		t.Fatalf("array predicate wrong")
	}
	if !in.IsPointer(in.Pointer(b.Int8)) || in.IsPointer(b.CString) {
		t.Fatalf("pointer predicate wrong")
	}
}

func TestObjectLikeExcludesArrays(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	arr, err := in.Array(b.Float64, 2, ContigC)
	if err != nil {
		t.Fatalf("array: %v", err)
	}

	objectLike := []TypeID{
		b.Object, b.Tuple, b.List, b.Ellipsis, b.Slice, b.NewAxis,
		in.Iterator(b.Int32), in.Module("numpy"),
	}
	for _, id := range objectLike {
		if !in.IsObjectLike(id) {
			t.Fatalf("%s must be object-like", in.Format(id))
		}
	}

	notObjectLike := []TypeID{arr, b.Int32, b.Float64, b.Complex128, in.Pointer(b.Int8), b.CString}
	for _, id := range notObjectLike {
		if in.IsObjectLike(id) {
			t.Fatalf("%s must not be object-like", in.Format(id))
		}
	}
}
