package types

import (
	"errors"
	"testing"
)

func TestDescriptorTypeSupportedPairs(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	cases := []struct {
		letter byte
		size   int
		want   TypeID
	}{
		{'i', 1, b.Int8},
		{'i', 2, b.Int16},
		{'i', 4, b.Int32},
		{'i', 8, b.Int64},
		{'u', 1, b.Uint8},
		{'u', 2, b.Uint16},
		{'u', 4, b.Uint32},
		{'u', 8, b.Uint64},
		{'f', 4, b.Float32},
		{'f', 8, b.Float64},
		{'f', 16, b.Float128},
		{'b', 1, b.Int8},
		{'c', 8, b.Complex64},
		{'c', 16, b.Complex128},
		{'c', 32, b.Complex256},
		{'O', 8, b.Object},
	}
	for _, c := range cases {
		got, err := in.DescriptorType(c.letter, c.size)
		if err != nil {
			t.Fatalf("(%q, %d): %v", c.letter, c.size, err)
		}
		if got != c.want {
			t.Fatalf("(%q, %d): got %s, want %s", c.letter, c.size, in.Format(got), in.Format(c.want))
		}
	}
}

func TestDescriptorTypeHalfFloatUnsupported(t *testing.T) {
	in := NewInterner()
	_, err := in.DescriptorType('f', 2)
	if err == nil {
		t.Fatalf("half float must be rejected")
	}
	var te *TypeError
	if !errors.As(err, &te) || te.Kind != ErrUnsupportedElement {
		t.Fatalf("expected ErrUnsupportedElement, got %v", err)
	}
	if te.Letter != 'f' || te.ItemSize != 2 {
		t.Fatalf("error must carry the offending descriptor, got %+v", te)
	}
}

func TestDescriptorTypeNeverGuesses(t *testing.T) {
	in := NewInterner()
	bad := []struct {
		letter byte
		size   int
	}{
		{'x', 4},
		{'i', 3},
		{'i', 16},
		{'u', 32},
		{'c', 4},
		{'b', 2},
		{'f', 1},
	}
	for _, c := range bad {
		if _, err := in.DescriptorType(c.letter, c.size); err == nil {
			t.Fatalf("(%q, %d) must fail", c.letter, c.size)
		}
	}
}
