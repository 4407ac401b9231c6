package types

import "strconv"

// WordBytes is the byte size of the platform word. The JIT compiles for the
// process it runs in, so the host pointer width is the target pointer width.
const WordBytes = strconv.IntSize / 8

// WordBits is the bit width of the platform word.
const WordBits = strconv.IntSize

// ByteSize returns the storage size of a type in bytes. It reports false for
// kinds without a fixed storage size (modules, singleton markers, functions).
func (in *Interner) ByteSize(id TypeID) (int, bool) {
	tt, ok := in.Lookup(id)
	if !ok {
		return 0, false
	}
	switch tt.Kind {
	case KindBool:
		return 1, true
	case KindInt, KindFloat:
		if tt.Width == WidthNone {
			return 0, false
		}
		return int(tt.Width) / 8, true
	case KindIntp:
		return WordBytes, true
	case KindComplex:
		base, ok := in.ByteSize(tt.Elem)
		if !ok {
			return 0, false
		}
		return 2 * base, true
	case KindPointer, KindObject, KindCString:
		return WordBytes, true
	case KindCArray:
		elem, ok := in.ByteSize(tt.Elem)
		if !ok {
			return 0, false
		}
		return elem * int(tt.Count), true
	default:
		return 0, false
	}
}
