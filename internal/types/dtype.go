package types

// DescriptorType maps a runtime array-element descriptor, a (kind letter,
// item byte size) pair, to a scalar TypeID. The tables are indexed by
// log2(itemSize); any pair outside them fails with ErrUnsupportedElement
// rather than guessing.
//
// Kind letters follow the runtime's dtype convention: 'i' signed integer,
// 'u' unsigned integer, 'f' float, 'b' boolean, 'c' complex, 'O' generic
// object.
func (in *Interner) DescriptorType(letter byte, itemSize int) (TypeID, error) {
	b := in.builtins
	fail := func() (TypeID, error) {
		return NoTypeID, &TypeError{Kind: ErrUnsupportedElement, Letter: letter, ItemSize: itemSize}
	}

	idx, ok := log2Size(itemSize)
	if !ok {
		return fail()
	}

	switch letter {
	case 'i':
		table := []TypeID{b.Int8, b.Int16, b.Int32, b.Int64}
		if idx >= len(table) {
			return fail()
		}
		return table[idx], nil
	case 'u':
		table := []TypeID{b.Uint8, b.Uint16, b.Uint32, b.Uint64}
		if idx >= len(table) {
			return fail()
		}
		return table[idx], nil
	case 'f':
		switch itemSize {
		case 2:
			// Half-precision floats are not supported.
			return fail()
		case 4:
			return b.Float32, nil
		case 8:
			return b.Float64, nil
		case 16:
			return b.Float128, nil
		}
		return fail()
	case 'b':
		if itemSize != 1 {
			return fail()
		}
		return b.Int8, nil
	case 'c':
		switch itemSize {
		case 8:
			return b.Complex64, nil
		case 16:
			return b.Complex128, nil
		case 32:
			return b.Complex256, nil
		}
		return fail()
	case 'O':
		return b.Object, nil
	}
	return fail()
}

// log2Size returns log2(size) for exact powers of two in [1, 32].
func log2Size(size int) (int, bool) {
	switch size {
	case 1:
		return 0, true
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	case 16:
		return 4, true
	case 32:
		return 5, true
	default:
		return 0, false
	}
}
