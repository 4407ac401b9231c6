package tir

import (
	"smelt/internal/backend"
	"smelt/internal/types"
)

// DataPointerData holds the array expression whose data pointer is exposed
// for subscripting.
type DataPointerData struct {
	Array *Node
}

func (DataPointerData) nodeData() {}

// DataPointer builds the subscript entry point for an array-typed node.
func DataPointer(array *Node) *Node {
	ty := array.ResultType()
	return &Node{
		Kind: NodeDataPointer,
		Type: ty,
		Var:  NewVariable(ty),
		Data: DataPointerData{Array: array},
	}
}

// ArrayAccess carries the backend values the address calculator needs. Data
// is a byte pointer to the first element; Strides points at the first entry
// of the per-dimension byte-stride table, which is read fresh at emission
// time. Elem is the element machine type, Word the stride integer machine
// type of WordBits bits.
type ArrayAccess struct {
	Data     backend.Value
	Strides  backend.Value
	Rank     int
	Elem     backend.Type
	Word     backend.Type
	WordBits int
}

// ElementPointer computes the address of the element selected by the index
// sequence and returns it as a pointer to the element machine type.
//
// Dimension i takes its index from position len(indices)-1-i: the last
// supplied index addresses dimension 0. The stride table is stored
// outermost-dimension-last relative to conventional indexing, and this
// pairing is preserved exactly as the runtime produces it.
//
// Fewer indices than the rank is partial indexing: the unindexed trailing
// dimensions contribute zero offset. More indices than the rank fails with
// RankError before anything is emitted.
//
// The running offset is accumulated in the stride's integer width. When an
// index is wider than the current offset, the offset is widened to match;
// it is never narrowed.
func ElementPointer(b backend.Builder, acc ArrayAccess, indices ...backend.Value) (backend.Value, error) {
	if len(indices) > acc.Rank {
		return nil, &RankError{Rank: acc.Rank, Indices: len(indices)}
	}

	wordBits := acc.WordBits
	if wordBits == 0 {
		wordBits = types.WordBits
	}
	word := acc.Word
	if word == nil {
		word = b.IntType(wordBits)
	}
	dimTy := b.IntType(32)

	offBits := wordBits
	offset := b.ConstInt(word, 0)
	for dim := 0; dim < len(indices); dim++ {
		index := indices[len(indices)-1-dim]

		stridePtr := b.PtrAdd(word, acc.Strides, b.ConstInt(dimTy, int64(dim)))
		stride := b.Load(word, stridePtr)

		bits := wordBits
		if iw, ok := b.IntWidth(index); ok && iw > bits {
			bits = iw
		}
		if offBits > bits {
			bits = offBits
		}
		target := b.IntType(bits)
		index = b.NumericCast(index, target)
		stride = b.NumericCast(stride, target)
		offset = b.NumericCast(offset, target)
		offBits = bits

		offset = b.Add(offset, b.Mul(index, stride))
	}

	addr := b.PtrAdd(b.IntType(8), acc.Data, offset)
	return b.BitCast(addr, b.PointerTo(acc.Elem)), nil
}
