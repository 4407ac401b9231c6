package llvm

import (
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"smelt/internal/tir"
	"smelt/internal/types"
)

// Descriptor field indices in the smelt.ndarray record.
const (
	ndarrayFieldData    = 1
	ndarrayFieldRank    = 2
	ndarrayFieldShape   = 3
	ndarrayFieldStrides = 4
)

// ArrayAccess loads the data and stride pointers out of a native array
// descriptor value and packages them for the address calculator. The loads
// happen at emission time so strides are always read fresh from the runtime
// descriptor.
func (b *Builder) ArrayAccess(arr value.Value, arrayType types.TypeID) (tir.ArrayAccess, error) {
	elem, rank, _, ok := b.em.Types.ArrayInfo(arrayType)
	if !ok {
		return tir.ArrayAccess{}, &MachineTypeError{Type: arrayType, Kind: types.KindArray}
	}
	elemMachine, err := b.em.machineType(elem)
	if err != nil {
		return tir.ArrayAccess{}, err
	}

	word := wordType()
	bytePtr := lltypes.NewPointer(lltypes.I8)
	wordPtr := lltypes.NewPointer(word)

	zero := constant.NewInt(lltypes.I32, 0)
	dataField := b.block.NewGetElementPtr(b.em.ndarray, arr, zero, constant.NewInt(lltypes.I32, ndarrayFieldData))
	data := b.block.NewLoad(bytePtr, dataField)
	strideField := b.block.NewGetElementPtr(b.em.ndarray, arr, zero, constant.NewInt(lltypes.I32, ndarrayFieldStrides))
	strides := b.block.NewLoad(wordPtr, strideField)

	return tir.ArrayAccess{
		Data:     data,
		Strides:  strides,
		Rank:     rank,
		Elem:     elemMachine,
		Word:     word,
		WordBits: types.WordBits,
	}, nil
}
