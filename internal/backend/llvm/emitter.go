// Package llvm lowers source types to their native machine representation
// and implements the backend.Builder instruction surface on top of LLVM IR.
package llvm

import (
	"github.com/llir/llvm/ir"
	lltypes "github.com/llir/llvm/ir/types"

	"smelt/internal/backend"
	"smelt/internal/observ"
	"smelt/internal/types"
)

// Emitter owns one LLVM module per compilation unit together with the
// runtime declarations the lowered code links against.
type Emitter struct {
	Types  *types.Interner
	Module *ir.Module
	Timer  *observ.Timer

	object     *lltypes.StructType
	objectPtr  *lltypes.PointerType
	ndarray    *lltypes.StructType
	ndarrayPtr *lltypes.PointerType

	incref *ir.Func
	decref *ir.Func

	machine map[types.TypeID]lltypes.Type
}

// NewEmitter creates an emitter over a fresh LLVM module and declares the
// runtime types and reference-counting externs.
func NewEmitter(in *types.Interner) *Emitter {
	e := &Emitter{
		Types:   in,
		Module:  ir.NewModule(),
		Timer:   observ.NewTimer(),
		machine: make(map[types.TypeID]lltypes.Type, 32),
	}

	phase := e.Timer.Begin("runtime-decls")

	// Object header shared by every value held as a dynamic reference.
	e.object = lltypes.NewStruct(lltypes.I64, lltypes.NewPointer(lltypes.I8))
	e.Module.NewTypeDef("smelt.object", e.object)
	e.objectPtr = lltypes.NewPointer(e.object)

	// Native array descriptor: header, data pointer, rank, shape, strides,
	// item size. The backend recognizes the record; it is not decomposed by
	// the type model.
	word := wordType()
	wordPtr := lltypes.NewPointer(word)
	e.ndarray = lltypes.NewStruct(
		e.object,
		lltypes.NewPointer(lltypes.I8),
		word,
		wordPtr,
		wordPtr,
		word,
	)
	e.Module.NewTypeDef("smelt.ndarray", e.ndarray)
	e.ndarrayPtr = lltypes.NewPointer(e.ndarray)

	e.incref = e.Module.NewFunc("smelt_incref", lltypes.Void, ir.NewParam("obj", e.objectPtr))
	e.decref = e.Module.NewFunc("smelt_decref", lltypes.Void, ir.NewParam("obj", e.objectPtr))

	e.Timer.End(phase, "")
	return e
}

// wordType returns the platform-word LLVM integer type.
func wordType() *lltypes.IntType {
	if types.WordBits == 32 {
		return lltypes.I32
	}
	return lltypes.I64
}

// NewFunction declares a function with the machine representation of the
// given signature type.
func (e *Emitter) NewFunction(name string, sig types.TypeID) (*ir.Func, error) {
	phase := e.Timer.Begin("type-lowering")
	defer e.Timer.End(phase, name)

	info, ok := e.Types.FnInfo(sig)
	if !ok {
		return nil, &MachineTypeError{Type: sig, Kind: types.KindFunc}
	}
	ret, err := e.machineType(info.Result)
	if err != nil {
		return nil, err
	}
	params := make([]*ir.Param, len(info.Params))
	for i, p := range info.Params {
		mt, errP := e.machineType(p)
		if errP != nil {
			return nil, errP
		}
		params[i] = ir.NewParam("", mt)
	}
	return e.Module.NewFunc(name, ret, params...), nil
}

// NewBuilder returns a Builder emitting into block and opens its
// node-lowering phase; Finish closes it.
func (e *Emitter) NewBuilder(block *ir.Block) *Builder {
	return &Builder{em: e, block: block, phase: e.Timer.Begin("node-lowering")}
}

var _ backend.TypeLowerer = (*Emitter)(nil)
