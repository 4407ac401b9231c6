package llvm

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"smelt/internal/backend"
)

// Builder implements backend.Builder by appending LLVM instructions to a
// basic block.
type Builder struct {
	em    *Emitter
	block *ir.Block
	phase int
}

var _ backend.Builder = (*Builder)(nil)

// Block returns the block instructions are appended to.
func (b *Builder) Block() *ir.Block {
	return b.block
}

// Finish closes the builder's node-lowering phase.
func (b *Builder) Finish() {
	b.em.Timer.End(b.phase, b.block.Name())
}

// IntType returns the LLVM integer type of the given bit width.
func (b *Builder) IntType(bits int) backend.Type {
	switch bits {
	case 1:
		return lltypes.I1
	case 8:
		return lltypes.I8
	case 16:
		return lltypes.I16
	case 32:
		return lltypes.I32
	case 64:
		return lltypes.I64
	default:
		return lltypes.NewInt(uint64(bits))
	}
}

// PointerTo returns the LLVM pointer type to elem.
func (b *Builder) PointerTo(elem backend.Type) backend.Type {
	return lltypes.NewPointer(elem.(lltypes.Type))
}

// ConstInt materializes an integer literal.
func (b *Builder) ConstInt(t backend.Type, v int64) backend.Value {
	return constant.NewInt(t.(*lltypes.IntType), v)
}

// ConstFloat materializes a floating-point literal.
func (b *Builder) ConstFloat(t backend.Type, v float64) backend.Value {
	return constant.NewFloat(t.(*lltypes.FloatType), v)
}

// ConstRecord materializes a record literal.
func (b *Builder) ConstRecord(t backend.Type, fields ...backend.Value) backend.Value {
	consts := make([]constant.Constant, len(fields))
	for i, f := range fields {
		consts[i] = f.(constant.Constant)
	}
	return constant.NewStruct(t.(*lltypes.StructType), consts...)
}

// NullPointer materializes the canonical null pointer.
func (b *Builder) NullPointer(t backend.Type) backend.Value {
	return constant.NewNull(t.(*lltypes.PointerType))
}

// IntWidth reports the bit width of an integer value.
func (b *Builder) IntWidth(v backend.Value) (int, bool) {
	it, ok := v.(value.Value).Type().(*lltypes.IntType)
	if !ok {
		return 0, false
	}
	return int(it.BitSize), true
}

// Load reads a value of type elem through ptr.
func (b *Builder) Load(elem backend.Type, ptr backend.Value) backend.Value {
	return b.block.NewLoad(elem.(lltypes.Type), ptr.(value.Value))
}

// Store writes val through ptr.
func (b *Builder) Store(val, ptr backend.Value) {
	b.block.NewStore(val.(value.Value), ptr.(value.Value))
}

// PtrAdd advances ptr by idx elements of type elem.
func (b *Builder) PtrAdd(elem backend.Type, ptr backend.Value, idx backend.Value) backend.Value {
	return b.block.NewGetElementPtr(elem.(lltypes.Type), ptr.(value.Value), idx.(value.Value))
}

// Add emits integer addition.
func (b *Builder) Add(x, y backend.Value) backend.Value {
	return b.block.NewAdd(x.(value.Value), y.(value.Value))
}

// Mul emits integer multiplication.
func (b *Builder) Mul(x, y backend.Value) backend.Value {
	return b.block.NewMul(x.(value.Value), y.(value.Value))
}

// BitCast reinterprets v as type to.
func (b *Builder) BitCast(v backend.Value, to backend.Type) backend.Value {
	return b.block.NewBitCast(v.(value.Value), to.(lltypes.Type))
}

// NumericCast converts v to the numeric type to. Integer widening is
// sign-extending: offsets and strides are signed quantities.
func (b *Builder) NumericCast(v backend.Value, to backend.Type) backend.Value {
	src := v.(value.Value)
	dst := to.(lltypes.Type)
	srcTy := src.Type()
	if srcTy.Equal(dst) {
		return src
	}

	srcInt, srcIsInt := srcTy.(*lltypes.IntType)
	dstInt, dstIsInt := dst.(*lltypes.IntType)
	srcFloat, srcIsFloat := srcTy.(*lltypes.FloatType)
	dstFloat, dstIsFloat := dst.(*lltypes.FloatType)

	switch {
	case srcIsInt && dstIsInt:
		if srcInt.BitSize < dstInt.BitSize {
			return b.block.NewSExt(src, dst)
		}
		return b.block.NewTrunc(src, dst)
	case srcIsInt && dstIsFloat:
		return b.block.NewSIToFP(src, dst)
	case srcIsFloat && dstIsInt:
		return b.block.NewFPToSI(src, dst)
	case srcIsFloat && dstIsFloat:
		if floatBits(srcFloat.Kind) < floatBits(dstFloat.Kind) {
			return b.block.NewFPExt(src, dst)
		}
		return b.block.NewFPTrunc(src, dst)
	default:
		return b.block.NewBitCast(src, dst)
	}
}

// Call emits a call instruction.
func (b *Builder) Call(fn backend.Value, args ...backend.Value) backend.Value {
	vals := make([]value.Value, len(args))
	for i, a := range args {
		vals[i] = a.(value.Value)
	}
	return b.block.NewCall(fn.(value.Value), vals...)
}

// BeginRefScope increments the reference count of an object value.
func (b *Builder) BeginRefScope(v backend.Value) {
	b.block.NewCall(b.em.incref, b.asObject(v))
}

// EndRefScope decrements the reference count of an object value.
func (b *Builder) EndRefScope(v backend.Value) {
	b.block.NewCall(b.em.decref, b.asObject(v))
}

func (b *Builder) asObject(v backend.Value) value.Value {
	val := v.(value.Value)
	if val.Type().Equal(b.em.objectPtr) {
		return val
	}
	return b.block.NewBitCast(val, b.em.objectPtr)
}

func floatBits(k lltypes.FloatKind) int {
	switch k {
	case lltypes.FloatKindHalf:
		return 16
	case lltypes.FloatKindFloat:
		return 32
	case lltypes.FloatKindDouble:
		return 64
	case lltypes.FloatKindX86_FP80:
		return 80
	case lltypes.FloatKindFP128, lltypes.FloatKindPPC_FP128:
		return 128
	default:
		return 0
	}
}
