// Package testkit provides an arithmetic-evaluating backend.Builder used by
// property tests: instead of emitting instructions it computes concrete
// values, so address arithmetic can be checked against hand-computed
// numbers.
package testkit

import (
	"fmt"

	"smelt/internal/backend"
	"smelt/internal/types"
)

// Kind tags for evaluator machine types.
const (
	kindInt     = 'i'
	kindFloat   = 'f'
	kindPointer = 'p'
	kindRecord  = 'r'
	kindVoid    = 'v'
)

// Type is the evaluator's machine type.
type Type struct {
	Kind byte
	Bits int
	Elem *Type
}

func (t *Type) byteSize() int {
	switch t.Kind {
	case kindPointer:
		return types.WordBytes
	case kindInt, kindFloat:
		return t.Bits / 8
	default:
		return types.WordBytes
	}
}

// Int is an evaluated integer value.
type Int struct {
	Bits int
	V    int64
}

// Float is an evaluated floating-point value.
type Float struct {
	Bits int
	V    float64
}

// Ptr is an evaluated pointer value.
type Ptr struct {
	Addr int64
	Elem *Type
}

// Record is an evaluated record literal.
type Record struct {
	Fields []backend.Value
}

// EvalBuilder implements backend.Builder by direct computation over a small
// word-granular memory.
type EvalBuilder struct {
	mem map[int64]int64

	Calls   int
	Increfs int
	Decrefs int
}

var _ backend.Builder = (*EvalBuilder)(nil)

// NewEvalBuilder creates an evaluator with empty memory.
func NewEvalBuilder() *EvalBuilder {
	return &EvalBuilder{mem: make(map[int64]int64, 16)}
}

// Place writes words into memory at addr with platform-word spacing and
// returns a pointer value to the first word. Used to lay out stride tables.
func (e *EvalBuilder) Place(addr int64, words []int64) backend.Value {
	for i, w := range words {
		e.mem[addr+int64(i*types.WordBytes)] = w
	}
	return &Ptr{Addr: addr, Elem: &Type{Kind: kindInt, Bits: types.WordBits}}
}

// Pointer wraps a raw address as a byte pointer value.
func (e *EvalBuilder) Pointer(addr int64) backend.Value {
	return &Ptr{Addr: addr, Elem: &Type{Kind: kindInt, Bits: 8}}
}

// IntType returns the evaluator integer type of the given width.
func (e *EvalBuilder) IntType(bits int) backend.Type {
	return &Type{Kind: kindInt, Bits: bits}
}

// PointerTo returns the evaluator pointer type to elem.
func (e *EvalBuilder) PointerTo(elem backend.Type) backend.Type {
	return &Type{Kind: kindPointer, Elem: elem.(*Type)}
}

// ConstInt materializes an integer literal.
func (e *EvalBuilder) ConstInt(t backend.Type, v int64) backend.Value {
	return &Int{Bits: t.(*Type).Bits, V: v}
}

// ConstFloat materializes a floating-point literal.
func (e *EvalBuilder) ConstFloat(t backend.Type, v float64) backend.Value {
	return &Float{Bits: t.(*Type).Bits, V: v}
}

// ConstRecord materializes a record literal.
func (e *EvalBuilder) ConstRecord(_ backend.Type, fields ...backend.Value) backend.Value {
	return &Record{Fields: fields}
}

// NullPointer materializes the null pointer.
func (e *EvalBuilder) NullPointer(t backend.Type) backend.Value {
	return &Ptr{Addr: 0, Elem: t.(*Type).Elem}
}

// IntWidth reports the width of an integer value.
func (e *EvalBuilder) IntWidth(v backend.Value) (int, bool) {
	i, ok := v.(*Int)
	if !ok {
		return 0, false
	}
	return i.Bits, true
}

// Load reads the word stored at the pointer's address.
func (e *EvalBuilder) Load(elem backend.Type, ptr backend.Value) backend.Value {
	p := ptr.(*Ptr)
	return &Int{Bits: elem.(*Type).Bits, V: e.mem[p.Addr]}
}

// Store writes an integer value at the pointer's address.
func (e *EvalBuilder) Store(val, ptr backend.Value) {
	p := ptr.(*Ptr)
	e.mem[p.Addr] = val.(*Int).V
}

// PtrAdd advances a pointer by idx elements of elem's size.
func (e *EvalBuilder) PtrAdd(elem backend.Type, ptr backend.Value, idx backend.Value) backend.Value {
	p := ptr.(*Ptr)
	i := idx.(*Int)
	et := elem.(*Type)
	return &Ptr{Addr: p.Addr + i.V*int64(et.byteSize()), Elem: et}
}

// Add evaluates integer addition.
func (e *EvalBuilder) Add(a, b backend.Value) backend.Value {
	x, y := a.(*Int), b.(*Int)
	return &Int{Bits: x.Bits, V: x.V + y.V}
}

// Mul evaluates integer multiplication.
func (e *EvalBuilder) Mul(a, b backend.Value) backend.Value {
	x, y := a.(*Int), b.(*Int)
	return &Int{Bits: x.Bits, V: x.V * y.V}
}

// BitCast retags a pointer with a new element type; other values pass
// through unchanged.
func (e *EvalBuilder) BitCast(v backend.Value, to backend.Type) backend.Value {
	if p, ok := v.(*Ptr); ok {
		t := to.(*Type)
		return &Ptr{Addr: p.Addr, Elem: t.Elem}
	}
	return v
}

// NumericCast re-widths integers and converts between int and float.
func (e *EvalBuilder) NumericCast(v backend.Value, to backend.Type) backend.Value {
	t := to.(*Type)
	switch v := v.(type) {
	case *Int:
		if t.Kind == kindFloat {
			return &Float{Bits: t.Bits, V: float64(v.V)}
		}
		return &Int{Bits: t.Bits, V: v.V}
	case *Float:
		if t.Kind == kindInt {
			return &Int{Bits: t.Bits, V: int64(v.V)}
		}
		return &Float{Bits: t.Bits, V: v.V}
	default:
		panic(fmt.Sprintf("testkit: cannot cast %T", v))
	}
}

// Call records the call and returns no value.
func (e *EvalBuilder) Call(_ backend.Value, _ ...backend.Value) backend.Value {
	e.Calls++
	return nil
}

// BeginRefScope counts a reference-count increment.
func (e *EvalBuilder) BeginRefScope(_ backend.Value) {
	e.Increfs++
}

// EndRefScope counts a reference-count decrement.
func (e *EvalBuilder) EndRefScope(_ backend.Value) {
	e.Decrefs++
}
