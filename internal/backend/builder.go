// Package backend declares the opaque instruction-emission surface the typed
// IR depends on. The core never emits instructions itself; it asks a Builder
// to do so and threads the returned opaque handles through the node graph.
// Concrete implementations live in backend/llvm (native code) and
// internal/testkit (an arithmetic evaluator for property tests).
package backend

import "smelt/internal/types"

// Value is an opaque handle to a backend value.
type Value interface{}

// Type is an opaque handle to a backend machine type.
type Type interface{}

// TypeLowerer resolves a source type to its backend machine representation.
type TypeLowerer interface {
	MachineType(id types.TypeID) (Type, error)
}

// Builder emits instructions into the current position of the backend's
// instruction stream. All methods are synchronous and never fail: malformed
// requests are programming errors caught at node construction time, before a
// Builder is involved.
type Builder interface {
	// IntType returns the machine integer type of the given bit width.
	IntType(bits int) Type
	// PointerTo returns the machine pointer type to elem.
	PointerTo(elem Type) Type

	// ConstInt materializes an integer literal of type t.
	ConstInt(t Type, v int64) Value
	// ConstFloat materializes a floating-point literal of type t.
	ConstFloat(t Type, v float64) Value
	// ConstRecord materializes a record literal of struct type t.
	ConstRecord(t Type, fields ...Value) Value
	// NullPointer materializes the canonical null pointer of type t.
	NullPointer(t Type) Value

	// IntWidth reports the bit width of an integer value.
	IntWidth(v Value) (int, bool)

	// Load reads a value of type elem through ptr.
	Load(elem Type, ptr Value) Value
	// Store writes val through ptr.
	Store(val, ptr Value)
	// PtrAdd advances ptr by idx elements of type elem. Byte-wise pointer
	// arithmetic uses an 8-bit element type.
	PtrAdd(elem Type, ptr Value, idx Value) Value

	// Add and Mul emit integer arithmetic on same-width operands.
	Add(a, b Value) Value
	Mul(a, b Value) Value

	// BitCast reinterprets v as type to without changing bits.
	BitCast(v Value, to Type) Value
	// NumericCast converts v to the numeric type to, widening or narrowing
	// as the types dictate.
	NumericCast(v Value, to Type) Value

	// Call emits a call to fn with the given arguments.
	Call(fn Value, args ...Value) Value

	// BeginRefScope and EndRefScope bracket the lifetime of a
	// reference-counted object value. The backend performs the actual
	// bookkeeping.
	BeginRefScope(v Value)
	EndRefScope(v Value)
}
