package tir

import "smelt/internal/types"

// Variable is a typed binding. Exactly one node owns it (the node that
// introduces the binding); later readers and writers reference it without
// taking ownership.
type Variable struct {
	Type       types.TypeID
	Name       string
	IsLocal    bool
	IsConstant bool
	Const      any // captured value, set when IsConstant
}

// NewVariable creates an anonymous binding of the given type.
func NewVariable(ty types.TypeID) *Variable {
	return &Variable{Type: ty}
}
