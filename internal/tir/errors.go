package tir

import (
	"fmt"

	"smelt/internal/types"
)

// ArityError reports a call whose argument count disagrees with its
// signature. Raised at construction time; no node is built.
type ArityError struct {
	Params int
	Args   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: signature has %d parameters, got %d arguments", e.Params, e.Args)
}

// RankError reports a subscript with more indices than the array has
// dimensions.
type RankError struct {
	Rank    int
	Indices int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("rank mismatch: %d indices for rank-%d array", e.Indices, e.Rank)
}

// AttrError reports attribute access on an array type for an unrecognized
// name.
type AttrError struct {
	Attr  string
	Array types.TypeID
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("unknown array attribute %q (array type#%d)", e.Attr, e.Array)
}

// ConstError reports a constant whose type cannot be represented as a
// compile-time literal.
type ConstError struct {
	Type types.TypeID
}

func (e *ConstError) Error() string {
	return fmt.Sprintf("constant of type#%d is not materializable", e.Type)
}
