package tir

import (
	"fmt"

	"smelt/internal/types"
)

// Classifier maps a literal value to its type. Units carry one so the
// default mapping can be replaced by the embedding driver.
type Classifier func(*types.Interner, any) (types.TypeID, error)

// Unit is the per-compilation-unit context. It owns the only mutable state
// in the core: the counter that names temporaries. Each concurrent
// compilation uses its own Unit, which keeps generated names deterministic
// and independent across compilations.
type Unit struct {
	types    *types.Interner
	classify Classifier
	temps    uint64
}

// NewUnit creates a compilation-unit context over the given interner.
func NewUnit(in *types.Interner) *Unit {
	return &Unit{types: in, classify: ClassifyValue}
}

// SetClassifier replaces the value-to-type classifier.
func (u *Unit) SetClassifier(c Classifier) {
	if c != nil {
		u.classify = c
	}
}

// Types returns the unit's interner.
func (u *Unit) Types() *types.Interner {
	return u.types
}

// nextTempName generates a fresh temporary name. Names are unique within the
// unit; Reset is the only way they repeat.
func (u *Unit) nextTempName() string {
	name := fmt.Sprintf("__smelt_%d", u.temps)
	u.temps++
	return name
}

// Reset rewinds the temporary counter to zero. Used between independent
// compilations that must produce identical output.
func (u *Unit) Reset() {
	u.temps = 0
}
