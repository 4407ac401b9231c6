package types

import "fmt"

// TypeErrorKind enumerates construction and resolution failures raised by the
// type model.
type TypeErrorKind uint8

const (
	// ErrInvalidConstruction indicates malformed structural parameters
	// (negative rank or length).
	ErrInvalidConstruction TypeErrorKind = iota + 1
	// ErrUnsupportedElement indicates a runtime array-element descriptor with
	// no defined scalar mapping.
	ErrUnsupportedElement
)

// TypeError represents a failed type construction or descriptor resolution.
// It carries the offending parameters so the compilation driver can report
// them.
type TypeError struct {
	Kind     TypeErrorKind
	Elem     TypeID // for ErrInvalidConstruction
	Rank     int    // for ErrInvalidConstruction (array)
	Length   int    // for ErrInvalidConstruction (C-array)
	Letter   byte   // for ErrUnsupportedElement
	ItemSize int    // for ErrUnsupportedElement
}

func (e *TypeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrInvalidConstruction:
		if e.Length != 0 {
			return fmt.Sprintf("invalid type construction: negative length %d (elem type#%d)", e.Length, e.Elem)
		}
		return fmt.Sprintf("invalid type construction: negative rank %d (elem type#%d)", e.Rank, e.Elem)
	case ErrUnsupportedElement:
		return fmt.Sprintf("unsupported element type: kind %q itemsize %d", e.Letter, e.ItemSize)
	default:
		return fmt.Sprintf("type error kind=%d", e.Kind)
	}
}
