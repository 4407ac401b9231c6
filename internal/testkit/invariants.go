package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"smelt/internal/types"
)

// CheckInterner walks every interned type and verifies the structural
// invariants the rest of the compiler relies on:
// 1) every stored descriptor re-interns to its own ID (dedup is stable)
// 2) composite kinds refer to resolvable element types
// 3) widths come from the fixed sets, payload kinds have side-table entries
func CheckInterner(in *types.Interner) error {
	if in == nil {
		return fmt.Errorf("nil interner")
	}
	for i := 1; ; i++ {
		raw, err := safecast.Conv[uint32](i)
		if err != nil {
			return fmt.Errorf("type index overflow: %w", err)
		}
		id := types.TypeID(raw)
		tt, ok := in.Lookup(id)
		if !ok {
			return nil
		}
		if got := in.Intern(tt); got != id {
			return fmt.Errorf("type#%d does not re-intern to itself (got #%d)", id, got)
		}

		switch tt.Kind {
		case types.KindArray, types.KindPointer, types.KindCArray, types.KindIterator:
			if _, okE := in.Lookup(tt.Elem); !okE {
				return fmt.Errorf("%s type#%d has unresolvable element #%d", tt.Kind, id, tt.Elem)
			}
		case types.KindComplex:
			if !in.IsFloat(tt.Elem) {
				return fmt.Errorf("complex type#%d has non-float base #%d", id, tt.Elem)
			}
		case types.KindInt:
			switch tt.Width {
			case types.Width8, types.Width16, types.Width32, types.Width64:
			default:
				return fmt.Errorf("int type#%d has width %d", id, tt.Width)
			}
		case types.KindFloat:
			switch tt.Width {
			case types.Width32, types.Width64, types.Width128:
			default:
				return fmt.Errorf("float type#%d has width %d", id, tt.Width)
			}
		case types.KindFunc:
			info, okF := in.FnInfo(id)
			if !okF {
				return fmt.Errorf("func type#%d has no signature entry", id)
			}
			if _, okR := in.Lookup(info.Result); !okR {
				return fmt.Errorf("func type#%d has unresolvable result #%d", id, info.Result)
			}
			for j, p := range info.Params {
				if _, okP := in.Lookup(p); !okP {
					return fmt.Errorf("func type#%d param %d is unresolvable (#%d)", id, j, p)
				}
			}
		case types.KindModule:
			if _, okM := in.ModuleInfo(id); !okM {
				return fmt.Errorf("module type#%d has no name entry", id)
			}
		case types.KindModuleAttr:
			info, okA := in.ModuleAttrInfo(id)
			if !okA {
				return fmt.Errorf("module attr type#%d has no side-table entry", id)
			}
			if mt, okM := in.Lookup(info.Module); !okM || mt.Kind != types.KindModule {
				return fmt.Errorf("module attr type#%d does not point at a module (#%d)", id, info.Module)
			}
		}
	}
}
