package types

import "fmt"

// Format renders a type deterministically for diagnostics. The output is
// stable across runs and pinned by golden tests.
func (in *Interner) Format(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch tt.Kind {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		if tt.Signed {
			return fmt.Sprintf("int%d", tt.Width)
		}
		return fmt.Sprintf("uint%d", tt.Width)
	case KindIntp:
		return "intp"
	case KindFloat:
		return fmt.Sprintf("float%d", tt.Width)
	case KindComplex:
		base, okBase := in.ByteSize(tt.Elem)
		if !okBase {
			return "complex<?>"
		}
		return fmt.Sprintf("complex%d", 2*base*8)
	case KindObject:
		return "object"
	case KindArray:
		if tt.Contig == ContigNone {
			return fmt.Sprintf("array<%s, ndim=%d>", in.Format(tt.Elem), tt.Count)
		}
		return fmt.Sprintf("array<%s, ndim=%d, %s>", in.Format(tt.Elem), tt.Count, tt.Contig)
	case KindPointer:
		return "*" + in.Format(tt.Elem)
	case KindCArray:
		return fmt.Sprintf("[%d]%s", tt.Count, in.Format(tt.Elem))
	case KindCString:
		return "cstring"
	case KindIterator:
		return fmt.Sprintf("iterator<%s>", in.Format(tt.Elem))
	case KindFunc:
		info, okInfo := in.FnInfo(id)
		if !okInfo {
			return "fn<?>"
		}
		out := "fn("
		for i, p := range info.Params {
			if i > 0 {
				out += ", "
			}
			out += in.Format(p)
		}
		return out + ") -> " + in.Format(info.Result)
	case KindModule:
		info, okInfo := in.ModuleInfo(id)
		if !okInfo || info.Name == "" {
			return "module"
		}
		return fmt.Sprintf("module<%s>", info.Name)
	case KindModuleAttr:
		info, okInfo := in.ModuleAttrInfo(id)
		if !okInfo {
			return "module_attr"
		}
		mod, okMod := in.ModuleInfo(info.Module)
		if !okMod {
			return "?." + info.Attr
		}
		return mod.Name + "." + info.Attr
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindEllipsis:
		return "..."
	case KindSlice:
		return ":"
	case KindNewAxis:
		return "newaxis"
	case KindPhi:
		return "phi"
	case KindRange:
		return "range"
	case KindGlobal:
		return "global"
	case KindBuiltin:
		return "builtin"
	default:
		return fmt.Sprintf("<%s>", tt.Kind)
	}
}
