package tir

import (
	"fmt"
	"io"
	"strings"

	"smelt/internal/types"
)

// Dump writes a human-readable representation of a node tree. The output is
// deterministic and pinned by golden tests.
func Dump(w io.Writer, in *types.Interner, n *Node) {
	dumpNode(w, in, n, 0)
}

// DumpString renders a node tree into a string.
func DumpString(in *types.Interner, n *Node) string {
	var sb strings.Builder
	Dump(&sb, in, n)
	return sb.String()
}

func dumpNode(w io.Writer, in *types.Interner, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(w, "%s<nil>\n", indent)
		return
	}

	fmt.Fprintf(w, "%s%s type=%s", indent, n.Kind, in.Format(n.ResultType()))
	if n.Var != nil && n.Var.Name != "" {
		fmt.Fprintf(w, " name=%s", n.Var.Name)
	}

	switch d := n.Data.(type) {
	case ConstData:
		fmt.Fprintf(w, " value=%v\n", d.Value)
	case CoerceData:
		fmt.Fprintln(w)
		dumpNode(w, in, d.Child, depth+1)
	case NativeCallData:
		fmt.Fprintf(w, " sig=%s\n", in.Format(d.Signature))
		for _, arg := range d.Args {
			dumpNode(w, in, arg, depth+1)
		}
	case ObjectCallData:
		fmt.Fprintf(w, " sig=%s\n", in.Format(d.Signature))
		dumpNode(w, in, d.Callee, depth+1)
		for _, arg := range d.Args {
			dumpNode(w, in, arg, depth+1)
		}
		dumpNode(w, in, d.Kwargs, depth+1)
	case ObjectMapData:
		fmt.Fprintf(w, " keys=%s\n", strings.Join(d.Keys, ","))
		for _, v := range d.Values {
			dumpNode(w, in, v, depth+1)
		}
	case ObjectTempData:
		fmt.Fprintln(w, " refcounted")
		dumpNode(w, in, d.Child, depth+1)
	case TempRefData:
		// Back-reference only: print the target's name, do not recurse.
		fmt.Fprintf(w, " temp=%s\n", d.Temp.Var.Name)
	case ArrayAttrData:
		fmt.Fprintf(w, " attr=%s\n", d.Attr)
		dumpNode(w, in, d.Array, depth+1)
	case DataPointerData:
		fmt.Fprintln(w)
		dumpNode(w, in, d.Array, depth+1)
	default:
		fmt.Fprintln(w)
	}
}
