package tir

import (
	"smelt/internal/backend"
	"smelt/internal/types"
)

// Keyword is one keyword argument of a dynamic call.
type Keyword struct {
	Name  string
	Value *Node
}

// NativeCallData holds the payload of a call to a statically known native
// target.
type NativeCallData struct {
	Signature types.TypeID // function type
	Target    backend.Value
	Args      []*Node // each wrapped in a coercion to its parameter type
}

func (NativeCallData) nodeData() {}

// ObjectCallData holds the payload of a dynamic call through a callable
// object with positional and keyword arguments.
type ObjectCallData struct {
	Signature types.TypeID
	Callee    *Node
	Args      []*Node
	Kwargs    *Node // dynamic mapping value, or a null object pointer when empty
}

func (ObjectCallData) nodeData() {}

// ObjectMapData holds the keyword arguments collected into a dynamic
// mapping value.
type ObjectMapData struct {
	Keys   []string
	Values []*Node
}

func (ObjectMapData) nodeData() {}

// coerceArgs wraps every argument in a coercion to its declared parameter
// type, failing when the argument count disagrees with the signature.
func coerceArgs(u *Unit, sig types.TypeID, args []*Node) ([]*Node, *types.FnInfo, error) {
	info, ok := u.types.FnInfo(sig)
	if !ok {
		return nil, nil, &ArityError{Params: 0, Args: len(args)}
	}
	if len(args) != len(info.Params) {
		return nil, nil, &ArityError{Params: len(info.Params), Args: len(args)}
	}
	wrapped := make([]*Node, len(args))
	for i, arg := range args {
		wrapped[i] = Coerce(arg, info.Params[i])
	}
	return wrapped, info, nil
}

// NativeCall builds a call to a native function value with the given
// signature. Arguments are coerced to their parameter types; an argument
// count mismatch fails with ArityError and constructs no node.
func NativeCall(u *Unit, sig types.TypeID, target backend.Value, args []*Node) (*Node, error) {
	wrapped, info, err := coerceArgs(u, sig, args)
	if err != nil {
		return nil, err
	}
	return &Node{
		Kind: NodeNativeCall,
		Type: info.Result,
		Var:  NewVariable(info.Result),
		Data: NativeCallData{Signature: sig, Target: target, Args: wrapped},
	}, nil
}

// ObjectCall builds a dynamic call through a callable-object expression.
// Keyword arguments are collected into a dynamic mapping value; when there
// are none, the mapping degrades to a null object pointer constant.
func ObjectCall(u *Unit, sig types.TypeID, callee *Node, args []*Node, kwargs []Keyword) (*Node, error) {
	wrapped, info, err := coerceArgs(u, sig, args)
	if err != nil {
		return nil, err
	}

	var kwNode *Node
	if len(kwargs) > 0 {
		keys := make([]string, len(kwargs))
		values := make([]*Node, len(kwargs))
		for i, kw := range kwargs {
			keys[i] = kw.Name
			values[i] = kw.Value
		}
		object := u.types.Builtins().Object
		kwNode = &Node{
			Kind: NodeObjectMap,
			Type: object,
			Var:  NewVariable(object),
			Data: ObjectMapData{Keys: keys, Values: values},
		}
	} else {
		kwNode, err = Const(u, 0, u.types.Pointer(u.types.Builtins().Object))
		if err != nil {
			return nil, err
		}
	}

	return &Node{
		Kind: NodeObjectCall,
		Type: info.Result,
		Var:  NewVariable(info.Result),
		Data: ObjectCallData{Signature: sig, Callee: callee, Args: wrapped, Kwargs: kwNode},
	}, nil
}
