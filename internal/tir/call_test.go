package tir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smelt/internal/types"
)

func newTestUnit(t *testing.T) (*Unit, types.Builtins) {
	t.Helper()
	in := types.NewInterner()
	return NewUnit(in), in.Builtins()
}

func TestNativeCallCoercesArguments(t *testing.T) {
	u, b := newTestUnit(t)
	sig := u.Types().Func(b.Int64, []types.TypeID{b.Int32, b.Float64})

	a1, err := Const(u, 7, b.Int64)
	require.NoError(t, err)
	a2, err := Const(u, 2, b.Int64)
	require.NoError(t, err)

	call, err := NativeCall(u, sig, nil, []*Node{a1, a2})
	require.NoError(t, err)
	assert.Equal(t, b.Int64, call.ResultType())

	data := call.Data.(NativeCallData)
	require.Len(t, data.Args, 2)
	assert.Equal(t, NodeCoerce, data.Args[0].Kind)
	assert.Equal(t, b.Int32, data.Args[0].ResultType())
	assert.Equal(t, NodeCoerce, data.Args[1].Kind)
	assert.Equal(t, b.Float64, data.Args[1].ResultType())
}

func TestCallArityMismatchConstructsNoNode(t *testing.T) {
	u, b := newTestUnit(t)
	sig := u.Types().Func(b.Int64, []types.TypeID{b.Int32, b.Float64})

	args := make([]*Node, 3)
	for i := range args {
		n, err := Const(u, i, b.Int32)
		require.NoError(t, err)
		args[i] = n
	}

	call, err := NativeCall(u, sig, nil, args)
	assert.Nil(t, call)
	var ae *ArityError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 2, ae.Params)
	assert.Equal(t, 3, ae.Args)
}

func TestObjectCallCollectsKeywords(t *testing.T) {
	u, b := newTestUnit(t)
	in := u.Types()
	sig := in.Func(b.Object, []types.TypeID{b.Object})

	callee, err := Const(u, ModuleValue{Name: "numpy"}, types.NoTypeID)
	require.NoError(t, err)
	arg, err := Const(u, 1, b.Object)
	require.NoError(t, err)
	kwVal, err := Const(u, 3, b.Int64)
	require.NoError(t, err)

	call, err := ObjectCall(u, sig, callee, []*Node{arg}, []Keyword{{Name: "axis", Value: kwVal}})
	require.NoError(t, err)
	assert.Equal(t, b.Object, call.ResultType())

	data := call.Data.(ObjectCallData)
	require.NotNil(t, data.Kwargs)
	assert.Equal(t, NodeObjectMap, data.Kwargs.Kind)
	kw := data.Kwargs.Data.(ObjectMapData)
	assert.Equal(t, []string{"axis"}, kw.Keys)
}

func TestObjectCallWithoutKeywordsDegradesToNullMapping(t *testing.T) {
	u, b := newTestUnit(t)
	in := u.Types()
	sig := in.Func(b.Object, nil)

	callee, err := Const(u, ModuleValue{Name: "numpy"}, types.NoTypeID)
	require.NoError(t, err)

	call, err := ObjectCall(u, sig, callee, nil, nil)
	require.NoError(t, err)

	data := call.Data.(ObjectCallData)
	require.NotNil(t, data.Kwargs)
	assert.Equal(t, NodeConst, data.Kwargs.Kind)
	assert.Equal(t, in.Pointer(b.Object), data.Kwargs.ResultType())
}
