package tir

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"smelt/internal/types"
)

func TestDumpGolden(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	u := NewUnit(in)

	sig := in.Func(b.Int64, []types.TypeID{b.Int32, b.Float64})
	c1, err := Const(u, 7, b.Int32)
	require.NoError(t, err)
	c2, err := Const(u, 2.5, b.Float64)
	require.NoError(t, err)
	call, err := NativeCall(u, sig, nil, []*Node{c1, c2})
	require.NoError(t, err)

	tmp := Temp(u, b.Int64)
	store := tmp.Store()
	load := tmp.Load()

	objConst, err := Const(u, ModuleValue{Name: "numpy"}, types.NoTypeID)
	require.NoError(t, err)
	objTemp := ObjectTemp(u, objConst)

	var sb strings.Builder
	Dump(&sb, in, call)
	Dump(&sb, in, tmp)
	Dump(&sb, in, store)
	Dump(&sb, in, load)
	Dump(&sb, in, objTemp)

	g := goldie.New(t)
	g.Assert(t, "dump", []byte(sb.String()))
}

func TestDumpStringMatchesDump(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	u := NewUnit(in)

	n, err := Const(u, 42, b.Int64)
	require.NoError(t, err)

	var sb strings.Builder
	Dump(&sb, in, n)
	require.Equal(t, sb.String(), DumpString(in, n))
}
