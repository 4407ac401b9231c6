package tir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"smelt/internal/testkit"
	"smelt/internal/types"
)

func TestUnitsAreIndependentAcrossGoroutines(t *testing.T) {
	const units = 8
	const temps = 32

	results := make([][]string, units)
	var g errgroup.Group
	for i := 0; i < units; i++ {
		i := i
		g.Go(func() error {
			in := types.NewInterner()
			u := NewUnit(in)
			names := make([]string, temps)
			for j := range names {
				names[j] = Temp(u, in.Builtins().Int64).Var.Name
			}
			results[i] = names
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < units; i++ {
		assert.Equal(t, results[0], results[i], "unit %d diverged", i)
	}
}

func TestInternerInvariantsHoldAfterConstruction(t *testing.T) {
	u, b := newTestUnit(t)
	in := u.Types()

	arr, err := in.Array(b.Float64, 2, types.ContigC)
	require.NoError(t, err)
	_, err = in.CArray(b.Intp, 4)
	require.NoError(t, err)
	in.Pointer(arr)
	in.Iterator(b.Int32)
	in.Func(b.Int64, []types.TypeID{b.Int32, arr})
	in.ModuleAttr(in.Module("numpy"), "zeros")

	require.NoError(t, testkit.CheckInterner(in))
}

func TestSetClassifierReplacesDefault(t *testing.T) {
	u, b := newTestUnit(t)
	u.SetClassifier(func(in *types.Interner, _ any) (types.TypeID, error) {
		return in.Builtins().Int8, nil
	})
	n, err := Const(u, "anything", types.NoTypeID)
	require.NoError(t, err)
	assert.Equal(t, b.Int8, n.ResultType())

	u.SetClassifier(nil)
	n, err = Const(u, "anything", types.NoTypeID)
	require.NoError(t, err)
	assert.Equal(t, b.Int8, n.ResultType(), "nil classifier must not clear the current one")
}
