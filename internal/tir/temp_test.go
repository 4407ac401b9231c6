package tir

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempNamesAreUniqueWithinUnit(t *testing.T) {
	u, b := newTestUnit(t)
	seen := make(map[string]bool, 16)
	for i := 0; i < 16; i++ {
		n := Temp(u, b.Int64)
		assert.Equal(t, fmt.Sprintf("__smelt_%d", i), n.Var.Name)
		require.False(t, seen[n.Var.Name], "duplicate name %s", n.Var.Name)
		seen[n.Var.Name] = true
	}
}

func TestResetRepeatsNameSequence(t *testing.T) {
	u, b := newTestUnit(t)
	first := make([]string, 4)
	for i := range first {
		first[i] = Temp(u, b.Int64).Var.Name
	}
	u.Reset()
	for i := range first {
		assert.Equal(t, first[i], Temp(u, b.Int64).Var.Name)
	}
}

func TestLoadStoreAreViewsOfTheTemporary(t *testing.T) {
	u, b := newTestUnit(t)
	tmp := Temp(u, b.Float64)

	ld := tmp.Load()
	st := tmp.Store()

	assert.Equal(t, NodeTempLoad, ld.Kind)
	assert.Equal(t, NodeTempStore, st.Kind)
	assert.Same(t, tmp.Var, ld.Var)
	assert.Same(t, tmp.Var, st.Var)
	assert.Same(t, tmp, ld.Data.(TempRefData).Temp)
	assert.Same(t, tmp, st.Data.(TempRefData).Temp)
	assert.Equal(t, b.Float64, ld.ResultType())
}

func TestObjectTempWrapsChildWithFreshName(t *testing.T) {
	u, b := newTestUnit(t)
	child, err := Const(u, 5, b.Object)
	require.NoError(t, err)

	ot := ObjectTemp(u, child)
	assert.Equal(t, NodeObjectTemp, ot.Kind)
	assert.Equal(t, b.Object, ot.ResultType())
	assert.NotEmpty(t, ot.Var.Name)
	assert.Same(t, child, ot.Data.(ObjectTempData).Child)
}
