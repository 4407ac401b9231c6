package tir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smelt/internal/types"
)

func TestArrayAttrTypes(t *testing.T) {
	u, b := newTestUnit(t)
	in := u.Types()
	arrType, err := in.Array(b.Float64, 3, types.ContigNone)
	require.NoError(t, err)
	arr := Temp(u, arrType)

	ndim, err := ArrayAttr(u, arr, "ndim")
	require.NoError(t, err)
	assert.Equal(t, NodeArrayAttr, ndim.Kind)
	assert.Equal(t, b.Int32, ndim.ResultType())

	shape, err := ArrayAttr(u, arr, "shape")
	require.NoError(t, err)
	assert.Equal(t, NodeShapeAttr, shape.Kind)
	wantCArr, err := in.CArray(b.Intp, 3)
	require.NoError(t, err)
	assert.Equal(t, wantCArr, shape.ResultType())

	strides, err := ArrayAttr(u, arr, "strides")
	require.NoError(t, err)
	assert.Equal(t, NodeArrayAttr, strides.Kind)
	assert.Equal(t, wantCArr, strides.ResultType())

	data, err := ArrayAttr(u, arr, "data")
	require.NoError(t, err)
	assert.Equal(t, in.Pointer(b.Float64), data.ResultType())
}

func TestShapeAttrIsTheShapeAccess(t *testing.T) {
	u, b := newTestUnit(t)
	arrType, err := u.Types().Array(b.Int32, 2, types.ContigNone)
	require.NoError(t, err)
	arr := Temp(u, arrType)

	shape, err := ShapeAttr(u, arr)
	require.NoError(t, err)
	assert.Equal(t, NodeShapeAttr, shape.Kind)
	assert.Equal(t, "shape", shape.Data.(ArrayAttrData).Attr)
}

func TestArrayAttrRejectsUnknownNames(t *testing.T) {
	u, b := newTestUnit(t)
	arrType, err := u.Types().Array(b.Int32, 2, types.ContigNone)
	require.NoError(t, err)
	arr := Temp(u, arrType)

	_, err = ArrayAttr(u, arr, "itemsize")
	var ae *AttrError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "itemsize", ae.Attr)
	assert.Equal(t, arrType, ae.Array)
}

func TestArrayAttrRejectsNonArrays(t *testing.T) {
	u, b := newTestUnit(t)
	scalar := Temp(u, b.Int64)

	_, err := ArrayAttr(u, scalar, "ndim")
	var ae *AttrError
	require.ErrorAs(t, err, &ae)
}
