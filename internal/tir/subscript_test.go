package tir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smelt/internal/backend"
	"smelt/internal/testkit"
	"smelt/internal/types"
)

const (
	testDataAddr    = 0x1000
	testStridesAddr = 0x4000
)

func strideAccess(eb *testkit.EvalBuilder, strides []int64) ArrayAccess {
	return ArrayAccess{
		Data:     eb.Pointer(testDataAddr),
		Strides:  eb.Place(testStridesAddr, strides),
		Rank:     len(strides),
		Elem:     eb.IntType(64),
		Word:     eb.IntType(types.WordBits),
		WordBits: types.WordBits,
	}
}

func addrOf(t *testing.T, v backend.Value) int64 {
	t.Helper()
	p, ok := v.(*testkit.Ptr)
	require.True(t, ok, "expected pointer, got %T", v)
	return p.Addr
}

func TestElementPointerPairsLastIndexWithFirstDimension(t *testing.T) {
	eb := testkit.NewEvalBuilder()
	acc := strideAccess(eb, []int64{8, 4})

	row := eb.ConstInt(eb.IntType(64), 3)
	col := eb.ConstInt(eb.IntType(64), 5)
	addr, err := ElementPointer(eb, acc, row, col)
	require.NoError(t, err)

	// col pairs with the first table entry, row with the second:
	// 5*8 + 3*4 = 52.
	assert.Equal(t, int64(testDataAddr+52), addrOf(t, addr))
}

func TestElementPointerPartialIndexing(t *testing.T) {
	eb := testkit.NewEvalBuilder()
	acc := strideAccess(eb, []int64{16, 8, 4})

	idx := eb.ConstInt(eb.IntType(64), 2)
	addr, err := ElementPointer(eb, acc, idx)
	require.NoError(t, err)

	// A single index pairs with the first table entry; the unindexed
	// dimensions contribute nothing.
	assert.Equal(t, int64(testDataAddr+2*16), addrOf(t, addr))
}

func TestElementPointerNoIndices(t *testing.T) {
	eb := testkit.NewEvalBuilder()
	acc := strideAccess(eb, []int64{8, 4})

	addr, err := ElementPointer(eb, acc)
	require.NoError(t, err)
	assert.Equal(t, int64(testDataAddr), addrOf(t, addr))
}

func TestElementPointerRejectsExcessIndices(t *testing.T) {
	eb := testkit.NewEvalBuilder()
	acc := strideAccess(eb, []int64{8, 4})

	idx := func(v int64) backend.Value { return eb.ConstInt(eb.IntType(64), v) }
	_, err := ElementPointer(eb, acc, idx(1), idx(2), idx(3))

	var re *RankError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Rank)
	assert.Equal(t, 3, re.Indices)
}

func TestElementPointerWidensForWideIndices(t *testing.T) {
	eb := testkit.NewEvalBuilder()
	acc := strideAccess(eb, []int64{8, 4})

	// A 128-bit index widens the running offset; the narrow index that
	// follows must not shrink it back.
	wide := eb.ConstInt(eb.IntType(128), 5)
	narrow := eb.ConstInt(eb.IntType(32), 3)
	addr, err := ElementPointer(eb, acc, narrow, wide)
	require.NoError(t, err)

	assert.Equal(t, int64(testDataAddr+5*8+3*4), addrOf(t, addr))
}

func TestDataPointerWrapsArrayNode(t *testing.T) {
	u, b := newTestUnit(t)
	arrType, err := u.Types().Array(b.Float64, 2, types.ContigC)
	require.NoError(t, err)
	arr := Temp(u, arrType)

	dp := DataPointer(arr)
	assert.Equal(t, NodeDataPointer, dp.Kind)
	assert.Equal(t, arrType, dp.ResultType())
	assert.Same(t, arr, dp.Data.(DataPointerData).Array)
}
