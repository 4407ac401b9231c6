package llvm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smelt/internal/foreign"
	"smelt/internal/types"
)

// Every supported descriptor pair must lower to a machine type and have a
// foreign representation; a pair accepted by one mapper and rejected by
// another would strand values at the boundary.
func TestDescriptorPairsLowerEverywhere(t *testing.T) {
	in := types.NewInterner()
	e := NewEmitter(in)

	pairs := []struct {
		letter byte
		size   int
	}{
		{'i', 1}, {'i', 2}, {'i', 4}, {'i', 8},
		{'u', 1}, {'u', 2}, {'u', 4}, {'u', 8},
		{'f', 4}, {'f', 8}, {'f', 16},
		{'b', 1},
		{'c', 8}, {'c', 16}, {'c', 32},
		{'O', 8},
	}
	for _, p := range pairs {
		id, err := in.DescriptorType(p.letter, p.size)
		require.NoError(t, err, "(%q, %d)", p.letter, p.size)

		_, err = e.MachineType(id)
		require.NoError(t, err, "machine type for (%q, %d)", p.letter, p.size)

		_, err = foreign.RepOf(in, id)
		require.NoError(t, err, "foreign rep for (%q, %d)", p.letter, p.size)
	}
}
