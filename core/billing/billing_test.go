package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilUnits(t *testing.T) {
	tests := []struct {
		size     int
		unitSize int
		want     int64
	}{
		{1, ReadUnitSize, 1},
		{4096, ReadUnitSize, 1},
		{4097, ReadUnitSize, 2},
		{8192, ReadUnitSize, 2},
		{1, WriteUnitSize, 1},
		{1024, WriteUnitSize, 1},
		{1025, WriteUnitSize, 2},
		{409600, WriteUnitSize, 400},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilUnits(tt.size, tt.unitSize), "CeilUnits(%d, %d)", tt.size, tt.unitSize)
	}
}

func TestWriteUnitCostBoundedBelowByOne(t *testing.T) {
	for _, size := range []int{1, 100, 1023, 1024} {
		assert.Equal(t, int64(1), WriteUnitCost(size), "size %d", size)
	}
}

func TestWriteUnitCostExactAtMultiples(t *testing.T) {
	for _, multiple := range []int{1, 2, 7, 400} {
		size := multiple * WriteUnitSize
		assert.Equal(t, int64(multiple), WriteUnitCost(size), "size %d", size)
		// One byte over a multiple rounds up.
		assert.Equal(t, int64(multiple+1), WriteUnitCost(size+1), "size %d", size+1)
	}
}

func TestConsistencyMultiplierExactHalving(t *testing.T) {
	strong := ConsistencyMultiplier(true)
	eventual := ConsistencyMultiplier(false)
	assert.True(t, strong.Equal(eventual.Mul(TransactionOverhead)),
		"strongly consistent must be exactly double eventually consistent")
	assert.True(t, eventual.Add(eventual).Equal(strong))
}

func TestStorageGBOverheadContribution(t *testing.T) {
	const count = 1_000_000
	const size = 1024
	withOverhead := StorageGB(count, size)
	raw := float64(count) * float64(size) / (1 << 30)
	overhead := float64(count) * float64(ItemOverheadBytes) / (1 << 30)
	assert.Equal(t, raw+overhead, withOverhead)
}
