// Package billing - Centralized DynamoDB billing math
// Entity and access-pattern code declares intent, not do math.
// All capacity-unit logic flows through these primitives.
package billing

import "github.com/shopspring/decimal"

// Provider-published unit sizes and structural limits.
const (
	// ReadUnitSize is the number of bytes one read capacity unit covers.
	ReadUnitSize = 4096

	// WriteUnitSize is the number of bytes one write capacity unit covers.
	WriteUnitSize = 1024

	// ItemOverheadBytes is the fixed per-item metadata overhead charged
	// against storage, identical for base tables and secondary indexes.
	ItemOverheadBytes = 100

	// MaxItemSizeBytes is the provider's item-size ceiling (400 KB).
	MaxItemSizeBytes = 409600

	// MaxGSIsPerTable is the maximum number of global secondary indexes.
	MaxGSIsPerTable = 20

	// MaxBatchGetItems is the BatchGetItem request ceiling.
	MaxBatchGetItems = 100

	// MaxBatchWriteItems is the BatchWriteItem request ceiling.
	MaxBatchWriteItems = 25

	// MaxTransactItems is the ceiling for TransactGetItems and
	// TransactWriteItems.
	MaxTransactItems = 100

	bytesPerGB = 1 << 30
)

var (
	// EventuallyConsistent halves the read cost. Held as an exact decimal
	// so strongly consistent reads cost exactly double, never approximately.
	EventuallyConsistent = decimal.New(5, -1) // 0.5

	// StronglyConsistent is the full-rate read multiplier.
	StronglyConsistent = decimal.New(1, 0)

	// TransactionOverhead is the fixed multiplier applied to reads and
	// writes performed inside an atomic transaction.
	TransactionOverhead = decimal.New(2, 0)
)

// ConsistencyMultiplier returns the read-cost multiplier for a consistency
// mode.
func ConsistencyMultiplier(stronglyConsistent bool) decimal.Decimal {
	if stronglyConsistent {
		return StronglyConsistent
	}
	return EventuallyConsistent
}

// CeilUnits returns the number of whole capacity units an item of the given
// size consumes, at the given unit size.
func CeilUnits(sizeBytes, unitSize int) int64 {
	return int64((sizeBytes + unitSize - 1) / unitSize)
}

// WriteUnitCost returns the write units a single item write consumes,
// bounded below by one unit.
func WriteUnitCost(sizeBytes int) int64 {
	units := CeilUnits(sizeBytes, WriteUnitSize)
	if units < 1 {
		return 1
	}
	return units
}

// StorageGB returns the billable storage footprint in GB for a collection of
// items, including the per-item metadata overhead. The formula is identical
// for base tables and secondary indexes.
func StorageGB(itemCount, itemSizeBytes int) float64 {
	return float64(itemCount) * float64(itemSizeBytes+ItemOverheadBytes) / bytesPerGB
}
