// Package capacity models the access patterns exercised against a table
// design and predicts the read/write capacity units each one consumes.
// The ten operation kinds form a closed set: every variant carries its own
// unit-calculation method, and the construction factory is the only way to
// obtain one.
package capacity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dynamo-capacity/core/billing"
	"dynamo-capacity/core/design"
	"dynamo-capacity/core/validate"
)

// Operation tags an access pattern with the DynamoDB operation it performs.
// The string values are fixed; upstream callers dispatch on them.
type Operation string

const (
	OpGetItem            Operation = "GetItem"
	OpQuery              Operation = "Query"
	OpScan               Operation = "Scan"
	OpBatchGetItem       Operation = "BatchGetItem"
	OpBatchWriteItem     Operation = "BatchWriteItem"
	OpPutItem            Operation = "PutItem"
	OpUpdateItem         Operation = "UpdateItem"
	OpDeleteItem         Operation = "DeleteItem"
	OpTransactGetItems   Operation = "TransactGetItems"
	OpTransactWriteItems Operation = "TransactWriteItems"
)

// AccessPattern is one declared operation against one table, with enough
// sizing information to predict its capacity-unit cost. Implementations are
// immutable; the calculation methods are pure and safe for concurrent use.
//
// CalculateWCUs includes propagated GSI writes only on patterns obtained
// from a Plan, where the GSI references have been resolved.
type AccessPattern interface {
	// Operation returns the operation tag.
	Operation() Operation

	// PatternName returns the pattern's declared name.
	PatternName() string

	// Description returns the pattern's declared description.
	Description() string

	// TableName returns the name of the table the pattern runs against.
	TableName() string

	// RequestsPerSecond returns the pattern's declared request rate.
	RequestsPerSecond() float64

	// ItemSizeBytes returns the size of the items the pattern touches.
	ItemSizeBytes() int

	// CalculateRCUs returns the read capacity units one request consumes.
	CalculateRCUs() decimal.Decimal

	// CalculateWCUs returns the write capacity units one request consumes,
	// including writes propagated to referenced GSIs.
	CalculateWCUs() decimal.Decimal

	// gsiRefs returns the GSI names the pattern references; the plan
	// builder resolves them against the pattern's table.
	gsiRefs() []string

	// withGSIs returns a copy of the pattern bound to its resolved GSIs.
	withGSIs(gsis []design.GSI) AccessPattern
}

// PatternInput carries the external input structure for one access pattern.
// Operation selects the variant; the variant-specific fields it does not use
// are ignored.
type PatternInput struct {
	Operation          Operation
	PatternName        string
	Description        string
	TableName          string
	RequestsPerSecond  float64
	ItemSizeBytes      int
	ItemCount          int
	StronglyConsistent bool
	GSIName            string
	GSINames           []string
}

// NewAccessPattern validates the input and constructs the variant selected
// by its operation tag. All detectable field and variant-bound violations
// are returned together.
func NewAccessPattern(in PatternInput) (AccessPattern, error) {
	switch in.Operation {
	case OpGetItem:
		return newGetItem(in)
	case OpQuery:
		return newQuery(in)
	case OpScan:
		return newScan(in)
	case OpBatchGetItem:
		return newBatchGet(in)
	case OpBatchWriteItem:
		return newBatchWrite(in)
	case OpPutItem, OpUpdateItem, OpDeleteItem:
		return newSingleWrite(in)
	case OpTransactGetItems:
		return newTransactGet(in)
	case OpTransactWriteItems:
		return newTransactWrite(in)
	default:
		c := validate.NewCollector()
		c.AddAt("operation", fmt.Sprintf("unsupported operation. operation: %q", in.Operation))
		return nil, c.Err()
	}
}

// common holds the fields shared by every variant.
type common struct {
	operation         Operation
	patternName       string
	description       string
	tableName         string
	requestsPerSecond float64
	itemSizeBytes     int
}

func (c common) Operation() Operation       { return c.operation }
func (c common) PatternName() string        { return c.patternName }
func (c common) Description() string        { return c.description }
func (c common) TableName() string          { return c.tableName }
func (c common) RequestsPerSecond() float64 { return c.requestsPerSecond }
func (c common) ItemSizeBytes() int         { return c.itemSizeBytes }

func validateCommon(c *validate.Collector, in PatternInput) common {
	c.RequireNonEmpty("pattern_name", in.PatternName)
	c.RequireNonEmpty("description", in.Description)
	c.RequireNonEmpty("table_name", in.TableName)
	c.RequireGreaterThanFloat("requests_per_second", in.RequestsPerSecond, 0)
	c.RequireAtLeast("item_size_bytes", in.ItemSizeBytes, 1)
	c.RequireAtMost("item_size_bytes", in.ItemSizeBytes, billing.MaxItemSizeBytes)
	return common{
		operation:         in.Operation,
		patternName:       in.PatternName,
		description:       in.Description,
		tableName:         in.TableName,
		requestsPerSecond: in.RequestsPerSecond,
		itemSizeBytes:     in.ItemSizeBytes,
	}
}

// readUnits is the shared single-item read cost:
// ceil(size / ReadUnitSize) scaled by the consistency multiplier.
func readUnits(itemSizeBytes int, stronglyConsistent bool) decimal.Decimal {
	units := decimal.NewFromInt(billing.CeilUnits(itemSizeBytes, billing.ReadUnitSize))
	return units.Mul(billing.ConsistencyMultiplier(stronglyConsistent))
}

// writeUnits is the shared single-item write cost against the base table.
func writeUnits(itemSizeBytes int) decimal.Decimal {
	return decimal.NewFromInt(billing.CeilUnits(itemSizeBytes, billing.WriteUnitSize))
}

// gsiWriteUnits charges each resolved GSI for absorbing itemCount propagated
// writes, at the GSI's own declared item size. Transaction overhead never
// applies here; the provider bills replicated index writes at the standard
// rate even when the base-table write is transactional.
func gsiWriteUnits(gsis []design.GSI, itemCount int) decimal.Decimal {
	count := decimal.NewFromInt(int64(itemCount))
	total := decimal.Zero
	for _, g := range gsis {
		total = total.Add(decimal.NewFromInt(g.WriteUnitCost()).Mul(count))
	}
	return total
}
