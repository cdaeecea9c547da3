package capacity

import (
	"github.com/shopspring/decimal"

	"dynamo-capacity/core/billing"
	"dynamo-capacity/core/design"
	"dynamo-capacity/core/validate"
)

// singleWritePattern covers PutItem, UpdateItem, and DeleteItem: one item
// write against the base table, propagated to any referenced GSIs.
type singleWritePattern struct {
	common
	gsiNames []string
	gsis     []design.GSI
}

func newSingleWrite(in PatternInput) (AccessPattern, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return singleWritePattern{common: cm, gsiNames: in.GSINames}, nil
}

func (p singleWritePattern) CalculateRCUs() decimal.Decimal { return decimal.Zero }

func (p singleWritePattern) CalculateWCUs() decimal.Decimal {
	return writeUnits(p.itemSizeBytes).Add(gsiWriteUnits(p.gsis, 1))
}

func (p singleWritePattern) gsiRefs() []string { return p.gsiNames }

func (p singleWritePattern) withGSIs(gsis []design.GSI) AccessPattern {
	p.gsis = gsis
	return p
}

// batchWritePattern writes up to 25 items in one BatchWriteItem request.
// Each item is billed as an independent write; GSI propagation is charged
// per item per index.
type batchWritePattern struct {
	common
	itemCount int
	gsiNames  []string
	gsis      []design.GSI
}

func newBatchWrite(in PatternInput) (AccessPattern, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	c.RequireAtLeast("item_count", in.ItemCount, 1)
	c.RequireAtMost("item_count", in.ItemCount, billing.MaxBatchWriteItems)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return batchWritePattern{common: cm, itemCount: in.ItemCount, gsiNames: in.GSINames}, nil
}

func (p batchWritePattern) CalculateRCUs() decimal.Decimal { return decimal.Zero }

func (p batchWritePattern) CalculateWCUs() decimal.Decimal {
	base := writeUnits(p.itemSizeBytes).Mul(decimal.NewFromInt(int64(p.itemCount)))
	return base.Add(gsiWriteUnits(p.gsis, p.itemCount))
}

func (p batchWritePattern) gsiRefs() []string { return p.gsiNames }

func (p batchWritePattern) withGSIs(gsis []design.GSI) AccessPattern {
	p.gsis = gsis
	return p
}
