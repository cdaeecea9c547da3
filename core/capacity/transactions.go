package capacity

import (
	"github.com/shopspring/decimal"

	"dynamo-capacity/core/billing"
	"dynamo-capacity/core/design"
	"dynamo-capacity/core/validate"
)

// transactGetPattern reads up to 100 items atomically. Transactional reads
// have no consistency flag; every item costs double the strongly consistent
// rate's byte units.
type transactGetPattern struct {
	common
	itemCount int
}

func newTransactGet(in PatternInput) (AccessPattern, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	c.RequireAtLeast("item_count", in.ItemCount, 1)
	c.RequireAtMost("item_count", in.ItemCount, billing.MaxTransactItems)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return transactGetPattern{common: cm, itemCount: in.ItemCount}, nil
}

func (p transactGetPattern) CalculateRCUs() decimal.Decimal {
	perItem := decimal.NewFromInt(billing.CeilUnits(p.itemSizeBytes, billing.ReadUnitSize))
	return billing.TransactionOverhead.Mul(perItem).Mul(decimal.NewFromInt(int64(p.itemCount)))
}

func (p transactGetPattern) CalculateWCUs() decimal.Decimal { return decimal.Zero }

func (p transactGetPattern) gsiRefs() []string { return nil }

func (p transactGetPattern) withGSIs([]design.GSI) AccessPattern { return p }

// transactWritePattern writes up to 100 items atomically. The 2x transaction
// overhead applies to the base-table writes only; propagated GSI writes are
// billed at the standard rate.
type transactWritePattern struct {
	common
	itemCount int
	gsiNames  []string
	gsis      []design.GSI
}

func newTransactWrite(in PatternInput) (AccessPattern, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	c.RequireAtLeast("item_count", in.ItemCount, 1)
	c.RequireAtMost("item_count", in.ItemCount, billing.MaxTransactItems)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return transactWritePattern{common: cm, itemCount: in.ItemCount, gsiNames: in.GSINames}, nil
}

func (p transactWritePattern) CalculateRCUs() decimal.Decimal { return decimal.Zero }

func (p transactWritePattern) CalculateWCUs() decimal.Decimal {
	base := billing.TransactionOverhead.
		Mul(writeUnits(p.itemSizeBytes)).
		Mul(decimal.NewFromInt(int64(p.itemCount)))
	return base.Add(gsiWriteUnits(p.gsis, p.itemCount))
}

func (p transactWritePattern) gsiRefs() []string { return p.gsiNames }

func (p transactWritePattern) withGSIs(gsis []design.GSI) AccessPattern {
	p.gsis = gsis
	return p
}
