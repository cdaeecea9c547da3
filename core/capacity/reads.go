package capacity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dynamo-capacity/core/billing"
	"dynamo-capacity/core/design"
	"dynamo-capacity/core/validate"
)

// getItemPattern is a single-item point read.
type getItemPattern struct {
	common
	stronglyConsistent bool
}

func newGetItem(in PatternInput) (AccessPattern, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return getItemPattern{common: cm, stronglyConsistent: in.StronglyConsistent}, nil
}

func (p getItemPattern) CalculateRCUs() decimal.Decimal {
	return readUnits(p.itemSizeBytes, p.stronglyConsistent)
}

func (p getItemPattern) CalculateWCUs() decimal.Decimal { return decimal.Zero }

func (p getItemPattern) gsiRefs() []string { return nil }

func (p getItemPattern) withGSIs([]design.GSI) AccessPattern { return p }

// rangeRead is the shared shape of Query and Scan: a multi-item read that
// may target a GSI instead of the base table.
type rangeRead struct {
	common
	itemCount          int
	gsiName            string
	stronglyConsistent bool
}

func newRangeRead(in PatternInput) (rangeRead, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	c.RequireGreaterThan("item_count", in.ItemCount, 0)
	if in.GSIName != "" && in.StronglyConsistent {
		c.AddAt("strongly_consistent", fmt.Sprintf(
			"GSI reads cannot be strongly consistent. gsi: %q", in.GSIName))
	}
	if err := c.Err(); err != nil {
		return rangeRead{}, err
	}
	return rangeRead{
		common:             cm,
		itemCount:          in.ItemCount,
		gsiName:            in.GSIName,
		stronglyConsistent: in.StronglyConsistent,
	}, nil
}

func (p rangeRead) CalculateRCUs() decimal.Decimal {
	perItem := readUnits(p.itemSizeBytes, p.stronglyConsistent)
	return perItem.Mul(decimal.NewFromInt(int64(p.itemCount)))
}

func (p rangeRead) CalculateWCUs() decimal.Decimal { return decimal.Zero }

func (p rangeRead) gsiRefs() []string {
	if p.gsiName == "" {
		return nil
	}
	return []string{p.gsiName}
}

// queryPattern reads a contiguous item range from a table or GSI.
type queryPattern struct{ rangeRead }

func newQuery(in PatternInput) (AccessPattern, error) {
	r, err := newRangeRead(in)
	if err != nil {
		return nil, err
	}
	return queryPattern{r}, nil
}

func (p queryPattern) withGSIs([]design.GSI) AccessPattern { return p }

// scanPattern reads every item in a table or GSI segment. It is billed
// identically to Query for the same item count and size.
type scanPattern struct{ rangeRead }

func newScan(in PatternInput) (AccessPattern, error) {
	r, err := newRangeRead(in)
	if err != nil {
		return nil, err
	}
	return scanPattern{r}, nil
}

func (p scanPattern) withGSIs([]design.GSI) AccessPattern { return p }

// batchGetPattern reads up to 100 items in one BatchGetItem request. Each
// item is billed as an independent read.
type batchGetPattern struct {
	common
	itemCount          int
	stronglyConsistent bool
}

func newBatchGet(in PatternInput) (AccessPattern, error) {
	c := validate.NewCollector()
	cm := validateCommon(c, in)
	c.RequireAtLeast("item_count", in.ItemCount, 1)
	c.RequireAtMost("item_count", in.ItemCount, billing.MaxBatchGetItems)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return batchGetPattern{common: cm, itemCount: in.ItemCount, stronglyConsistent: in.StronglyConsistent}, nil
}

func (p batchGetPattern) CalculateRCUs() decimal.Decimal {
	perItem := readUnits(p.itemSizeBytes, p.stronglyConsistent)
	return perItem.Mul(decimal.NewFromInt(int64(p.itemCount)))
}

func (p batchGetPattern) CalculateWCUs() decimal.Decimal { return decimal.Zero }

func (p batchGetPattern) gsiRefs() []string { return nil }

func (p batchGetPattern) withGSIs([]design.GSI) AccessPattern { return p }
