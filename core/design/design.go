// Package design models a proposed DynamoDB table design: base tables and
// their global secondary indexes, with the structural limits the provider
// enforces. Entities are immutable once constructed; construction collects
// every field violation instead of stopping at the first.
package design

import (
	"fmt"

	"dynamo-capacity/core/billing"
	"dynamo-capacity/core/validate"
)

// GSI describes a global secondary index: a separately billed projection of
// the base table with its own item size and count.
type GSI struct {
	name          string
	itemCount     int
	itemSizeBytes int
}

// NewGSI validates and constructs a GSI descriptor.
func NewGSI(name string, itemCount, itemSizeBytes int) (GSI, error) {
	c := validate.NewCollector()
	validateGSI(c, name, itemCount, itemSizeBytes)
	if err := c.Err(); err != nil {
		return GSI{}, err
	}
	return GSI{name: name, itemCount: itemCount, itemSizeBytes: itemSizeBytes}, nil
}

// Name returns the index name.
func (g GSI) Name() string { return g.name }

// ItemCount returns the projected number of items in the index.
func (g GSI) ItemCount() int { return g.itemCount }

// ItemSizeBytes returns the projected item size in the index.
func (g GSI) ItemSizeBytes() int { return g.itemSizeBytes }

// StorageGB returns the index's billable storage footprint.
func (g GSI) StorageGB() float64 {
	return billing.StorageGB(g.itemCount, g.itemSizeBytes)
}

// WriteUnitCost returns the write units one propagated item write into this
// index consumes, based on the index's own declared item size.
func (g GSI) WriteUnitCost() int64 {
	return billing.WriteUnitCost(g.itemSizeBytes)
}

// Table describes a base table and its secondary indexes.
type Table struct {
	name          string
	itemCount     int
	itemSizeBytes int
	gsis          []GSI
}

// NewTable validates and constructs a table descriptor. GSIs must already be
// individually valid; NewTable additionally enforces the per-table limits:
// at most 20 indexes, unique index names, and no index item size larger than
// the table's.
func NewTable(name string, itemCount, itemSizeBytes int, gsis []GSI) (Table, error) {
	c := validate.NewCollector()
	c.RequireNonEmpty("name", name)
	c.RequireGreaterThan("item_count", itemCount, 0)
	c.RequireAtLeast("item_size_bytes", itemSizeBytes, 1)
	c.RequireAtMost("item_size_bytes", itemSizeBytes, billing.MaxItemSizeBytes)
	c.RequireAtMost("gsis", len(gsis), billing.MaxGSIsPerTable)

	seen := make(map[string]struct{}, len(gsis))
	for i, gsi := range gsis {
		gc := c.Field("gsis").Index(i)
		validateGSI(gc, gsi.name, gsi.itemCount, gsi.itemSizeBytes)
		if _, dup := seen[gsi.name]; dup {
			gc.AddAt("name", fmt.Sprintf("duplicate GSI name. gsi: %q", gsi.name))
		}
		seen[gsi.name] = struct{}{}
		if gsi.itemSizeBytes > itemSizeBytes {
			gc.AddAt("item_size_bytes", fmt.Sprintf(
				"item_size_bytes cannot exceed table item_size_bytes. gsi_size: %d, table_size: %d, gsi: %q",
				gsi.itemSizeBytes, itemSizeBytes, gsi.name))
		}
	}

	if err := c.Err(); err != nil {
		return Table{}, err
	}

	owned := make([]GSI, len(gsis))
	copy(owned, gsis)
	return Table{name: name, itemCount: itemCount, itemSizeBytes: itemSizeBytes, gsis: owned}, nil
}

// Name returns the table name.
func (t Table) Name() string { return t.name }

// ItemCount returns the projected number of items in the table.
func (t Table) ItemCount() int { return t.itemCount }

// ItemSizeBytes returns the average item size in the table.
func (t Table) ItemSizeBytes() int { return t.itemSizeBytes }

// GSIs returns a copy of the table's secondary indexes.
func (t Table) GSIs() []GSI {
	out := make([]GSI, len(t.gsis))
	copy(out, t.gsis)
	return out
}

// GSI looks up a secondary index by name.
func (t Table) GSI(name string) (GSI, bool) {
	for _, g := range t.gsis {
		if g.name == name {
			return g, true
		}
	}
	return GSI{}, false
}

// StorageGB returns the base table's billable storage footprint. Storage
// cost is insensitive to whether items live in the base table or an index,
// so the formula is shared with GSI.StorageGB.
func (t Table) StorageGB() float64 {
	return billing.StorageGB(t.itemCount, t.itemSizeBytes)
}

func validateGSI(c *validate.Collector, name string, itemCount, itemSizeBytes int) {
	c.RequireNonEmpty("name", name)
	c.RequireGreaterThan("item_count", itemCount, 0)
	c.RequireAtLeast("item_size_bytes", itemSizeBytes, 1)
	c.RequireAtMost("item_size_bytes", itemSizeBytes, billing.MaxItemSizeBytes)
}
