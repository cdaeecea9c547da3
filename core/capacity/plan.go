package capacity

import (
	"fmt"

	"dynamo-capacity/core/design"
	"dynamo-capacity/core/validate"
)

// Plan is the validated aggregate of a table design and the access patterns
// exercised against it. Every referential and size invariant is checked at
// construction; a Plan that exists is fully valid, immutable, and safe for
// concurrent calculation calls.
type Plan struct {
	patterns []AccessPattern
	tables   []design.Table
}

// NewPlan cross-validates already-constructed patterns and tables and binds
// each pattern to its resolved GSIs. All violations across all patterns are
// collected before failing. For each pattern, checks run in a fixed order:
// table resolution, GSI resolution, table size comparison, GSI size
// comparison.
func NewPlan(patterns []AccessPattern, tables []design.Table) (*Plan, error) {
	c := validate.NewCollector()

	if len(patterns) == 0 {
		c.Field("access_pattern_list").Add("access_pattern_list must contain at least one access pattern")
	}

	tableByName := make(map[string]design.Table, len(tables))
	tableList := c.Field("table_list")
	for i, t := range tables {
		if _, dup := tableByName[t.Name()]; dup {
			tableList.Index(i).AddAt("name", fmt.Sprintf("duplicate table name. table: %q", t.Name()))
			continue
		}
		tableByName[t.Name()] = t
	}

	patternList := c.Field("access_pattern_list")
	bound := make([]AccessPattern, 0, len(patterns))
	for i, p := range patterns {
		pc := patternList.Index(i)

		table, ok := tableByName[p.TableName()]
		if !ok {
			pc.Add(fmt.Sprintf("table does not exist. table: %q", p.TableName()))
			bound = append(bound, p)
			continue
		}

		resolved := make([]design.GSI, 0, len(p.gsiRefs()))
		for _, name := range p.gsiRefs() {
			gsi, ok := table.GSI(name)
			if !ok {
				pc.Add(fmt.Sprintf("GSI does not exist. gsi: %q, table: %q", name, table.Name()))
				continue
			}
			resolved = append(resolved, gsi)
		}

		if p.ItemSizeBytes() > table.ItemSizeBytes() {
			pc.Add(fmt.Sprintf(
				"item_size_bytes cannot exceed table item_size_bytes. access_pattern_size: %d, table_size: %d, table: %q",
				p.ItemSizeBytes(), table.ItemSizeBytes(), table.Name()))
		}
		for _, gsi := range resolved {
			if p.ItemSizeBytes() > gsi.ItemSizeBytes() {
				pc.Add(fmt.Sprintf(
					"item_size_bytes cannot exceed GSI item_size_bytes. access_pattern_size: %d, gsi_size: %d, gsi: %q",
					p.ItemSizeBytes(), gsi.ItemSizeBytes(), gsi.Name()))
			}
		}

		bound = append(bound, p.withGSIs(resolved))
	}

	if err := c.Err(); err != nil {
		return nil, err
	}

	owned := make([]design.Table, len(tables))
	copy(owned, tables)
	return &Plan{patterns: bound, tables: owned}, nil
}

// AccessPatterns returns the plan's patterns, bound to their resolved GSIs.
func (p *Plan) AccessPatterns() []AccessPattern {
	out := make([]AccessPattern, len(p.patterns))
	copy(out, p.patterns)
	return out
}

// Tables returns the plan's tables.
func (p *Plan) Tables() []design.Table {
	out := make([]design.Table, len(p.tables))
	copy(out, p.tables)
	return out
}

// Table looks up a table by name.
func (p *Plan) Table(name string) (design.Table, bool) {
	for _, t := range p.tables {
		if t.Name() == name {
			return t, true
		}
	}
	return design.Table{}, false
}
