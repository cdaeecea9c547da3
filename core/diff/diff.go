// Package diff provides pattern-level plan diffing.
// Compares two capacity reports by pattern name so a schema change can be
// reviewed as a set of per-pattern capacity deltas.
package diff

import (
	"sort"

	"github.com/shopspring/decimal"

	"dynamo-capacity/core/output"
)

// PatternChange is the capacity delta for one pattern present in both plans.
type PatternChange struct {
	// PatternName identifies the pattern.
	PatternName string `json:"pattern_name"`

	// RCUsPerSecondBefore / After are the steady-state read capacities.
	RCUsPerSecondBefore decimal.Decimal `json:"rcus_per_second_before"`
	RCUsPerSecondAfter  decimal.Decimal `json:"rcus_per_second_after"`

	// WCUsPerSecondBefore / After are the steady-state write capacities.
	WCUsPerSecondBefore decimal.Decimal `json:"wcus_per_second_before"`
	WCUsPerSecondAfter  decimal.Decimal `json:"wcus_per_second_after"`
}

// Result is the complete diff between two capacity reports.
type Result struct {
	// Added lists pattern names present only in the new report.
	Added []string `json:"added,omitempty"`

	// Removed lists pattern names present only in the old report.
	Removed []string `json:"removed,omitempty"`

	// Changed lists patterns whose capacity consumption moved.
	Changed []PatternChange `json:"changed,omitempty"`

	// RCUDeltaPerSecond is the total read-capacity delta.
	RCUDeltaPerSecond decimal.Decimal `json:"rcu_delta_per_second"`

	// WCUDeltaPerSecond is the total write-capacity delta.
	WCUDeltaPerSecond decimal.Decimal `json:"wcu_delta_per_second"`

	// StorageDeltaGB is the total storage delta.
	StorageDeltaGB float64 `json:"storage_delta_gb"`
}

// Empty reports whether the two plans are capacity-equivalent.
func (r *Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0 &&
		r.StorageDeltaGB == 0
}

// Compare diffs two reports. Patterns are matched by name; order within the
// result is name-sorted for stable output.
func Compare(before, after *output.PlanReport) *Result {
	result := &Result{
		RCUDeltaPerSecond: after.TotalRCUsPerSecond.Sub(before.TotalRCUsPerSecond),
		WCUDeltaPerSecond: after.TotalWCUsPerSecond.Sub(before.TotalWCUsPerSecond),
		StorageDeltaGB:    after.TotalStorageGB - before.TotalStorageGB,
	}

	beforeByName := make(map[string]output.PatternCost, len(before.Patterns))
	for _, p := range before.Patterns {
		beforeByName[p.PatternName] = p
	}
	afterByName := make(map[string]output.PatternCost, len(after.Patterns))
	for _, p := range after.Patterns {
		afterByName[p.PatternName] = p
	}

	for name, a := range afterByName {
		b, existed := beforeByName[name]
		if !existed {
			result.Added = append(result.Added, name)
			continue
		}
		if !a.RCUsPerSecond.Equal(b.RCUsPerSecond) || !a.WCUsPerSecond.Equal(b.WCUsPerSecond) {
			result.Changed = append(result.Changed, PatternChange{
				PatternName:         name,
				RCUsPerSecondBefore: b.RCUsPerSecond,
				RCUsPerSecondAfter:  a.RCUsPerSecond,
				WCUsPerSecondBefore: b.WCUsPerSecond,
				WCUsPerSecondAfter:  a.WCUsPerSecond,
			})
		}
	}
	for name := range beforeByName {
		if _, exists := afterByName[name]; !exists {
			result.Removed = append(result.Removed, name)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	sort.Slice(result.Changed, func(i, j int) bool {
		return result.Changed[i].PatternName < result.Changed[j].PatternName
	})

	return result
}
