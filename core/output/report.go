// Package output renders capacity plans for human and machine consumption.
// The engine produces per-request unit costs; this package scales them by
// the declared request rates and formats the result.
package output

import (
	"github.com/shopspring/decimal"

	"dynamo-capacity/core/capacity"
	"dynamo-capacity/core/pricing"
)

// PatternCost is the rendered cost of one access pattern.
type PatternCost struct {
	// PatternName is the pattern's declared name.
	PatternName string `json:"pattern_name"`

	// Operation is the operation tag.
	Operation string `json:"operation"`

	// TableName is the table the pattern runs against.
	TableName string `json:"table_name"`

	// Description is the pattern's declared description.
	Description string `json:"description"`

	// RequestsPerSecond is the declared request rate.
	RequestsPerSecond float64 `json:"requests_per_second"`

	// RCUsPerRequest is the read cost of one request.
	RCUsPerRequest decimal.Decimal `json:"rcus_per_request"`

	// WCUsPerRequest is the write cost of one request, including GSI
	// propagation.
	WCUsPerRequest decimal.Decimal `json:"wcus_per_request"`

	// RCUsPerSecond is RCUsPerRequest scaled by the request rate.
	RCUsPerSecond decimal.Decimal `json:"rcus_per_second"`

	// WCUsPerSecond is WCUsPerRequest scaled by the request rate.
	WCUsPerSecond decimal.Decimal `json:"wcus_per_second"`
}

// StorageLine is the rendered storage footprint of one table or GSI.
type StorageLine struct {
	// TableName is the owning table.
	TableName string `json:"table_name"`

	// GSIName is set when the line describes a secondary index.
	GSIName string `json:"gsi_name,omitempty"`

	// ItemCount is the projected item count.
	ItemCount int `json:"item_count"`

	// ItemSizeBytes is the projected item size.
	ItemSizeBytes int `json:"item_size_bytes"`

	// StorageGB is the billable footprint, including per-item overhead.
	StorageGB float64 `json:"storage_gb"`
}

// PlanReport is the complete rendered estimate for one plan.
type PlanReport struct {
	// Patterns lists per-pattern costs in declaration order.
	Patterns []PatternCost `json:"patterns"`

	// Storage lists per-table and per-GSI footprints.
	Storage []StorageLine `json:"storage"`

	// TotalRCUsPerSecond is the summed steady-state read capacity.
	TotalRCUsPerSecond decimal.Decimal `json:"total_rcus_per_second"`

	// TotalWCUsPerSecond is the summed steady-state write capacity.
	TotalWCUsPerSecond decimal.Decimal `json:"total_wcus_per_second"`

	// TotalStorageGB is the summed storage footprint.
	TotalStorageGB float64 `json:"total_storage_gb"`

	// Pricing is the optional monthly cost estimate.
	Pricing *pricing.MonthlyCost `json:"pricing,omitempty"`
}

// BuildReport computes the report for a validated plan. It cannot fail: a
// plan that exists has already proven every invariant.
func BuildReport(plan *capacity.Plan) *PlanReport {
	report := &PlanReport{
		TotalRCUsPerSecond: decimal.Zero,
		TotalWCUsPerSecond: decimal.Zero,
	}

	for _, p := range plan.AccessPatterns() {
		rcus := p.CalculateRCUs()
		wcus := p.CalculateWCUs()
		rate := decimal.NewFromFloat(p.RequestsPerSecond())
		cost := PatternCost{
			PatternName:       p.PatternName(),
			Operation:         string(p.Operation()),
			TableName:         p.TableName(),
			Description:       p.Description(),
			RequestsPerSecond: p.RequestsPerSecond(),
			RCUsPerRequest:    rcus,
			WCUsPerRequest:    wcus,
			RCUsPerSecond:     rcus.Mul(rate),
			WCUsPerSecond:     wcus.Mul(rate),
		}
		report.Patterns = append(report.Patterns, cost)
		report.TotalRCUsPerSecond = report.TotalRCUsPerSecond.Add(cost.RCUsPerSecond)
		report.TotalWCUsPerSecond = report.TotalWCUsPerSecond.Add(cost.WCUsPerSecond)
	}

	for _, table := range plan.Tables() {
		report.Storage = append(report.Storage, StorageLine{
			TableName:     table.Name(),
			ItemCount:     table.ItemCount(),
			ItemSizeBytes: table.ItemSizeBytes(),
			StorageGB:     table.StorageGB(),
		})
		report.TotalStorageGB += table.StorageGB()
		for _, gsi := range table.GSIs() {
			report.Storage = append(report.Storage, StorageLine{
				TableName:     table.Name(),
				GSIName:       gsi.Name(),
				ItemCount:     gsi.ItemCount(),
				ItemSizeBytes: gsi.ItemSizeBytes(),
				StorageGB:     gsi.StorageGB(),
			})
			report.TotalStorageGB += gsi.StorageGB()
		}
	}

	return report
}

// WithPricing attaches a monthly cost estimate computed from the report's
// steady-state totals.
func (r *PlanReport) WithPricing(card pricing.RateCard) *PlanReport {
	cost := card.MonthlyCost(r.TotalRCUsPerSecond, r.TotalWCUsPerSecond, r.TotalStorageGB)
	r.Pricing = &cost
	return r
}
