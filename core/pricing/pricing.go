// Package pricing converts predicted capacity units into monthly USD costs
// using a static provisioned-capacity rate card. There is no network pricing
// lookup; rates can be overridden from configuration.
package pricing

import (
	"github.com/shopspring/decimal"

	"dynamo-capacity/internal/errors"
)

// HoursPerMonth is the billing convention for provisioned capacity.
const HoursPerMonth = 730

// Currency is the rate card currency; only USD rates ship built in.
const Currency = "USD"

// RateCard holds the unit prices for provisioned capacity and storage.
type RateCard struct {
	// RCUHourlyUSD is the price of one provisioned RCU for one hour.
	RCUHourlyUSD decimal.Decimal

	// WCUHourlyUSD is the price of one provisioned WCU for one hour.
	WCUHourlyUSD decimal.Decimal

	// StorageGBMonthUSD is the price of one GB stored for one month.
	StorageGBMonthUSD decimal.Decimal
}

// DefaultRateCard returns the us-east-1 provisioned-capacity list prices.
func DefaultRateCard() RateCard {
	return RateCard{
		RCUHourlyUSD:      decimal.RequireFromString("0.00013"),
		WCUHourlyUSD:      decimal.RequireFromString("0.00065"),
		StorageGBMonthUSD: decimal.RequireFromString("0.25"),
	}
}

// WithOverrides returns a copy of the rate card with any non-empty decimal
// string applied. Malformed overrides are configuration errors.
func (r RateCard) WithOverrides(rcuHourly, wcuHourly, storageGBMonth string) (RateCard, error) {
	overrides := []struct {
		value  string
		target *decimal.Decimal
		name   string
	}{
		{rcuHourly, &r.RCUHourlyUSD, "rcu_hourly_usd"},
		{wcuHourly, &r.WCUHourlyUSD, "wcu_hourly_usd"},
		{storageGBMonth, &r.StorageGBMonthUSD, "storage_gb_month_usd"},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		d, err := decimal.NewFromString(o.value)
		if err != nil {
			return RateCard{}, errors.Newf(errors.TypeConfig, "invalid rate override %s: %q", o.name, o.value)
		}
		*o.target = d
	}
	return r, nil
}

// MonthlyCost is the estimated monthly bill for a plan's provisioned
// capacity and storage.
type MonthlyCost struct {
	// RCUUSD is the monthly cost of the provisioned read capacity.
	RCUUSD decimal.Decimal `json:"rcu_usd"`

	// WCUUSD is the monthly cost of the provisioned write capacity.
	WCUUSD decimal.Decimal `json:"wcu_usd"`

	// StorageUSD is the monthly storage cost.
	StorageUSD decimal.Decimal `json:"storage_usd"`

	// TotalUSD is the sum of the components.
	TotalUSD decimal.Decimal `json:"total_usd"`

	// Currency is the cost currency.
	Currency string `json:"currency"`
}

// MonthlyCost prices a plan's steady-state consumption: the per-second unit
// totals are treated as the provisioned capacity, billed for a full month.
func (r RateCard) MonthlyCost(rcusPerSecond, wcusPerSecond decimal.Decimal, storageGB float64) MonthlyCost {
	hours := decimal.NewFromInt(HoursPerMonth)
	rcu := rcusPerSecond.Mul(r.RCUHourlyUSD).Mul(hours)
	wcu := wcusPerSecond.Mul(r.WCUHourlyUSD).Mul(hours)
	storage := decimal.NewFromFloat(storageGB).Mul(r.StorageGBMonthUSD)
	return MonthlyCost{
		RCUUSD:     rcu,
		WCUUSD:     wcu,
		StorageUSD: storage,
		TotalUSD:   rcu.Add(wcu).Add(storage),
		Currency:   Currency,
	}
}
