package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyCostIsUnitsTimesRateTimesHours(t *testing.T) {
	card := DefaultRateCard()
	cost := card.MonthlyCost(decimal.NewFromInt(100), decimal.NewFromInt(10), 0)

	// 100 RCUs * 0.00013 * 730 = 9.49; 10 WCUs * 0.00065 * 730 = 4.745
	assert.True(t, cost.RCUUSD.Equal(decimal.RequireFromString("9.49")), "got %s", cost.RCUUSD)
	assert.True(t, cost.WCUUSD.Equal(decimal.RequireFromString("4.745")), "got %s", cost.WCUUSD)
	assert.True(t, cost.StorageUSD.IsZero())
	assert.True(t, cost.TotalUSD.Equal(decimal.RequireFromString("14.235")), "got %s", cost.TotalUSD)
	assert.Equal(t, "USD", cost.Currency)
}

func TestStorageCost(t *testing.T) {
	card := DefaultRateCard()
	cost := card.MonthlyCost(decimal.Zero, decimal.Zero, 40)
	assert.True(t, cost.StorageUSD.Equal(decimal.RequireFromString("10")), "got %s", cost.StorageUSD)
}

func TestWithOverrides(t *testing.T) {
	card, err := DefaultRateCard().WithOverrides("0.0002", "", "0.3")
	require.NoError(t, err)
	assert.True(t, card.RCUHourlyUSD.Equal(decimal.RequireFromString("0.0002")))
	assert.True(t, card.WCUHourlyUSD.Equal(decimal.RequireFromString("0.00065")))
	assert.True(t, card.StorageGBMonthUSD.Equal(decimal.RequireFromString("0.3")))
}

func TestWithOverridesRejectsMalformedRate(t *testing.T) {
	_, err := DefaultRateCard().WithOverrides("not-a-number", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rcu_hourly_usd")
}
