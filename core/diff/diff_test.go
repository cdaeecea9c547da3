package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynamo-capacity/core/capacity"
	"dynamo-capacity/core/design"
	"dynamo-capacity/core/output"
)

func reportFor(t *testing.T, queryItemCount int, patterns ...string) *output.PlanReport {
	t.Helper()
	users, err := design.NewTable("users", 1000, 4096, nil)
	require.NoError(t, err)

	var built []capacity.AccessPattern
	for _, name := range patterns {
		p, err := capacity.NewAccessPattern(capacity.PatternInput{
			Operation:         capacity.OpQuery,
			PatternName:       name,
			Description:       "List items for " + name,
			TableName:         "users",
			RequestsPerSecond: 10,
			ItemSizeBytes:     1024,
			ItemCount:         queryItemCount,
		})
		require.NoError(t, err)
		built = append(built, p)
	}

	plan, err := capacity.NewPlan(built, []design.Table{users})
	require.NoError(t, err)
	return output.BuildReport(plan)
}

func TestIdenticalReportsDiffEmpty(t *testing.T) {
	before := reportFor(t, 10, "list-orders")
	after := reportFor(t, 10, "list-orders")

	result := Compare(before, after)
	assert.True(t, result.Empty())
	assert.True(t, result.RCUDeltaPerSecond.IsZero())
	assert.True(t, result.WCUDeltaPerSecond.IsZero())
}

func TestChangedItemCountShowsOnThatPatternOnly(t *testing.T) {
	before := reportFor(t, 10, "list-orders", "list-users")
	after := reportFor(t, 20, "list-orders", "list-users")

	result := Compare(before, after)
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	require.Len(t, result.Changed, 2)
	assert.Equal(t, "list-orders", result.Changed[0].PatternName)
	assert.Equal(t, "list-users", result.Changed[1].PatternName)
	// 10 items * 0.5 RCU * 10 req/s = 50 before, 100 after, per pattern.
	assert.Equal(t, "50", result.Changed[0].RCUsPerSecondBefore.String())
	assert.Equal(t, "100", result.Changed[0].RCUsPerSecondAfter.String())
	assert.Equal(t, "100", result.RCUDeltaPerSecond.String())
}

func TestAddedAndRemovedPatterns(t *testing.T) {
	before := reportFor(t, 10, "list-orders")
	after := reportFor(t, 10, "list-users")

	result := Compare(before, after)
	assert.Equal(t, []string{"list-users"}, result.Added)
	assert.Equal(t, []string{"list-orders"}, result.Removed)
	assert.Empty(t, result.Changed)
	assert.False(t, result.Empty())
}
