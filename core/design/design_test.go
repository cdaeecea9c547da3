package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynamo-capacity/core/billing"
)

func mustGSI(t *testing.T, name string, itemCount, itemSizeBytes int) GSI {
	t.Helper()
	g, err := NewGSI(name, itemCount, itemSizeBytes)
	require.NoError(t, err)
	return g
}

func TestNewGSIRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name     string
		gsiName  string
		count    int
		size     int
		wantLine string
	}{
		{"empty name", "", 1, 1024, `name: cannot be empty. name: ""`},
		{"zero count", "email-index", 0, 1024, "item_count: must be greater than 0. item_count: 0"},
		{"zero size", "email-index", 1, 0, "item_size_bytes: must be at least 1. item_size_bytes: 0"},
		{"oversized item", "email-index", 1, 409601, "item_size_bytes: must be at most 409600. item_size_bytes: 409601"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGSI(tt.gsiName, tt.count, tt.size)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantLine)
		})
	}
}

func TestNewTableCollectsAllViolations(t *testing.T) {
	_, err := NewTable("", 0, 500000, nil)
	require.Error(t, err)
	lines := strings.Split(err.Error(), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, `name: cannot be empty. name: ""`, lines[0])
	assert.Equal(t, "item_count: must be greater than 0. item_count: 0", lines[1])
	assert.Equal(t, "item_size_bytes: must be at most 409600. item_size_bytes: 500000", lines[2])
}

func TestNewTableRejectsDuplicateGSINames(t *testing.T) {
	gsis := []GSI{
		mustGSI(t, "dup", 10, 512),
		mustGSI(t, "dup", 20, 256),
	}
	_, err := NewTable("users", 100, 1024, gsis)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `gsis[1].name: duplicate GSI name. gsi: "dup"`)
}

func TestNewTableRejectsGSILargerThanTable(t *testing.T) {
	gsis := []GSI{mustGSI(t, "email-index", 10, 2048)}
	_, err := NewTable("users", 100, 1024, gsis)
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		`gsis[0].item_size_bytes: item_size_bytes cannot exceed table item_size_bytes. gsi_size: 2048, table_size: 1024, gsi: "email-index"`)
}

func TestNewTableRejectsTooManyGSIs(t *testing.T) {
	gsis := make([]GSI, billing.MaxGSIsPerTable+1)
	for i := range gsis {
		gsis[i] = mustGSI(t, "gsi-"+strings.Repeat("x", i+1), 1, 64)
	}
	_, err := NewTable("users", 100, 1024, gsis)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gsis: must be at most 20. gsis: 21")
}

func TestNewTableAcceptsTwentyGSIs(t *testing.T) {
	gsis := make([]GSI, billing.MaxGSIsPerTable)
	for i := range gsis {
		gsis[i] = mustGSI(t, "gsi-"+strings.Repeat("x", i+1), 1, 64)
	}
	_, err := NewTable("users", 100, 1024, gsis)
	assert.NoError(t, err)
}

func TestStorageFormulaSharedBetweenTableAndGSI(t *testing.T) {
	table, err := NewTable("users", 5000, 2048, nil)
	require.NoError(t, err)
	gsi := mustGSI(t, "email-index", 5000, 2048)
	assert.Equal(t, table.StorageGB(), gsi.StorageGB())
}

func TestTableGSILookup(t *testing.T) {
	table, err := NewTable("users", 100, 4096, []GSI{mustGSI(t, "email-index", 50, 1500)})
	require.NoError(t, err)

	gsi, ok := table.GSI("email-index")
	require.True(t, ok)
	assert.Equal(t, 1500, gsi.ItemSizeBytes())

	_, ok = table.GSI("missing-index")
	assert.False(t, ok)
}

func TestGSIWriteUnitCost(t *testing.T) {
	gsi := mustGSI(t, "email-index", 10, 1500)
	assert.Equal(t, int64(2), gsi.WriteUnitCost())
}
