package designfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynamo-capacity/core/output"
	"dynamo-capacity/internal/errors"
)

const yamlDesign = `
table_list:
  - name: users
    item_count: 1000
    item_size_bytes: 4096
    gsis:
      - name: email-index
        item_count: 1000
        item_size_bytes: 1500
access_pattern_list:
  - operation: GetItem
    pattern_name: lookup-user
    description: Fetch a user profile by id
    table_name: users
    requests_per_second: 100
    item_size_bytes: 1024
  - operation: Query
    pattern_name: find-by-email
    description: Look up users by email address
    table_name: users
    requests_per_second: 20
    item_size_bytes: 1024
    item_count: 1
    gsi_name: email-index
`

const jsonDesign = `{
  "table_list": [
    {
      "name": "users",
      "item_count": 1000,
      "item_size_bytes": 4096,
      "gsis": [
        {"name": "email-index", "item_count": 1000, "item_size_bytes": 1500}
      ]
    }
  ],
  "access_pattern_list": [
    {
      "operation": "GetItem",
      "pattern_name": "lookup-user",
      "description": "Fetch a user profile by id",
      "table_name": "users",
      "requests_per_second": 100,
      "item_size_bytes": 1024
    },
    {
      "operation": "Query",
      "pattern_name": "find-by-email",
      "description": "Look up users by email address",
      "table_name": "users",
      "requests_per_second": 20,
      "item_size_bytes": 1024,
      "item_count": 1,
      "gsi_name": "email-index"
    }
  ]
}`

const hclDesign = `
table "users" {
  item_count      = 1000
  item_size_bytes = 4096

  gsi "email-index" {
    item_count      = 1000
    item_size_bytes = 1500
  }
}

access_pattern "lookup-user" {
  operation           = "GetItem"
  description         = "Fetch a user profile by id"
  table_name          = "users"
  requests_per_second = 100
  item_size_bytes     = 1024
}

access_pattern "find-by-email" {
  operation           = "Query"
  description         = "Look up users by email address"
  table_name          = "users"
  requests_per_second = 20
  item_size_bytes     = 1024
  item_count          = 1
  gsi_name            = "email-index"
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFormatsAreEquivalent(t *testing.T) {
	files := map[string]string{
		"design.yaml": yamlDesign,
		"design.json": jsonDesign,
		"design.hcl":  hclDesign,
	}

	var reports []*output.PlanReport
	for name, content := range files {
		plan, err := Load(writeFile(t, name, content))
		require.NoError(t, err, "loading %s", name)
		reports = append(reports, output.BuildReport(plan))
	}

	first := reports[0]
	for _, report := range reports[1:] {
		assert.True(t, first.TotalRCUsPerSecond.Equal(report.TotalRCUsPerSecond))
		assert.True(t, first.TotalWCUsPerSecond.Equal(report.TotalWCUsPerSecond))
		assert.Equal(t, first.TotalStorageGB, report.TotalStorageGB)
		assert.Len(t, report.Patterns, len(first.Patterns))
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "design.toml", ""))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestBuildPrefixesEntityViolations(t *testing.T) {
	doc := &Document{
		TableList: []TableDoc{
			{Name: "users", ItemCount: 0, ItemSizeBytes: 4096},
		},
		AccessPatternList: []PatternDoc{
			{
				Operation:         "BatchGetItem",
				PatternName:       "bulk-read",
				Description:       "Read a page of users",
				TableName:         "users",
				RequestsPerSecond: 5,
				ItemSizeBytes:     1024,
				ItemCount:         101,
			},
		},
	}

	_, err := Build(doc)
	require.Error(t, err)
	require.True(t, errors.IsType(err, errors.TypeValidation))
	msg := err.(interface{ Unwrap() error }).Unwrap().Error()
	assert.Contains(t, msg, "table_list[0].item_count: must be greater than 0. item_count: 0")
	assert.Contains(t, msg, "access_pattern_list[0].item_count: must be at most 100. item_count: 101")
}

func TestBuildPrefixesGSIViolations(t *testing.T) {
	doc := &Document{
		TableList: []TableDoc{
			{
				Name: "users", ItemCount: 10, ItemSizeBytes: 4096,
				GSIs: []GSIDoc{{Name: "", ItemCount: 10, ItemSizeBytes: 100}},
			},
		},
		AccessPatternList: []PatternDoc{
			{
				Operation:         "GetItem",
				PatternName:       "lookup-user",
				Description:       "Fetch a user profile by id",
				TableName:         "users",
				RequestsPerSecond: 5,
				ItemSizeBytes:     1024,
			},
		},
	}

	_, err := Build(doc)
	require.Error(t, err)
	msg := err.(interface{ Unwrap() error }).Unwrap().Error()
	assert.Contains(t, msg, `table_list[0].gsis[0].name: cannot be empty. name: ""`)
}

func TestBuildSurfacesCrossEntityViolations(t *testing.T) {
	doc := &Document{
		TableList: []TableDoc{
			{
				Name: "users", ItemCount: 10, ItemSizeBytes: 4096,
				GSIs: []GSIDoc{{Name: "email-index", ItemCount: 10, ItemSizeBytes: 1500}},
			},
		},
		AccessPatternList: []PatternDoc{
			{
				Operation:         "Query",
				PatternName:       "find-by-email",
				Description:       "Look up users by email address",
				TableName:         "users",
				RequestsPerSecond: 5,
				ItemSizeBytes:     2000,
				ItemCount:         1,
				GSIName:           "email-index",
			},
		},
	}

	_, err := Build(doc)
	require.Error(t, err)
	msg := err.(interface{ Unwrap() error }).Unwrap().Error()
	assert.Contains(t, msg,
		`item_size_bytes cannot exceed GSI item_size_bytes. access_pattern_size: 2000, gsi_size: 1500, gsi: "email-index"`)
}

func TestBuildEmptyPatternList(t *testing.T) {
	doc := &Document{
		TableList: []TableDoc{{Name: "users", ItemCount: 10, ItemSizeBytes: 1024}},
	}

	_, err := Build(doc)
	require.Error(t, err)
	msg := err.(interface{ Unwrap() error }).Unwrap().Error()
	assert.Equal(t, "access_pattern_list: access_pattern_list must contain at least one access pattern", msg)
}
