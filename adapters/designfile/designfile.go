// Package designfile loads table-design documents from disk and constructs
// validated capacity plans from them. YAML is the primary format; JSON and
// HCL documents describing the same structure are accepted by extension.
package designfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"dynamo-capacity/core/capacity"
	"dynamo-capacity/core/design"
	"dynamo-capacity/core/validate"
	"dynamo-capacity/internal/errors"
	"dynamo-capacity/internal/logging"
)

// Document is the on-disk design structure.
type Document struct {
	TableList         []TableDoc   `yaml:"table_list" json:"table_list"`
	AccessPatternList []PatternDoc `yaml:"access_pattern_list" json:"access_pattern_list"`
}

// TableDoc describes one table entry.
type TableDoc struct {
	Name          string   `yaml:"name" json:"name"`
	ItemCount     int      `yaml:"item_count" json:"item_count"`
	ItemSizeBytes int      `yaml:"item_size_bytes" json:"item_size_bytes"`
	GSIs          []GSIDoc `yaml:"gsis,omitempty" json:"gsis,omitempty"`
}

// GSIDoc describes one secondary-index entry.
type GSIDoc struct {
	Name          string `yaml:"name" json:"name"`
	ItemCount     int    `yaml:"item_count" json:"item_count"`
	ItemSizeBytes int    `yaml:"item_size_bytes" json:"item_size_bytes"`
}

// PatternDoc describes one access-pattern entry. Operation selects the
// variant; unused variant fields are simply omitted from the document.
type PatternDoc struct {
	Operation          string   `yaml:"operation" json:"operation"`
	PatternName        string   `yaml:"pattern_name" json:"pattern_name"`
	Description        string   `yaml:"description" json:"description"`
	TableName          string   `yaml:"table_name" json:"table_name"`
	RequestsPerSecond  float64  `yaml:"requests_per_second" json:"requests_per_second"`
	ItemSizeBytes      int      `yaml:"item_size_bytes" json:"item_size_bytes"`
	ItemCount          int      `yaml:"item_count,omitempty" json:"item_count,omitempty"`
	StronglyConsistent bool     `yaml:"strongly_consistent,omitempty" json:"strongly_consistent,omitempty"`
	GSIName            string   `yaml:"gsi_name,omitempty" json:"gsi_name,omitempty"`
	GSINames           []string `yaml:"gsi_names,omitempty" json:"gsi_names,omitempty"`
}

// Load reads a design file and constructs its plan. The format is chosen by
// extension: .yaml/.yml, .json, or .hcl.
func Load(path string) (*capacity.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read design file", err)
	}

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = DecodeYAML(data)
	case ".json":
		doc, err = DecodeJSON(data)
	case ".hcl":
		doc, err = DecodeHCL(path, data)
	default:
		return nil, errors.NotSupported("design file extension " + filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	logging.Debug("decoded design document",
		zap.String("path", path),
		zap.Int("tables", len(doc.TableList)),
		zap.Int("access_patterns", len(doc.AccessPatternList)))

	return Build(doc)
}

// Build constructs a validated plan from a decoded document. Violations from
// every table and pattern are collected and returned together, re-rooted
// under their document paths.
func Build(doc *Document) (*capacity.Plan, error) {
	var violations validate.Violations

	tables := make([]design.Table, 0, len(doc.TableList))
	for i, td := range doc.TableList {
		gsis := make([]design.GSI, 0, len(td.GSIs))
		gsisValid := true
		for j, gd := range td.GSIs {
			gsi, err := design.NewGSI(gd.Name, gd.ItemCount, gd.ItemSizeBytes)
			if err != nil {
				prefix := fieldIndex("table_list", i) + "." + fieldIndex("gsis", j)
				violations = append(violations, validate.Prefixed(prefix, err)...)
				gsisValid = false
				continue
			}
			gsis = append(gsis, gsi)
		}
		if !gsisValid {
			continue
		}
		table, err := design.NewTable(td.Name, td.ItemCount, td.ItemSizeBytes, gsis)
		if err != nil {
			violations = append(violations, validate.Prefixed(fieldIndex("table_list", i), err)...)
			continue
		}
		tables = append(tables, table)
	}

	patterns := make([]capacity.AccessPattern, 0, len(doc.AccessPatternList))
	for i, pd := range doc.AccessPatternList {
		pattern, err := capacity.NewAccessPattern(capacity.PatternInput{
			Operation:          capacity.Operation(pd.Operation),
			PatternName:        pd.PatternName,
			Description:        pd.Description,
			TableName:          pd.TableName,
			RequestsPerSecond:  pd.RequestsPerSecond,
			ItemSizeBytes:      pd.ItemSizeBytes,
			ItemCount:          pd.ItemCount,
			StronglyConsistent: pd.StronglyConsistent,
			GSIName:            pd.GSIName,
			GSINames:           pd.GSINames,
		})
		if err != nil {
			violations = append(violations, validate.Prefixed(fieldIndex("access_pattern_list", i), err)...)
			continue
		}
		patterns = append(patterns, pattern)
	}

	if len(violations) > 0 {
		return nil, errors.Validation(violations)
	}

	plan, err := capacity.NewPlan(patterns, tables)
	if err != nil {
		return nil, errors.Validation(err)
	}
	return plan, nil
}

func fieldIndex(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}
