package designfile

import (
	"encoding/json"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"dynamo-capacity/internal/errors"
)

// DecodeYAML parses a YAML design document.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Parsing("failed to parse YAML design document", err)
	}
	return &doc, nil
}

// DecodeJSON parses a JSON design document.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Parsing("failed to parse JSON design document", err)
	}
	return &doc, nil
}

// hclDocument mirrors Document in HCL block form:
//
//	table "users" {
//	  item_count      = 1000
//	  item_size_bytes = 4096
//	  gsi "email-index" {
//	    item_count      = 1000
//	    item_size_bytes = 1500
//	  }
//	}
//
//	access_pattern "lookup-user" {
//	  operation           = "GetItem"
//	  description         = "Fetch a user profile by id"
//	  table_name          = "users"
//	  requests_per_second = 100
//	  item_size_bytes     = 1024
//	}
type hclDocument struct {
	Tables   []hclTable   `hcl:"table,block"`
	Patterns []hclPattern `hcl:"access_pattern,block"`
}

type hclTable struct {
	Name          string   `hcl:"name,label"`
	ItemCount     int      `hcl:"item_count"`
	ItemSizeBytes int      `hcl:"item_size_bytes"`
	GSIs          []hclGSI `hcl:"gsi,block"`
}

type hclGSI struct {
	Name          string `hcl:"name,label"`
	ItemCount     int    `hcl:"item_count"`
	ItemSizeBytes int    `hcl:"item_size_bytes"`
}

type hclPattern struct {
	Name               string   `hcl:"name,label"`
	Operation          string   `hcl:"operation"`
	Description        string   `hcl:"description"`
	TableName          string   `hcl:"table_name"`
	RequestsPerSecond  float64  `hcl:"requests_per_second"`
	ItemSizeBytes      int      `hcl:"item_size_bytes"`
	ItemCount          int      `hcl:"item_count,optional"`
	StronglyConsistent bool     `hcl:"strongly_consistent,optional"`
	GSIName            string   `hcl:"gsi_name,optional"`
	GSINames           []string `hcl:"gsi_names,optional"`
}

// DecodeHCL parses an HCL design document. The filename is used for
// diagnostics only.
func DecodeHCL(filename string, data []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse HCL design document", diags)
	}

	var hclDoc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &hclDoc); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode HCL design document", diags)
	}

	return hclDoc.toDocument(), nil
}

func (h *hclDocument) toDocument() *Document {
	doc := &Document{}
	for _, t := range h.Tables {
		td := TableDoc{Name: t.Name, ItemCount: t.ItemCount, ItemSizeBytes: t.ItemSizeBytes}
		for _, g := range t.GSIs {
			td.GSIs = append(td.GSIs, GSIDoc(g))
		}
		doc.TableList = append(doc.TableList, td)
	}
	for _, p := range h.Patterns {
		doc.AccessPatternList = append(doc.AccessPatternList, PatternDoc{
			Operation:          p.Operation,
			PatternName:        p.Name,
			Description:        p.Description,
			TableName:          p.TableName,
			RequestsPerSecond:  p.RequestsPerSecond,
			ItemSizeBytes:      p.ItemSizeBytes,
			ItemCount:          p.ItemCount,
			StronglyConsistent: p.StronglyConsistent,
			GSIName:            p.GSIName,
			GSINames:           p.GSINames,
		})
	}
	return doc
}
