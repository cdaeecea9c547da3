package output

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVFormatter renders the per-pattern costs as CSV rows for spreadsheet
// import. Storage and pricing sections are not included; they live in the
// JSON and markdown renderings.
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format { return FormatCSV }

// Render writes one CSV row per access pattern.
func (f *CSVFormatter) Render(w io.Writer, report *PlanReport) error {
	cw := csv.NewWriter(w)
	header := []string{
		"pattern_name", "operation", "table_name", "requests_per_second",
		"rcus_per_request", "wcus_per_request", "rcus_per_second", "wcus_per_second",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range report.Patterns {
		row := []string{
			p.PatternName,
			p.Operation,
			p.TableName,
			strconv.FormatFloat(p.RequestsPerSecond, 'g', -1, 64),
			p.RCUsPerRequest.String(),
			p.WCUsPerRequest.String(),
			p.RCUsPerSecond.String(),
			p.WCUsPerSecond.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
