package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON. Capacity-unit fields are decimal
// strings, not floats, so downstream tooling never loses precision.
func (f *JSONFormatter) Render(w io.Writer, report *PlanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
