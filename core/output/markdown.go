package output

import (
	"fmt"
	"io"
)

// MarkdownFormatter renders the report as a markdown document.
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the report as markdown tables.
func (f *MarkdownFormatter) Render(w io.Writer, report *PlanReport) error {
	fmt.Fprintln(w, "## Access Patterns")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Pattern | Operation | Table | Req/s | RCU/req | WCU/req | RCU/s | WCU/s |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
	for _, p := range report.Patterns {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			p.PatternName, p.Operation, p.TableName,
			formatRate(p.RequestsPerSecond),
			p.RCUsPerRequest.String(), p.WCUsPerRequest.String(),
			p.RCUsPerSecond.String(), p.WCUsPerSecond.String())
	}
	fmt.Fprintf(w, "\n**Total: %s RCU/s, %s WCU/s**\n",
		report.TotalRCUsPerSecond.String(), report.TotalWCUsPerSecond.String())

	if len(report.Storage) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "## Storage")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Table | GSI | Items | Item Size | Storage GB |")
		fmt.Fprintln(w, "|---|---|---|---|---|")
		for _, s := range report.Storage {
			gsi := s.GSIName
			if gsi == "" {
				gsi = "-"
			}
			fmt.Fprintf(w, "| %s | %s | %d | %d | %s |\n",
				s.TableName, gsi, s.ItemCount, s.ItemSizeBytes, formatGB(s.StorageGB))
		}
		fmt.Fprintf(w, "\n**Total storage: %s GB**\n", formatGB(report.TotalStorageGB))
	}

	if report.Pricing != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "## Estimated Monthly Cost")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Component | Cost |")
		fmt.Fprintln(w, "|---|---|")
		fmt.Fprintf(w, "| Read capacity | %s %s |\n", report.Pricing.RCUUSD.StringFixed(2), report.Pricing.Currency)
		fmt.Fprintf(w, "| Write capacity | %s %s |\n", report.Pricing.WCUUSD.StringFixed(2), report.Pricing.Currency)
		fmt.Fprintf(w, "| Storage | %s %s |\n", report.Pricing.StorageUSD.StringFixed(2), report.Pricing.Currency)
		fmt.Fprintf(w, "| **Total** | **%s %s** |\n", report.Pricing.TotalUSD.StringFixed(2), report.Pricing.Currency)
	}

	return nil
}
