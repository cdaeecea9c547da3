package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CLIFormatter renders a human-readable table for terminals.
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the report as aligned tables with section headers.
func (f *CLIFormatter) Render(w io.Writer, report *PlanReport) error {
	header := color.New(color.FgCyan, color.Bold)
	total := color.New(color.Bold)

	if _, err := header.Fprintln(w, "Access Patterns"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tOPERATION\tTABLE\tREQ/S\tRCU/REQ\tWCU/REQ\tRCU/S\tWCU/S")
	for _, p := range report.Patterns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.PatternName, p.Operation, p.TableName,
			formatRate(p.RequestsPerSecond),
			p.RCUsPerRequest.String(), p.WCUsPerRequest.String(),
			p.RCUsPerSecond.String(), p.WCUsPerSecond.String())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	total.Fprintf(w, "Total: %s RCU/s, %s WCU/s\n",
		report.TotalRCUsPerSecond.String(), report.TotalWCUsPerSecond.String())

	if len(report.Storage) > 0 {
		fmt.Fprintln(w)
		if _, err := header.Fprintln(w, "Storage"); err != nil {
			return err
		}
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TABLE\tGSI\tITEMS\tITEM SIZE\tSTORAGE GB")
		for _, s := range report.Storage {
			gsi := s.GSIName
			if gsi == "" {
				gsi = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
				s.TableName, gsi, s.ItemCount, s.ItemSizeBytes, formatGB(s.StorageGB))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		total.Fprintf(w, "Total storage: %s GB\n", formatGB(report.TotalStorageGB))
	}

	if report.Pricing != nil {
		fmt.Fprintln(w)
		if _, err := header.Fprintln(w, "Estimated Monthly Cost"); err != nil {
			return err
		}
		fmt.Fprintf(w, "Read capacity:  %s %s\n", report.Pricing.RCUUSD.StringFixed(2), report.Pricing.Currency)
		fmt.Fprintf(w, "Write capacity: %s %s\n", report.Pricing.WCUUSD.StringFixed(2), report.Pricing.Currency)
		fmt.Fprintf(w, "Storage:        %s %s\n", report.Pricing.StorageUSD.StringFixed(2), report.Pricing.Currency)
		total.Fprintf(w, "Total:          %s %s\n", report.Pricing.TotalUSD.StringFixed(2), report.Pricing.Currency)
	}

	return nil
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

func formatGB(gb float64) string {
	return strconv.FormatFloat(gb, 'f', 6, 64)
}
