package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mathilda-val/shopaudit-lite/internal/model"
	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

func Write(report model.AuditReport, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "human":
		writeHuman(report, w)
		return nil
	case "json":
		return writeJSON(report, w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeHuman(report model.AuditReport, w io.Writer) {
	fmt.Fprintf(w, "Audit of %s\n", report.URL)
	fmt.Fprintln(w, "--------------------")
	fmt.Fprintf(w, "Score: %d/100 (%s)\n\n", report.Score, report.Grade)

	for _, f := range report.Checks {
		fmt.Fprintf(w, "%s %s\n", severityBadge(f.Severity), f.Name)
		fmt.Fprintf(w, "  %s\n", f.Message)
		for _, d := range f.Details {
			fmt.Fprintf(w, "    - %s\n", d)
		}
		if f.Fix != "" {
			fmt.Fprintf(w, "  Fix: %s\n", f.Fix)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: critical=%d warnings=%d passed=%d info=%d\n",
		report.Summary.Critical,
		report.Summary.Warnings,
		report.Summary.Passed,
		report.Summary.Info,
	)
	if report.Meta.PlatformDetected {
		fmt.Fprintln(w, "Platform: Shopify storefront detected")
	}
	fmt.Fprintf(w, "Response: %d ms, %d KB\n", report.Meta.ResponseTimeMs, report.Meta.HTMLSizeKB)
}

func writeJSON(report model.AuditReport, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func severityBadge(level string) string {
	switch level {
	case severity.Critical:
		return "[CRIT]"
	case severity.Warning:
		return "[WARN]"
	case severity.Passed:
		return "[PASS]"
	case severity.Info:
		return "[INFO]"
	default:
		return "[????]"
	}
}
