package linkcheck

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter writes a scan report.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// NewFormatter returns the formatter for format ("text" or "json").
// Unknown formats fall back to text.
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter prints the aggregated message, or a one-line summary for a
// clean tree.
type TextFormatter struct{}

// Format outputs the report in human-readable text.
func (f *TextFormatter) Format(w io.Writer, report *Report) error {
	if report.HasBroken() {
		_, err := fmt.Fprintln(w, report.Message())
		return err
	}
	_, err := fmt.Fprintf(w, "No broken links found in %s (%d file%s scanned, %d link%s checked).\n",
		report.Root,
		report.FilesScanned, pluralize(report.FilesScanned),
		report.LinksChecked, pluralize(report.LinksChecked))
	return err
}

// JSONFormatter formats the report as indented JSON.
type JSONFormatter struct{}

// Format outputs the report as JSON.
func (f *JSONFormatter) Format(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
