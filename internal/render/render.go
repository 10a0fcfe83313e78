// Package render formats estimation reports for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/RMahshie/arhl/pkg/models"
)

// Placeholder shown where a patient value was not entered.
const Placeholder = "--"

// Format selects an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMarkdown, FormatJSON:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, md or json)", s)
}

// Report renders r in the requested format.
func Report(r *models.Report, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return JSON(r)
	case FormatMarkdown:
		return Markdown(r), nil
	default:
		return Text(r), nil
	}
}

// JSON renders any value as indented JSON with a trailing newline.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}

// Text renders a report as aligned plain-text tables.
func Text(r *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ARHL estimate: %s, age %s\n\n", r.Sex, num(r.Age))

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tMEDIAN\t95TH\tPATIENT\tASHA")
	for _, c := range r.Composites {
		fmt.Fprintf(tw, "%s\t%.1f (%s)\t%.1f\t%s\t%s\n",
			c.Title, c.Median, c.MedianSeverity, c.P95, optional(c.Patient, 1), optionalLabel(c.PatientSeverity))
	}
	tw.Flush()

	b.WriteString("\n")
	tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FREQ\tMED\t95%\tUSER\tASHA")
	for _, p := range r.Audiogram {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%s\t%s\n",
			p.Label, p.Median, p.P95, optional(p.Patient, 0), optionalLabel(p.PatientSeverity))
	}
	tw.Flush()

	return b.String()
}

// Markdown renders a report as a Markdown document.
func Markdown(r *models.Report) string {
	var b strings.Builder

	b.WriteString("# ARHL Estimate\n\n")
	fmt.Fprintf(&b, "**Sex:** %s\n", r.Sex)
	fmt.Fprintf(&b, "**Age:** %s\n", num(r.Age))
	fmt.Fprintf(&b, "**Report:** %s\n\n", r.ID)

	b.WriteString("## Pure-Tone Averages\n\n")
	b.WriteString("| Index | Median (dB) | 95th %ile (dB) | Patient (dB) | ASHA |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range r.Composites {
		fmt.Fprintf(&b, "| %s | %.1f (%s) | %.1f | %s | %s |\n",
			c.Title, c.Median, c.MedianSeverity, c.P95, optional(c.Patient, 1), optionalLabel(c.PatientSeverity))
	}

	b.WriteString("\n## Audiogram\n\n")
	b.WriteString("| Frequency | Median | 95th %ile | Patient | ASHA |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, p := range r.Audiogram {
		fmt.Fprintf(&b, "| %s Hz | %.0f | %.0f | %s | %s |\n",
			p.Label, p.Median, p.P95, optional(p.Patient, 0), optionalLabel(p.PatientSeverity))
	}

	if !r.PatientData {
		b.WriteString("\nNo patient thresholds entered.\n")
	}
	return b.String()
}

// Scale renders the ASHA reference table.
func Scale(bands []models.SeverityBand) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BAND\tRANGE (dB HL)")
	for _, band := range bands {
		fmt.Fprintf(tw, "%s\t%s\n", band.Label, band.Range)
	}
	tw.Flush()
	return b.String()
}

func optional(v *float64, prec int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.*f", prec, *v)
}

func optionalLabel(s *string) string {
	if s == nil {
		return Placeholder
	}
	return *s
}

// num drops a trailing ".0" so whole ages print as integers.
func num(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
