package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nucent/nucent/internal/printer"
)

// OutputFormat controls how reconciliation results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Formatter handles display of reconciliation reports.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatReport formats the report for display.
func (f *Formatter) FormatReport(r *Report) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(r)
	case FormatTable:
		return f.formatTable(r)
	default:
		return f.formatText(r)
	}
}

// PrintReport prints the formatted report to stdout.
func (f *Formatter) PrintReport(r *Report) {
	fmt.Print(f.FormatReport(r))
}

// formatText formats the report as human-readable text. The to-add and
// to-remove lists are emitted exactly in plan order.
func (f *Formatter) formatText(r *Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Reconciliation Report"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Scanned %d project file(s) under %s\n", len(r.Projects), r.Root)
	sb.WriteString("\n")

	if len(r.Warnings) > 0 {
		sb.WriteString(printer.Warning("Skipped declarations:"))
		sb.WriteString("\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, "  %s %s: %s\n", printer.Warning("⚠"), w.Project, w.Reason)
			fmt.Fprintf(&sb, "      %s\n", printer.Faint(w.Element))
		}
		sb.WriteString("\n")
	}

	if len(r.Collisions) > 0 {
		sb.WriteString(printer.Warning("Property name collisions:"))
		sb.WriteString("\n")
		for _, c := range r.Collisions {
			fmt.Fprintf(&sb, "  %s %s %s\n", printer.Warning("⚠"), c.Property,
				printer.Faint("("+strings.Join(c.IDs, ", ")+")"))
		}
		sb.WriteString("\n")
	}

	if len(r.Plan.ToAdd) > 0 {
		sb.WriteString(printer.Info("Properties to add to " + r.PropsFile + ":"))
		sb.WriteString("\n")
		for _, e := range r.Plan.ToAdd {
			fmt.Fprintf(&sb, "  <%s>%s</%s>\n", e.Property, e.Version, e.Property)
		}
		sb.WriteString("\n")
	}

	if len(r.Plan.ToRemove) > 0 {
		sb.WriteString(printer.Info("Properties no longer referenced:"))
		sb.WriteString("\n")
		for _, name := range r.Plan.ToRemove {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
		sb.WriteString("\n")
	}

	if r.Rewrite != nil {
		fmt.Fprintf(&sb, "Rewrote %d reference(s) across %d project file(s)\n",
			r.Rewrite.TotalRewritten(), len(r.Rewrite.Files))
		sb.WriteString("\n")
	}
	if r.PropsSorted {
		fmt.Fprintf(&sb, "Sorted property groups in %s\n", r.PropsFile)
		sb.WriteString("\n")
	}

	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	sb.WriteString(f.Summary(r))
	sb.WriteString("\n")

	return sb.String()
}

// formatTable formats the report as aligned tables.
func (f *Formatter) formatTable(r *Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Reconciliation Report"))
	sb.WriteString("\n\n")

	if len(r.Plan.ToAdd) > 0 {
		sb.WriteString("Properties to add:\n")
		fmt.Fprintf(&sb, "%-45s %-20s\n", "PROPERTY", "VERSION")
		sb.WriteString(strings.Repeat("-", 66) + "\n")
		for _, e := range r.Plan.ToAdd {
			fmt.Fprintf(&sb, "%-45s %-20s\n", e.Property, e.Version)
		}
		sb.WriteString("\n")
	}

	if len(r.Plan.ToRemove) > 0 {
		sb.WriteString("Properties to remove:\n")
		for _, name := range r.Plan.ToRemove {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
		sb.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("Skipped declarations:\n")
		fmt.Fprintf(&sb, "%-35s %-35s\n", "PROJECT", "REASON")
		sb.WriteString(strings.Repeat("-", 71) + "\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, "%-35s %-35s\n", w.Project, w.Reason)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(f.Summary(r))
	sb.WriteString("\n")

	return sb.String()
}

// formatJSON formats the report as JSON.
func (f *Formatter) formatJSON(r *Report) string {
	type jsonWarning struct {
		Project string `json:"project"`
		Element string `json:"element"`
		Reason  string `json:"reason"`
	}

	type jsonCollision struct {
		Property string   `json:"property"`
		IDs      []string `json:"ids"`
	}

	type jsonAdd struct {
		ID       string `json:"id"`
		Property string `json:"property"`
		Version  string `json:"version"`
	}

	type jsonRewrite struct {
		Path      string `json:"path"`
		Rewritten int    `json:"rewritten"`
	}

	output := struct {
		Root       string          `json:"root"`
		PropsFile  string          `json:"props_file"`
		Projects   []string        `json:"projects"`
		Warnings   []jsonWarning   `json:"warnings"`
		Collisions []jsonCollision `json:"collisions"`
		ToAdd      []jsonAdd       `json:"to_add"`
		ToRemove   []string        `json:"to_remove"`
		Rewrite    []jsonRewrite   `json:"rewrite,omitempty"`
		Summary    struct {
			ProjectCount int  `json:"project_count"`
			AddCount     int  `json:"add_count"`
			RemoveCount  int  `json:"remove_count"`
			WarningCount int  `json:"warning_count"`
			Rewritten    int  `json:"rewritten"`
			PropsSorted  bool `json:"props_sorted"`
		} `json:"summary"`
	}{
		Root:       r.Root,
		PropsFile:  r.PropsFile,
		Projects:   r.Projects,
		Warnings:   make([]jsonWarning, len(r.Warnings)),
		Collisions: make([]jsonCollision, len(r.Collisions)),
		ToAdd:      make([]jsonAdd, len(r.Plan.ToAdd)),
		ToRemove:   r.Plan.ToRemove,
	}

	for i, w := range r.Warnings {
		output.Warnings[i] = jsonWarning{Project: w.Project, Element: w.Element, Reason: w.Reason}
	}
	for i, c := range r.Collisions {
		output.Collisions[i] = jsonCollision{Property: c.Property, IDs: c.IDs}
	}
	for i, e := range r.Plan.ToAdd {
		output.ToAdd[i] = jsonAdd{ID: e.ID, Property: e.Property, Version: e.Version}
	}
	if r.Rewrite != nil {
		output.Rewrite = make([]jsonRewrite, len(r.Rewrite.Files))
		for i, fr := range r.Rewrite.Files {
			output.Rewrite[i] = jsonRewrite{Path: fr.Path, Rewritten: fr.Rewritten}
		}
		output.Summary.Rewritten = r.Rewrite.TotalRewritten()
	}

	output.Summary.ProjectCount = len(r.Projects)
	output.Summary.AddCount = len(r.Plan.ToAdd)
	output.Summary.RemoveCount = len(r.Plan.ToRemove)
	output.Summary.WarningCount = len(r.Warnings)
	output.Summary.PropsSorted = r.PropsSorted

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data) + "\n"
}

// Summary returns a one-line summary of the report.
func (f *Formatter) Summary(r *Report) string {
	parts := []string{}

	if n := len(r.Plan.ToAdd); n > 0 {
		parts = append(parts, fmt.Sprintf("%d property(ies) to add", n))
	}
	if n := len(r.Plan.ToRemove); n > 0 {
		parts = append(parts, fmt.Sprintf("%d to remove", n))
	}
	if n := len(r.Warnings); n > 0 {
		parts = append(parts, printer.Warning(fmt.Sprintf("%d warning(s)", n)))
	}

	if len(parts) == 0 {
		return printer.Faint("Everything is already centralized")
	}
	return "Found: " + strings.Join(parts, ", ")
}
