package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

// Output format names.
const (
	FormatText    = "text"
	FormatCompact = "compact"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatPlot    = "plot"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// defaultTopIssues caps the violation table in non-verbose text output.
const defaultTopIssues = 25

// Render writes the result in the named format.
func Render(result Result, format string, verbose, noColor bool, w io.Writer) error {
	switch format {
	case FormatText:
		return RenderText(result, verbose, noColor, w)
	case FormatCompact:
		return RenderCompact(result, w)
	case FormatJSON:
		return RenderJSON(result, w)
	case FormatYAML:
		return RenderYAML(result, w)
	case FormatPlot:
		return RenderPlot(result, w)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// RenderJSON writes the result as indented JSON.
func RenderJSON(result Result, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}

	return nil
}

// RenderYAML writes the result as YAML.
func RenderYAML(result Result, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode YAML report: %w", err)
	}

	return nil
}

// RenderCompact writes one line per violation, suited for editors and CI
// log scraping.
func RenderCompact(result Result, w io.Writer) error {
	for _, v := range result.Violations {
		location := v.File
		if v.Line > 0 {
			location = fmt.Sprintf("%s:%d", v.File, v.Line)
		}

		_, err := fmt.Fprintf(w, "%s: [%s] %s: %s (%s)\n",
			location, v.Severity, v.Rule, v.Reason, v.Subject)
		if err != nil {
			return fmt.Errorf("write compact report: %w", err)
		}
	}

	_, err := fmt.Fprintf(w, "%s violations (%s errors, %s warnings) across %s identifiers, %s methods, %s lines\n",
		humanize.Comma(int64(result.Summary.Total)),
		humanize.Comma(int64(result.Summary.Errors)),
		humanize.Comma(int64(result.Summary.Warnings)),
		humanize.Comma(int64(result.Summary.ScannedIdentifiers)),
		humanize.Comma(int64(result.Summary.ScannedMethods)),
		humanize.Comma(int64(result.Summary.ScannedLines)))
	if err != nil {
		return fmt.Errorf("write compact summary: %w", err)
	}

	return nil
}

// RenderText writes a human-readable report: a summary header, a violation
// table, and rename suggestions. Non-verbose output truncates the table to
// the first violations in report order.
func RenderText(result Result, verbose, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	if err := writeTextHeader(result, w); err != nil {
		return err
	}

	if len(result.Violations) == 0 {
		_, err := color.New(color.FgGreen).Fprintln(w, "No style violations found.")
		if err != nil {
			return fmt.Errorf("write text report: %w", err)
		}

		return nil
	}

	shown := result.Violations
	if !verbose && len(shown) > defaultTopIssues {
		shown = shown[:defaultTopIssues]
	}

	writeViolationTable(shown, w)

	if !verbose && len(shown) < len(result.Violations) {
		_, err := fmt.Fprintf(w, "... and %s more (use --verbose to show all)\n",
			humanize.Comma(int64(len(result.Violations)-len(shown))))
		if err != nil {
			return fmt.Errorf("write text report: %w", err)
		}
	}

	return writeSuggestions(shown, noColor, w)
}

func writeTextHeader(result Result, w io.Writer) error {
	summary := result.Summary

	_, err := fmt.Fprintf(w, "Scanned %s identifiers, %s methods, %s lines\n",
		humanize.Comma(int64(summary.ScannedIdentifiers)),
		humanize.Comma(int64(summary.ScannedMethods)),
		humanize.Comma(int64(summary.ScannedLines)))
	if err != nil {
		return fmt.Errorf("write text header: %w", err)
	}

	errColor := color.New(color.FgRed)
	warnColor := color.New(color.FgYellow)

	_, err = fmt.Fprintf(w, "%s violations: %s, %s, %s ambiguous\n\n",
		humanize.Comma(int64(summary.Total)),
		errColor.Sprintf("%d errors", summary.Errors),
		warnColor.Sprintf("%d warnings", summary.Warnings),
		humanize.Comma(int64(summary.Ambiguous)))
	if err != nil {
		return fmt.Errorf("write text header: %w", err)
	}

	return nil
}

func writeViolationTable(violations []Violation, w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"Location", "Severity", "Rule", "Subject", "Reason"})

	for _, v := range violations {
		location := v.File
		if v.Line > 0 {
			location = fmt.Sprintf("%s:%d", v.File, v.Line)
		}

		tbl.AppendRow(table.Row{location, v.Severity, v.Rule, v.Subject, v.Reason})
	}

	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Reason", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})
	tbl.SetStyle(table.StyleLight)
	tbl.Render()
}

// writeSuggestions prints each mechanical rename as a character diff.
func writeSuggestions(violations []Violation, noColor bool, w io.Writer) error {
	dmp := diffmatchpatch.New()

	for _, v := range violations {
		if v.Expected == "" || v.Expected == v.Subject {
			continue
		}

		rendered := fmt.Sprintf("%s -> %s", v.Subject, v.Expected)
		if !noColor {
			rendered = dmp.DiffPrettyText(dmp.DiffMain(v.Subject, v.Expected, false))
		}

		_, err := fmt.Fprintf(w, "rename %s: %s\n", v.Subject, rendered)
		if err != nil {
			return fmt.Errorf("write suggestions: %w", err)
		}
	}

	return nil
}

// RulesByCount returns (rule, count) pairs sorted by descending count, then
// rule name. Shared by the plot renderer and tests.
func RulesByCount(summary Summary) ([]string, []int) {
	rules := make([]string, 0, len(summary.ByRule))
	for rule := range summary.ByRule {
		rules = append(rules, rule)
	}

	sort.Slice(rules, func(i, j int) bool {
		if summary.ByRule[rules[i]] != summary.ByRule[rules[j]] {
			return summary.ByRule[rules[i]] > summary.ByRule[rules[j]]
		}

		return rules[i] < rules[j]
	})

	counts := make([]int, len(rules))
	for i, rule := range rules {
		counts[i] = summary.ByRule[rule]
	}

	return rules, counts
}
