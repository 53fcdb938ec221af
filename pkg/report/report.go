// Package report collects rule violations into an ordered, immutable scan
// result and renders it in the supported output formats.
package report

import "sort"

// Kind separates the two reportable conditions. Neither aborts a scan.
type Kind string

// Violation kinds.
const (
	// KindRuleViolation is a concrete breach of a documented convention.
	KindRuleViolation Kind = "rule_violation"

	// KindAmbiguousClassification flags input the checkers refuse to guess
	// about, left for a human to adjudicate.
	KindAmbiguousClassification Kind = "ambiguous_classification"
)

// Severity grades a violation.
type Severity string

// Violation severities. Warnings cover heuristic rules where the source
// conventions admit no precise algorithm.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is one finding: the rule that fired, where, on what subject,
// and a human-readable reason. Reason is always non-empty.
type Violation struct {
	Rule     string   `json:"rule"               yaml:"rule"`
	Kind     Kind     `json:"kind"               yaml:"kind"`
	Severity Severity `json:"severity"           yaml:"severity"`
	File     string   `json:"file,omitempty"     yaml:"file,omitempty"`
	Line     int      `json:"line,omitempty"     yaml:"line,omitempty"`
	Subject  string   `json:"subject"            yaml:"subject"`
	Reason   string   `json:"reason"             yaml:"reason"`

	// Expected carries a suggested compliant spelling when one can be
	// derived mechanically.
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Summary holds the aggregate counts of one scan.
type Summary struct {
	Total     int            `json:"total"      yaml:"total"`
	Errors    int            `json:"errors"     yaml:"errors"`
	Warnings  int            `json:"warnings"   yaml:"warnings"`
	Ambiguous int            `json:"ambiguous"  yaml:"ambiguous"`
	ByRule    map[string]int `json:"by_rule"    yaml:"by_rule"`

	ScannedIdentifiers int `json:"scanned_identifiers" yaml:"scanned_identifiers"`
	ScannedMethods     int `json:"scanned_methods"     yaml:"scanned_methods"`
	ScannedLines       int `json:"scanned_lines"       yaml:"scanned_lines"`
}

// Result is the immutable outcome of one scan: violations in stable order
// plus summary counts.
type Result struct {
	Violations []Violation `json:"violations" yaml:"violations"`
	Summary    Summary     `json:"summary"    yaml:"summary"`
}

// Passed reports whether the scan found no error-severity violations.
func (r Result) Passed() bool {
	return r.Summary.Errors == 0 && r.Summary.Ambiguous == 0
}

// Builder accumulates violations from per-unit checks. The merge is a plain
// append: associative and commutative, since Build imposes the final order.
type Builder struct {
	violations []Violation
	summary    Summary
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends violations.
func (b *Builder) Add(violations ...Violation) {
	b.violations = append(b.violations, violations...)
}

// SetScanned records how many entities the scan covered.
func (b *Builder) SetScanned(identifiers, methods, lines int) {
	b.summary.ScannedIdentifiers = identifiers
	b.summary.ScannedMethods = methods
	b.summary.ScannedLines = lines
}

// Build sorts the collected violations by file, line, rule and subject, and
// computes the summary. The result is independent of insertion order.
func (b *Builder) Build() Result {
	violations := make([]Violation, len(b.violations))
	copy(violations, b.violations)

	sort.SliceStable(violations, func(i, j int) bool {
		a, z := violations[i], violations[j]

		if a.File != z.File {
			return a.File < z.File
		}

		if a.Line != z.Line {
			return a.Line < z.Line
		}

		if a.Rule != z.Rule {
			return a.Rule < z.Rule
		}

		return a.Subject < z.Subject
	})

	summary := b.summary
	summary.Total = len(violations)
	summary.ByRule = make(map[string]int, len(violations))

	for _, v := range violations {
		summary.ByRule[v.Rule]++

		if v.Kind == KindAmbiguousClassification {
			summary.Ambiguous++
		}

		switch v.Severity {
		case SeverityError:
			summary.Errors++
		case SeverityWarning:
			summary.Warnings++
		}
	}

	return Result{Violations: violations, Summary: summary}
}
