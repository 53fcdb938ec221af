// Package format checks raw source lines against whitespace and layout
// conventions.
package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// CheckerName identifies this checker in the registry.
const CheckerName = "format"

// Rule identifiers.
const (
	RuleMaxLineLength      = "format/max-line-length"
	RuleTrailingWhitespace = "format/trailing-whitespace"
	RuleIndentation        = "format/indentation"
)

// DefaultMaxLineLength is used when no limit is configured.
const DefaultMaxLineLength = 120

// lineExcerptLen bounds how much of an offending line the report quotes.
const lineExcerptLen = 40

// Checker validates line length and whitespace conventions.
type Checker struct {
	maxLineLength int
}

// NewChecker creates a format checker. A non-positive limit selects the
// default.
func NewChecker(maxLineLength int) *Checker {
	if maxLineLength < 1 {
		maxLineLength = DefaultMaxLineLength
	}

	return &Checker{maxLineLength: maxLineLength}
}

// Name implements check.Checker.
func (c *Checker) Name() string { return CheckerName }

// Description implements check.Checker.
func (c *Checker) Description() string {
	return "Validates line length and whitespace formatting"
}

// Check evaluates every raw line in the unit.
func (c *Checker) Check(unit check.Unit) []report.Violation {
	var violations []report.Violation

	for _, line := range unit.Lines {
		violations = append(violations, c.evaluate(line.File, line.Line, line.Text)...)
	}

	return violations
}

func (c *Checker) evaluate(file string, lineNum int, text string) []report.Violation {
	var violations []report.Violation

	add := func(rule, reason string) {
		violations = append(violations, report.Violation{
			Rule:     rule,
			Kind:     report.KindRuleViolation,
			Severity: report.SeverityError,
			File:     file,
			Line:     lineNum,
			Subject:  excerpt(text),
			Reason:   reason,
		})
	}

	if length := len([]rune(text)); length > c.maxLineLength {
		add(RuleMaxLineLength, fmt.Sprintf("line is %d characters long (max %d)", length, c.maxLineLength))
	}

	if last, _ := utf8.DecodeLastRuneInString(text); text != "" && unicode.IsSpace(last) {
		add(RuleTrailingWhitespace, "line has trailing whitespace")
	}

	if indentMixesSpacesBeforeTabs(text) {
		add(RuleIndentation, "indentation mixes spaces before tabs")
	}

	return violations
}

// indentMixesSpacesBeforeTabs reports a tab appearing after a space within
// the leading whitespace, which renders inconsistently across tab widths.
func indentMixesSpacesBeforeTabs(text string) bool {
	seenSpace := false

	for _, r := range text {
		switch r {
		case ' ':
			seenSpace = true
		case '\t':
			if seenSpace {
				return true
			}
		default:
			return false
		}
	}

	return false
}

func excerpt(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= lineExcerptLen {
		return trimmed
	}

	return trimmed[:lineExcerptLen] + "..."
}
