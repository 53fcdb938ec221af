// Package methodtype infers which method-type category a signature claims
// and enforces that category's contract.
package methodtype

import (
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/stylefang/pkg/casing"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// CheckerName identifies this checker in the registry.
const CheckerName = "methodtype"

// Category is a method-type classification.
type Category string

// Method-type categories. Unclassified is a reported outcome, never a
// silent default.
const (
	CategoryConstructor     Category = "constructor"
	CategoryDesignatedInit  Category = "designated_init"
	CategoryConvenienceInit Category = "convenience_init"
	CategoryGive            Category = "give"
	CategoryValidate        Category = "validate"
	CategoryDo              Category = "do"
	CategoryOn              Category = "on"
	CategoryUnclassified    Category = "unclassified"
)

// Naming prefixes that drive classification.
const (
	initName       = "init"
	initWithPrefix = "initWith"
	validatePrefix = "validate"
	doPrefix       = "do"
	onPrefix       = "on"
)

// Checker classifies every method in a unit and enforces its category
// contract.
type Checker struct{}

// NewChecker creates a method-type checker.
func NewChecker() *Checker { return &Checker{} }

// Name implements check.Checker.
func (c *Checker) Name() string { return CheckerName }

// Description implements check.Checker.
func (c *Checker) Description() string {
	return "Classifies methods into type categories and enforces their contracts"
}

// Check evaluates every method signature in the unit.
func (c *Checker) Check(unit check.Unit) []report.Violation {
	var violations []report.Violation

	for _, sig := range unit.Methods {
		_, vs := Evaluate(sig, unit.Hierarchy)
		violations = append(violations, vs...)
	}

	return violations
}

// Evaluate classifies a signature and enforces the resulting category's
// contract. It never fails: unclassifiable methods yield an ambiguous
// violation and an empty contract.
func Evaluate(sig entity.MethodSignature, hierarchy entity.Hierarchy) (Category, []report.Violation) {
	if sig.Name == "" {
		return CategoryUnclassified, []report.Violation{newViolation(sig, RuleEmptyMethod,
			report.KindRuleViolation, "method name is empty")}
	}

	category := Classify(sig, hierarchy)
	if category == CategoryUnclassified {
		return category, []report.Violation{newViolation(sig, RuleUnclassified,
			report.KindAmbiguousClassification,
			"method matches no type category (init/validate/do/on/give); intent needs human adjudication")}
	}

	return category, Enforce(sig, category, hierarchy)
}

// Classify runs the classification decision tree. The naming prefix drives
// the claim; structural mismatches surface later as contract violations,
// never as silent reclassification.
func Classify(sig entity.MethodSignature, hierarchy entity.Hierarchy) Category {
	base, _ := casing.StripProtected(sig.Name)

	switch {
	case isInitName(base):
		return classifyInit(sig, hierarchy)
	case hasPrefixWord(base, validatePrefix):
		return CategoryValidate
	case hasPrefixWord(base, doPrefix):
		return CategoryDo
	case hasPrefixWord(base, onPrefix):
		return CategoryOn
	case sig.Class != "" && base == sig.Class:
		return CategoryConstructor
	case sig.Returns && hasPreposition(base):
		return CategoryGive
	default:
		return CategoryUnclassified
	}
}

// prepositions are the lexical markers of the give-method shape: a noun
// phrase describing the returned value in terms of its inputs.
var prepositions = map[string]struct{}{
	"of": {}, "with": {}, "for": {}, "from": {}, "to": {}, "at": {},
	"in": {}, "by": {}, "on": {}, "as": {}, "into": {}, "per": {},
}

// hasPreposition reports whether any word of the name is a preposition,
// which marks a noun-phrase method name. A returning method without one
// stays unclassified rather than silently claiming give.
func hasPreposition(base string) bool {
	for _, word := range casing.Split(base) {
		if _, ok := prepositions[strings.ToLower(word)]; ok {
			return true
		}
	}

	return false
}

// classifyInit disambiguates designated from convenience initializers by
// call target: delegating up the hierarchy makes it designated, delegating
// across within the same class makes it convenience. An init that delegates
// nowhere claims designated; the contract check decides whether that is
// legal for its class.
func classifyInit(sig entity.MethodSignature, hierarchy entity.Hierarchy) Category {
	if callsInitOf(sig, hierarchy, true) {
		return CategoryDesignatedInit
	}

	if callsInitOf(sig, hierarchy, false) {
		return CategoryConvenienceInit
	}

	return CategoryDesignatedInit
}

// callsInitOf reports whether the method calls an init-like method on an
// ancestor class (super=true) or on its own class (super=false).
func callsInitOf(sig entity.MethodSignature, hierarchy entity.Hierarchy, super bool) bool {
	for _, call := range sig.Calls {
		base, _ := casing.StripProtected(call.Name)
		if !isInitName(base) {
			continue
		}

		if super && hierarchy.IsAncestor(sig.Class, call.Class) {
			return true
		}

		if !super && call.Class == sig.Class {
			return true
		}
	}

	return false
}

func isInitName(base string) bool {
	return base == initName || hasPrefixWord(base, initWithPrefix)
}

// calleeCategory infers a callee's category from its name alone. Bodies of
// callees are not available at this point, so the lexical claim stands in
// for the structural one; nameless callees default to Give, the least
// privileged category.
func calleeCategory(name string) Category {
	base, _ := casing.StripProtected(name)

	switch {
	case isInitName(base):
		return CategoryDesignatedInit
	case hasPrefixWord(base, validatePrefix):
		return CategoryValidate
	case hasPrefixWord(base, doPrefix):
		return CategoryDo
	case hasPrefixWord(base, onPrefix):
		return CategoryOn
	default:
		return CategoryGive
	}
}

// hasPrefixWord reports whether name starts with prefix at a camelCase word
// boundary.
func hasPrefixWord(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}

	rest := name[len(prefix):]

	return rest == "" || unicode.IsUpper(rune(rest[0]))
}

func newViolation(sig entity.MethodSignature, rule string, kind report.Kind, reason string) report.Violation {
	severity := report.SeverityError
	if kind == report.KindAmbiguousClassification {
		severity = report.SeverityWarning
	}

	return report.Violation{
		Rule:     rule,
		Kind:     kind,
		Severity: severity,
		File:     sig.File,
		Line:     sig.Line,
		Subject:  sig.Name,
		Reason:   reason,
	}
}
