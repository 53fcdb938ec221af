// Package naming evaluates identifier naming conventions per declared role.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/stylefang/pkg/casing"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// CheckerName identifies this checker in the registry.
const CheckerName = "naming"

// Rule identifiers.
const (
	RuleEmptyIdentifier = "naming/empty-identifier"
	RuleUnknownRole     = "naming/unknown-role"
	RuleFolderCasing    = "naming/folder-casing"
	RuleFileCasing      = "naming/file-casing"
	RuleClassCasing     = "naming/class-casing"
	RuleEnumCasing      = "naming/enum-casing"
	RuleEnumSingular    = "naming/enum-singular"
	RuleEnumPrefix      = "naming/enum-prefix"
	RuleCamelCasing     = "naming/camel-casing"
	RulePropertyCasing  = "naming/property-casing"
	RuleBooleanPrefix   = "naming/boolean-property-prefix"
	RuleLazyBacking     = "naming/lazy-backing-property"
	RuleConstantCasing  = "naming/constant-casing"
)

// Literal affixes the rules check for.
const (
	enumPrefix    = "En"
	booleanPrefix = "is"
	lazySuffix    = "Lazy"
)

// Endings that defeat the plural-suffix heuristic: words like "status" or
// "axis" end in "s" without being plural.
var singularEndings = []string{"ss", "us", "is", "os"}

// Config carries the configurable parts of the naming rules.
type Config struct {
	FolderExceptions      []string
	FileExceptions        []string
	Acronyms              []string
	CaseSensitiveAcronyms bool
	PluralSuffixes        []string
}

// Checker evaluates naming rules for every identifier role. All applicable
// rules for a role run every time; a single identifier can yield multiple
// violations.
type Checker struct {
	classifier       *casing.Classifier
	folderExceptions map[string]struct{}
	fileExceptions   map[string]struct{}
	pluralSuffixes   []string
}

// NewChecker creates a naming checker from configuration.
func NewChecker(cfg Config) *Checker {
	pluralSuffixes := cfg.PluralSuffixes
	if len(pluralSuffixes) == 0 {
		pluralSuffixes = []string{"s"}
	}

	return &Checker{
		classifier:       casing.NewClassifier(cfg.Acronyms, cfg.CaseSensitiveAcronyms),
		folderExceptions: toSet(cfg.FolderExceptions),
		fileExceptions:   toSet(cfg.FileExceptions),
		pluralSuffixes:   pluralSuffixes,
	}
}

// Name implements check.Checker.
func (c *Checker) Name() string { return CheckerName }

// Description implements check.Checker.
func (c *Checker) Description() string {
	return "Validates identifier casing and role-specific naming rules"
}

// Check evaluates every identifier in the unit.
func (c *Checker) Check(unit check.Unit) []report.Violation {
	var violations []report.Violation

	for _, id := range unit.Identifiers {
		violations = append(violations, c.Evaluate(id)...)
	}

	return violations
}

// Evaluate runs all rules applicable to the identifier's role. It is a pure
// function: the same identifier always yields the same violations in the
// same order. The role-declared expectation decides which pattern applies;
// ambiguity between patterns is never resolved by precedence.
func (c *Checker) Evaluate(id entity.Identifier) []report.Violation {
	if id.Name == "" {
		return []report.Violation{c.violation(id, RuleEmptyIdentifier,
			"identifier name is empty", "")}
	}

	switch id.Role {
	case entity.RoleFolder:
		return c.evaluateExempted(id, RuleFolderCasing, c.folderExceptions)
	case entity.RoleFile:
		return c.evaluateExempted(id, RuleFileCasing, c.fileExceptions)
	case entity.RoleClass:
		return c.evaluateCapital(id, RuleClassCasing)
	case entity.RoleEnum:
		return c.evaluateEnum(id)
	case entity.RoleFunction, entity.RoleMethod, entity.RoleParameter, entity.RoleLocalVariable:
		return c.evaluateCamel(id)
	case entity.RoleProperty:
		return c.evaluateProperty(id)
	case entity.RoleGlobalConstant:
		return c.evaluateConstant(id)
	default:
		return []report.Violation{c.violation(id, RuleUnknownRole,
			fmt.Sprintf("unknown identifier role %q", id.Role), "")}
	}
}

func (c *Checker) evaluateExempted(id entity.Identifier, rule string, exceptions map[string]struct{}) []report.Violation {
	if _, exempt := exceptions[id.Name]; exempt {
		return nil
	}

	return c.evaluateCapital(id, rule)
}

func (c *Checker) evaluateCapital(id entity.Identifier, rule string) []report.Violation {
	if c.classifier.Classify(id.Name) == casing.CapitalCamelCase {
		return nil
	}

	return []report.Violation{c.violation(id, rule,
		fmt.Sprintf("%s name %q must be CapitalCamelCase", id.Role, id.Name),
		casing.ToCapitalCamel(casing.Split(id.Name)))}
}

func (c *Checker) evaluateEnum(id entity.Identifier) []report.Violation {
	violations := c.evaluateCapital(id, RuleEnumCasing)

	if !hasPrefixWord(id.Name, enumPrefix) {
		violations = append(violations, c.violation(id, RuleEnumPrefix,
			fmt.Sprintf("enum name %q must start with the %q prefix", id.Name, enumPrefix),
			enumPrefix+casing.ToCapitalCamel(casing.Split(id.Name))))
	}

	if suffix, plural := c.looksPlural(id.Name); plural {
		v := c.violation(id, RuleEnumSingular,
			fmt.Sprintf("enum name %q appears plural (ends in %q); name enums for the singular value", id.Name, suffix),
			"")
		v.Severity = report.SeverityWarning
		violations = append(violations, v)
	}

	return violations
}

// looksPlural is a lexical heuristic, not a grammar: it flags a trailing
// plural suffix on the last word unless the word ends in a known
// singular-looking ending.
func (c *Checker) looksPlural(name string) (string, bool) {
	words := casing.Split(name)
	if len(words) == 0 {
		return "", false
	}

	last := strings.ToLower(words[len(words)-1])

	for _, ending := range singularEndings {
		if strings.HasSuffix(last, ending) {
			return "", false
		}
	}

	for _, suffix := range c.pluralSuffixes {
		if len(last) > len(suffix) && strings.HasSuffix(last, suffix) {
			return suffix, true
		}
	}

	return "", false
}

func (c *Checker) evaluateCamel(id entity.Identifier) []report.Violation {
	// Externally-imposed signatures are exempt from local conventions.
	if id.Override {
		return nil
	}

	name, _ := casing.StripProtected(id.Name)

	if c.classifier.Classify(name) == casing.CamelCase {
		return nil
	}

	return []report.Violation{c.violation(id, RuleCamelCasing,
		fmt.Sprintf("%s name %q must be camelCase (a leading underscore marks it protected)", id.Role, id.Name),
		casing.ToCamel(casing.Split(name)))}
}

func (c *Checker) evaluateProperty(id entity.Identifier) []report.Violation {
	var violations []report.Violation

	name, protected := casing.StripProtected(id.Name)

	if c.classifier.Classify(name) != casing.CamelCase {
		violations = append(violations, c.violation(id, RulePropertyCasing,
			fmt.Sprintf("property name %q must be camelCase", id.Name),
			casing.ToCamel(casing.Split(name))))
	}

	if id.Boolean && !hasPrefixWord(name, booleanPrefix) {
		violations = append(violations, c.violation(id, RuleBooleanPrefix,
			fmt.Sprintf("boolean property %q must begin with %q", id.Name, booleanPrefix),
			booleanPrefix+casing.Capitalize(name)))
	}

	if id.LazyBacking && (!protected || !strings.HasSuffix(name, lazySuffix)) {
		violations = append(violations, c.violation(id, RuleLazyBacking,
			fmt.Sprintf("lazy-backing property %q must begin with an underscore and end with %q", id.Name, lazySuffix),
			"_"+strings.TrimSuffix(name, lazySuffix)+lazySuffix))
	}

	return violations
}

func (c *Checker) evaluateConstant(id entity.Identifier) []report.Violation {
	// Global constants take no exceptions and no protected marker.
	if casing.Classify(id.Name) == casing.AllCapsUnderscore {
		return nil
	}

	return []report.Violation{c.violation(id, RuleConstantCasing,
		fmt.Sprintf("global constant %q must be ALL_CAPS with underscores", id.Name),
		casing.ToAllCaps(casing.Split(id.Name)))}
}

func (c *Checker) violation(id entity.Identifier, rule, reason, expected string) report.Violation {
	return report.Violation{
		Rule:     rule,
		Kind:     report.KindRuleViolation,
		Severity: report.SeverityError,
		File:     id.File,
		Line:     id.Line,
		Subject:  id.Name,
		Reason:   reason,
		Expected: expected,
	}
}

// hasPrefixWord reports whether name starts with prefix at a camelCase word
// boundary: the prefix is followed by nothing or an uppercase letter.
func hasPrefixWord(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}

	rest := name[len(prefix):]

	return rest == "" || unicode.IsUpper(rune(rest[0]))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
