// Package casing classifies identifier strings into casing patterns and
// splits them into word segments.
package casing

import (
	"regexp"
	"strings"
	"unicode"
)

// Pattern is the casing classification of an identifier.
type Pattern string

// Recognized casing patterns. Shapes that fit none of them classify as Other.
const (
	CamelCase         Pattern = "camelCase"
	CapitalCamelCase  Pattern = "CapitalCamelCase"
	AllCapsUnderscore Pattern = "ALL_CAPS"
	SnakeCase         Pattern = "snake_case"
	Other             Pattern = "other"
)

// Pattern shapes. AllCapsUnderscore is the authoritative definition for
// global constants: a leading capital, then capital/digit runs separated by
// single underscores.
var (
	allCapsRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)
	snakeRe   = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	camelRe   = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	capitalRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
)

// Classify maps an identifier to its casing pattern. It is total: empty
// strings, all-digit identifiers and unrecognized shapes map to Other
// rather than erroring. Leading underscores are not stripped here; callers
// that track protected visibility strip them first via StripProtected.
func Classify(identifier string) Pattern {
	if identifier == "" || isAllDigits(identifier) {
		return Other
	}

	switch {
	case allCapsRe.MatchString(identifier):
		return AllCapsUnderscore
	case snakeRe.MatchString(identifier) && strings.ContainsRune(identifier, '_'):
		return SnakeCase
	case camelRe.MatchString(identifier):
		return CamelCase
	case capitalRe.MatchString(identifier):
		return CapitalCamelCase
	default:
		return Other
	}
}

// StripProtected removes a single leading underscore and reports whether
// the identifier carried the protected marker.
func StripProtected(identifier string) (string, bool) {
	if strings.HasPrefix(identifier, "_") {
		return identifier[1:], true
	}

	return identifier, false
}

// Classifier applies a configurable acronym policy on top of Classify.
//
// With CaseSensitiveAcronyms disabled (the lenient policy), an identifier
// that opens with a configured all-caps acronym followed by a camel-shaped
// remainder still counts as camelCase: "URLPath" passes where the strict
// policy demands "urlPath".
type Classifier struct {
	acronyms              map[string]struct{}
	caseSensitiveAcronyms bool
}

// NewClassifier creates a Classifier with the given acronym set and policy.
func NewClassifier(acronyms []string, caseSensitiveAcronyms bool) *Classifier {
	set := make(map[string]struct{}, len(acronyms))
	for _, acronym := range acronyms {
		set[strings.ToUpper(acronym)] = struct{}{}
	}

	return &Classifier{acronyms: set, caseSensitiveAcronyms: caseSensitiveAcronyms}
}

// Classify maps an identifier to its casing pattern under the configured
// acronym policy.
func (c *Classifier) Classify(identifier string) Pattern {
	pattern := Classify(identifier)

	if c.caseSensitiveAcronyms || pattern != CapitalCamelCase && pattern != AllCapsUnderscore {
		return pattern
	}

	rest, found := c.trimLeadingAcronym(identifier)
	if !found {
		return pattern
	}

	if rest == "" || camelRe.MatchString(strings.ToLower(rest[:1])+rest[1:]) {
		return CamelCase
	}

	return pattern
}

// trimLeadingAcronym removes the longest configured acronym prefix.
func (c *Classifier) trimLeadingAcronym(identifier string) (string, bool) {
	for length := len(identifier); length > 1; length-- {
		if _, ok := c.acronyms[identifier[:length]]; ok {
			return identifier[length:], true
		}
	}

	return identifier, false
}

// Split segments an identifier into words. Boundaries are underscores,
// lower-to-upper transitions, and the end of an all-caps run followed by a
// lowercase letter ("parseURLNow" splits into "parse", "URL", "Now").
func Split(identifier string) []string {
	words := make([]string, 0, 4)

	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	runes := []rune(identifier)
	for i, r := range runes {
		switch {
		case r == '_':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || (nextLower && len(current) > 1) {
				flush()
			}

			current = append(current, r)
		default:
			current = append(current, r)
		}
	}

	flush()

	return words
}

// Capitalize upper-cases the first rune of a word.
func Capitalize(word string) string {
	if word == "" {
		return word
	}

	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// ToCamel joins words into a camelCase identifier.
func ToCamel(words []string) string {
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(strings.ToLower(words[0]))

	for _, word := range words[1:] {
		b.WriteString(Capitalize(strings.ToLower(word)))
	}

	return b.String()
}

// ToCapitalCamel joins words into a CapitalCamelCase identifier.
func ToCapitalCamel(words []string) string {
	var b strings.Builder

	for _, word := range words {
		b.WriteString(Capitalize(strings.ToLower(word)))
	}

	return b.String()
}

// ToAllCaps joins words into an ALL_CAPS identifier.
func ToAllCaps(words []string) string {
	upper := make([]string, len(words))
	for i, word := range words {
		upper[i] = strings.ToUpper(word)
	}

	return strings.Join(upper, "_")
}

func isAllDigits(identifier string) bool {
	for _, r := range identifier {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
