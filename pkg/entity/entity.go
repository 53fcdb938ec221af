// Package entity defines the scan input model produced by an external
// source-code parser: identifiers with declared roles, method signatures,
// class hierarchy records, and raw source lines.
package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownRole is returned when a role tag is not one of the known roles.
var ErrUnknownRole = errors.New("unknown identifier role")

// Role declares what kind of program element an identifier names.
type Role string

// Known identifier roles.
const (
	RoleFolder         Role = "folder"
	RoleFile           Role = "file"
	RoleClass          Role = "class"
	RoleFunction       Role = "function"
	RoleMethod         Role = "method"
	RoleParameter      Role = "parameter"
	RoleLocalVariable  Role = "local_variable"
	RoleProperty       Role = "property"
	RoleEnum           Role = "enum"
	RoleGlobalConstant Role = "global_constant"
)

// KnownRoles returns all roles in declaration order.
func KnownRoles() []Role {
	return []Role{
		RoleFolder, RoleFile, RoleClass, RoleFunction, RoleMethod,
		RoleParameter, RoleLocalVariable, RoleProperty, RoleEnum,
		RoleGlobalConstant,
	}
}

// ParseRole validates a role tag.
func ParseRole(tag string) (Role, error) {
	for _, role := range KnownRoles() {
		if string(role) == tag {
			return role, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRole, tag)
}

// Identifier is a named program element with its declared role and the
// contextual flags the naming rules need. Immutable once constructed.
type Identifier struct {
	Name string `json:"name"                  yaml:"name"`
	Role Role   `json:"role"                  yaml:"role"`
	File string `json:"file,omitempty"        yaml:"file,omitempty"`
	Line int    `json:"line,omitempty"        yaml:"line,omitempty"`

	// Override marks an identifier whose shape is imposed by an external
	// signature (framework callback, inherited API).
	Override bool `json:"override,omitempty" yaml:"override,omitempty"`

	// Boolean marks a boolean-typed property.
	Boolean bool `json:"boolean,omitempty"  yaml:"boolean,omitempty"`

	// LazyBacking marks the backing property of a lazily computed value.
	LazyBacking bool `json:"lazy_backing,omitempty" yaml:"lazy_backing,omitempty"`
}

// Call describes one outgoing call from a method body: the declared class
// of the callee and the callee method name.
type Call struct {
	Class string `json:"class" yaml:"class"`
	Name  string `json:"name"  yaml:"name"`
}

// MethodSignature is the structural summary of a method the classifier
// works from: name, ordered parameters, return/throw/mutation flags and the
// calls the body makes.
type MethodSignature struct {
	Name    string   `json:"name"              yaml:"name"`
	Class   string   `json:"class,omitempty"   yaml:"class,omitempty"`
	Params  []string `json:"params,omitempty"  yaml:"params,omitempty"`
	Returns bool     `json:"returns,omitempty" yaml:"returns,omitempty"`
	Throws  bool     `json:"throws,omitempty"  yaml:"throws,omitempty"`
	Mutates bool     `json:"mutates,omitempty" yaml:"mutates,omitempty"`
	Calls   []Call   `json:"calls,omitempty"   yaml:"calls,omitempty"`
	File    string   `json:"file,omitempty"    yaml:"file,omitempty"`
	Line    int      `json:"line,omitempty"    yaml:"line,omitempty"`
}

// Protected reports whether the method name carries the leading-underscore
// protected marker. It is a naming convention, not an access-control
// mechanism.
func (m MethodSignature) Protected() bool {
	return len(m.Name) > 0 && m.Name[0] == '_'
}

// ClassRecord stores one class and an optional reference to its declared
// parent. The hierarchy is an explicit lookup table walked iteratively, not
// language inheritance.
type ClassRecord struct {
	Name   string `json:"name"             yaml:"name"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
	File   string `json:"file,omitempty"   yaml:"file,omitempty"`
	Line   int    `json:"line,omitempty"   yaml:"line,omitempty"`
}

// Hierarchy indexes class records by name.
type Hierarchy map[string]ClassRecord

// BuildHierarchy indexes class records for parent lookups.
func BuildHierarchy(classes []ClassRecord) Hierarchy {
	h := make(Hierarchy, len(classes))
	for _, class := range classes {
		h[class.Name] = class
	}

	return h
}

// IsBase reports whether the class has no declared parent. Unknown classes
// count as base classes: without a record there is no chain to walk.
func (h Hierarchy) IsBase(class string) bool {
	record, ok := h[class]

	return !ok || record.Parent == ""
}

// IsAncestor reports whether ancestor appears on the parent chain of class.
// The walk is iterative and bounded by the table size, so parent cycles
// cannot loop forever.
func (h Hierarchy) IsAncestor(class, ancestor string) bool {
	if class == "" || ancestor == "" {
		return false
	}

	current := class
	for range len(h) + 1 {
		record, ok := h[current]
		if !ok || record.Parent == "" {
			return false
		}

		if record.Parent == ancestor {
			return true
		}

		current = record.Parent
	}

	return false
}

// LineRecord is one raw source line for the formatting rules.
type LineRecord struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Stream is one decoded scan input.
type Stream struct {
	Identifiers []Identifier      `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
	Methods     []MethodSignature `json:"methods,omitempty"     yaml:"methods,omitempty"`
	Classes     []ClassRecord     `json:"classes,omitempty"     yaml:"classes,omitempty"`
	Lines       []LineRecord      `json:"lines,omitempty"       yaml:"lines,omitempty"`
}
