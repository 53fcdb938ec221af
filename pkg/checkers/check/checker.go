// Package check defines the checker contract and the scan runner that fans
// units out across workers and merges their findings.
package check

import (
	"errors"
	"sort"

	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// ErrUnknownChecker is returned when a requested checker is not registered.
var ErrUnknownChecker = errors.New("unknown checker")

// Unit is the per-file slice of a scan stream. The hierarchy is shared
// across units because parent classes may live in other files.
type Unit struct {
	File        string
	Identifiers []entity.Identifier
	Methods     []entity.MethodSignature
	Lines       []entity.LineRecord
	Hierarchy   entity.Hierarchy
}

// Checker evaluates one unit against a family of style rules. Checkers are
// stateless pure functions over their input; the same unit always yields
// the same violations.
type Checker interface {
	Name() string
	Description() string
	Check(unit Unit) []report.Violation
}

// Registry holds the available checkers.
type Registry struct {
	checkers map[string]Checker
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// Register adds a checker, keyed by its Name().
func (r *Registry) Register(c Checker) {
	r.checkers[c.Name()] = c
}

// Get retrieves a checker by name.
func (r *Registry) Get(name string) (Checker, bool) {
	c, ok := r.checkers[name]

	return c, ok
}

// Names returns all registered checker names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// SplitUnits groups a stream into per-file units in sorted file order. File
// paths are the unit key, so entities without a file share one unit.
func SplitUnits(stream *entity.Stream) []Unit {
	hierarchy := entity.BuildHierarchy(stream.Classes)
	byFile := make(map[string]*Unit)

	unitFor := func(file string) *Unit {
		unit, ok := byFile[file]
		if !ok {
			unit = &Unit{File: file, Hierarchy: hierarchy}
			byFile[file] = unit
		}

		return unit
	}

	for _, id := range stream.Identifiers {
		unit := unitFor(id.File)
		unit.Identifiers = append(unit.Identifiers, id)
	}

	for _, method := range stream.Methods {
		unit := unitFor(method.File)
		unit.Methods = append(unit.Methods, method)
	}

	for _, line := range stream.Lines {
		unit := unitFor(line.File)
		unit.Lines = append(unit.Lines, line)
	}

	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}

	sort.Strings(files)

	units := make([]Unit, 0, len(files))
	for _, file := range files {
		units = append(units, *byFile[file])
	}

	return units
}
