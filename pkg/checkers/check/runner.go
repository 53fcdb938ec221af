package check

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// Runner executes checkers over a scan stream with bounded parallelism.
// Units are independent pure computations, so scheduling never affects the
// result: per-unit findings are merged by unit index and the report builder
// imposes the final order.
type Runner struct {
	registry *Registry
	workers  int
}

// NewRunner creates a Runner. A non-positive worker count selects
// runtime.NumCPU().
func NewRunner(registry *Registry, workers int) *Runner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Runner{registry: registry, workers: workers}
}

// Run executes the named checkers (all registered checkers when names is
// empty) over the stream and builds the scan result.
func (r *Runner) Run(ctx context.Context, stream *entity.Stream, names []string) (report.Result, error) {
	checkers, err := r.resolve(names)
	if err != nil {
		return report.Result{}, err
	}

	units := SplitUnits(stream)
	perUnit := make([][]report.Violation, len(units))

	if err := r.runUnits(ctx, units, checkers, perUnit); err != nil {
		return report.Result{}, err
	}

	builder := report.NewBuilder()
	for _, violations := range perUnit {
		builder.Add(violations...)
	}

	builder.SetScanned(len(stream.Identifiers), len(stream.Methods), len(stream.Lines))

	return builder.Build(), nil
}

func (r *Runner) resolve(names []string) ([]Checker, error) {
	if len(names) == 0 {
		names = r.registry.Names()
	}

	checkers := make([]Checker, 0, len(names))

	for _, name := range names {
		checker, ok := r.registry.Get(name)
		if !ok {
			if suggestion := closestName(name, r.registry.Names()); suggestion != "" {
				return nil, fmt.Errorf("%w: %s (did you mean %q?)", ErrUnknownChecker, name, suggestion)
			}

			return nil, fmt.Errorf("%w: %s", ErrUnknownChecker, name)
		}

		checkers = append(checkers, checker)
	}

	return checkers, nil
}

func (r *Runner) runUnits(ctx context.Context, units []Unit, checkers []Checker, perUnit [][]report.Violation) error {
	if len(units) == 0 {
		return nil
	}

	if len(units) == 1 || r.workers == 1 {
		for i, unit := range units {
			if ctx.Err() != nil {
				return fmt.Errorf("scan cancelled: %w", ctx.Err())
			}

			perUnit[i] = checkUnit(unit, checkers)
		}

		return nil
	}

	var wg sync.WaitGroup

	sem := make(chan struct{}, r.workers)

	for i, unit := range units {
		wg.Add(1)

		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			perUnit[i] = checkUnit(unit, checkers)
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return fmt.Errorf("scan cancelled: %w", ctx.Err())
	}

	return nil
}

func checkUnit(unit Unit, checkers []Checker) []report.Violation {
	var violations []report.Violation

	for _, checker := range checkers {
		violations = append(violations, checker.Check(unit)...)
	}

	return violations
}
