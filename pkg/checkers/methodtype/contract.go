package methodtype

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/stylefang/pkg/casing"
	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// Rule identifiers.
const (
	RuleEmptyMethod      = "methodtype/empty-method-name"
	RuleUnclassified     = "methodtype/unclassified"
	RuleParamCount       = "methodtype/param-count"
	RuleReturnContract   = "methodtype/return-contract"
	RuleThrowContract    = "methodtype/throw-contract"
	RuleMutationContract = "methodtype/mutation-contract"
	RuleCalleeContract   = "methodtype/callee-contract"
	RuleInitDelegation   = "methodtype/init-delegation"
	RuleVisibility       = "methodtype/visibility"
	RuleGiveName         = "methodtype/give-name"
)

// calleePolicy restricts which categories a method may call into.
type calleePolicy int

const (
	calleeAny calleePolicy = iota
	calleeNoInit
	calleeGiveValidate
)

// Contract describes a category's obligations: parameter bounds, return and
// throw permissions, mutation permission, callee policy and visibility.
type Contract struct {
	MinParams         int
	RequiresReturn    bool
	ForbidsReturn     bool
	AllowsThrow       bool
	AllowsMutation    bool
	Callees           calleePolicy
	RequiresProtected bool
}

// contracts is the per-category obligation table. Init delegation and the
// Give naming rule are enforced separately because they need the class
// hierarchy and the parameter list.
var contracts = map[Category]Contract{
	CategoryConstructor: {
		ForbidsReturn:  true,
		AllowsThrow:    true,
		AllowsMutation: true,
		Callees:        calleeNoInit,
	},
	CategoryDesignatedInit: {
		ForbidsReturn:  true,
		AllowsThrow:    true,
		AllowsMutation: true,
		Callees:        calleeAny, // init callees are checked by delegation rules.
	},
	CategoryConvenienceInit: {
		ForbidsReturn:  true,
		AllowsThrow:    true,
		AllowsMutation: true,
		Callees:        calleeAny,
	},
	CategoryGive: {
		RequiresReturn: true,
		Callees:        calleeGiveValidate,
	},
	CategoryValidate: {
		MinParams:     1,
		ForbidsReturn: true,
		AllowsThrow:   true,
		Callees:       calleeGiveValidate,
	},
	CategoryDo: {
		ForbidsReturn:  true,
		AllowsThrow:    true,
		AllowsMutation: true,
		Callees:        calleeNoInit,
	},
	CategoryOn: {
		ForbidsReturn:     true,
		AllowsThrow:       true,
		AllowsMutation:    true,
		Callees:           calleeNoInit,
		RequiresProtected: true,
	},
}

// ContractFor returns the obligation table entry for a category.
func ContractFor(category Category) (Contract, bool) {
	contract, ok := contracts[category]

	return contract, ok
}

// Enforce checks every obligation of the category; all checks run, so one
// signature can breach several at once.
func Enforce(sig entity.MethodSignature, category Category, hierarchy entity.Hierarchy) []report.Violation {
	contract, ok := contracts[category]
	if !ok {
		return nil
	}

	var violations []report.Violation

	add := func(rule, reason string) {
		violations = append(violations, newViolation(sig, rule, report.KindRuleViolation, reason))
	}

	if len(sig.Params) < contract.MinParams {
		add(RuleParamCount, fmt.Sprintf("%s method %q requires at least %d parameter(s), has %d",
			category, sig.Name, contract.MinParams, len(sig.Params)))
	}

	if contract.RequiresReturn && !sig.Returns {
		add(RuleReturnContract, fmt.Sprintf("%s method %q must return a value", category, sig.Name))
	}

	if contract.ForbidsReturn && sig.Returns {
		add(RuleReturnContract, fmt.Sprintf("%s method %q must not return a value", category, sig.Name))
	}

	if !contract.AllowsThrow && sig.Throws {
		add(RuleThrowContract, fmt.Sprintf("%s method %q must never throw", category, sig.Name))
	}

	if !contract.AllowsMutation && sig.Mutates {
		add(RuleMutationContract, fmt.Sprintf("%s method %q must not mutate state", category, sig.Name))
	}

	if contract.RequiresProtected && !sig.Protected() {
		add(RuleVisibility, fmt.Sprintf("%s method %q must be protected (leading underscore)", category, sig.Name))
	}

	violations = append(violations, enforceCallees(sig, category, contract)...)
	violations = append(violations, enforceDelegation(sig, category, hierarchy)...)

	if category == CategoryGive {
		violations = append(violations, enforceGiveName(sig)...)
	}

	return violations
}

func enforceCallees(sig entity.MethodSignature, category Category, contract Contract) []report.Violation {
	var violations []report.Violation

	for _, call := range sig.Calls {
		callee := calleeCategory(call.Name)
		isInit := callee == CategoryDesignatedInit

		switch contract.Callees {
		case calleeNoInit:
			if isInit {
				violations = append(violations, newViolation(sig, RuleCalleeContract,
					report.KindRuleViolation,
					fmt.Sprintf("%s method %q must not call initializer %q", category, sig.Name, call.Name)))
			}
		case calleeGiveValidate:
			if callee != CategoryGive && callee != CategoryValidate {
				violations = append(violations, newViolation(sig, RuleCalleeContract,
					report.KindRuleViolation,
					fmt.Sprintf("%s method %q may only call give/validate methods, calls %q", category, sig.Name, call.Name)))
			}
		case calleeAny:
		}
	}

	return violations
}

// enforceDelegation checks the initializer delegation rules against the
// class parent table.
func enforceDelegation(sig entity.MethodSignature, category Category, hierarchy entity.Hierarchy) []report.Violation {
	switch category {
	case CategoryDesignatedInit:
		var violations []report.Violation

		if callsInitOf(sig, hierarchy, false) {
			violations = append(violations, newViolation(sig, RuleInitDelegation,
				report.KindRuleViolation,
				fmt.Sprintf("designated init %q must not delegate to a same-class initializer", sig.Name)))
		}

		if !hierarchy.IsBase(sig.Class) && !callsInitOf(sig, hierarchy, true) {
			violations = append(violations, newViolation(sig, RuleInitDelegation,
				report.KindRuleViolation,
				fmt.Sprintf("designated init %q must call a superclass designated init (class %q is not a base class)",
					sig.Name, sig.Class)))
		}

		return violations
	case CategoryConvenienceInit:
		if callsInitOf(sig, hierarchy, true) {
			return []report.Violation{newViolation(sig, RuleInitDelegation,
				report.KindRuleViolation,
				fmt.Sprintf("convenience init %q must not call a superclass initializer", sig.Name))}
		}

		return nil
	default:
		return nil
	}
}

// enforceGiveName requires a give method's name to end with its first
// parameter name: giving the square root of intValue reads
// "squareRootOfIntValue".
func enforceGiveName(sig entity.MethodSignature) []report.Violation {
	if len(sig.Params) == 0 {
		// Zero-parameter give methods stand in for computed properties.
		return nil
	}

	base, protected := casing.StripProtected(sig.Name)
	suffix := casing.Capitalize(sig.Params[0])

	if strings.HasSuffix(base, suffix) {
		return nil
	}

	expected := base + suffix
	if protected {
		expected = "_" + expected
	}

	violation := newViolation(sig, RuleGiveName, report.KindRuleViolation,
		fmt.Sprintf("give method %q must include its first parameter name %q", sig.Name, sig.Params[0]))
	violation.Expected = expected

	return []report.Violation{violation}
}

