package methodtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/methodtype"
	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

func testHierarchy() entity.Hierarchy {
	return entity.BuildHierarchy([]entity.ClassRecord{
		{Name: "Widget"},
		{Name: "Button", Parent: "Widget"},
	})
}

func TestEvaluateDoMethod(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{
		Name:    "doUpdateName",
		Class:   "Widget",
		Params:  []string{"name"},
		Mutates: true,
	}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryDo, category)
	assert.Empty(t, violations)
}

func TestEvaluateZeroParamValidate(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Name: "validate", Class: "Widget"}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryValidate, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleParamCount, violations[0].Rule)
}

func TestEvaluateGiveNameSuffix(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{
		Name:    "squareRootOf",
		Class:   "Widget",
		Params:  []string{"intValue"},
		Returns: true,
	}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryGive, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleGiveName, violations[0].Rule)
	assert.Equal(t, "squareRootOfIntValue", violations[0].Expected)
}

// TestEvaluateGiveNameKeepsProtectedMarker verifies the suggested rename for
// a protected give method keeps the leading underscore.
func TestEvaluateGiveNameKeepsProtectedMarker(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{
		Name:    "_squareRootOf",
		Class:   "Widget",
		Params:  []string{"intValue"},
		Returns: true,
	}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryGive, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleGiveName, violations[0].Rule)
	assert.Equal(t, "_squareRootOfIntValue", violations[0].Expected)
}

func TestEvaluateGiveZeroParamsExempt(t *testing.T) {
	t.Parallel()

	// A zero-parameter give method stands in for a computed property and is
	// exempt from the parameter-name suffix rule.
	sig := entity.MethodSignature{Name: "titleForDisplay", Class: "Widget", Returns: true}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryGive, category)
	assert.Empty(t, violations)
}

// TestEvaluateReturningMethodWithoutPreposition verifies a returning method
// whose name is not a noun phrase with a preposition is reported as
// ambiguous rather than silently claiming give.
func TestEvaluateReturningMethodWithoutPreposition(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Name: "update", Class: "Widget", Returns: true}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryUnclassified, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleUnclassified, violations[0].Rule)
	assert.Equal(t, report.KindAmbiguousClassification, violations[0].Kind)
}

func TestEvaluateGiveContract(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{
		Name:    "totalWeightOfItems",
		Class:   "Widget",
		Params:  []string{"items"},
		Returns: true,
		Mutates: true,
		Throws:  true,
		Calls:   []entity.Call{{Class: "Widget", Name: "doRecount"}},
	}

	_, violations := methodtype.Evaluate(sig, testHierarchy())

	rules := rulesOf(violations)
	assert.Contains(t, rules, methodtype.RuleMutationContract)
	assert.Contains(t, rules, methodtype.RuleThrowContract)
	assert.Contains(t, rules, methodtype.RuleCalleeContract)
}

func TestClassifyInitDelegation(t *testing.T) {
	t.Parallel()

	hierarchy := testHierarchy()

	// Delegating up the hierarchy makes the init designated.
	designated := entity.MethodSignature{
		Name:   "initWithLabel",
		Class:  "Button",
		Params: []string{"label"},
		Calls:  []entity.Call{{Class: "Widget", Name: "init"}},
	}
	assert.Equal(t, methodtype.CategoryDesignatedInit, methodtype.Classify(designated, hierarchy))

	_, violations := methodtype.Evaluate(designated, hierarchy)
	assert.Empty(t, violations)

	// Delegating across the same class makes it convenience.
	convenience := entity.MethodSignature{
		Name:  "init",
		Class: "Button",
		Calls: []entity.Call{{Class: "Button", Name: "initWithLabel"}},
	}
	assert.Equal(t, methodtype.CategoryConvenienceInit, methodtype.Classify(convenience, hierarchy))

	_, violations = methodtype.Evaluate(convenience, hierarchy)
	assert.Empty(t, violations)
}

func TestEvaluateDesignatedInitMissingSuperCall(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Name: "init", Class: "Button"}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryDesignatedInit, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleInitDelegation, violations[0].Rule)
}

func TestEvaluateDesignatedInitOnBaseClass(t *testing.T) {
	t.Parallel()

	// Widget has no parent, so its designated init delegates nowhere.
	sig := entity.MethodSignature{Name: "init", Class: "Widget"}

	_, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Empty(t, violations)
}

func TestEvaluateUnknownClassTreatedAsBase(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Name: "init", Class: "Mystery"}

	_, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Empty(t, violations)
}

func TestEvaluateOnVisibility(t *testing.T) {
	t.Parallel()

	hierarchy := testHierarchy()

	public := entity.MethodSignature{Name: "onClick", Class: "Button", Mutates: true}

	category, violations := methodtype.Evaluate(public, hierarchy)

	assert.Equal(t, methodtype.CategoryOn, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleVisibility, violations[0].Rule)

	protected := entity.MethodSignature{Name: "_onClick", Class: "Button", Mutates: true}

	category, violations = methodtype.Evaluate(protected, hierarchy)

	assert.Equal(t, methodtype.CategoryOn, category)
	assert.Empty(t, violations)
}

func TestEvaluateConstructor(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Name: "Widget", Class: "Widget", Params: []string{"title"}}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryConstructor, category)
	assert.Empty(t, violations)
}

func TestEvaluateUnclassified(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Name: "update", Class: "Widget"}

	category, violations := methodtype.Evaluate(sig, testHierarchy())

	assert.Equal(t, methodtype.CategoryUnclassified, category)
	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleUnclassified, violations[0].Rule)
	assert.Equal(t, report.KindAmbiguousClassification, violations[0].Kind)
	assert.Equal(t, report.SeverityWarning, violations[0].Severity)
}

func TestEvaluateEmptyMethodName(t *testing.T) {
	t.Parallel()

	sig := entity.MethodSignature{Class: "Widget"}

	_, violations := methodtype.Evaluate(sig, testHierarchy())

	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleEmptyMethod, violations[0].Rule)
	assert.Equal(t, report.KindRuleViolation, violations[0].Kind)
}

func TestClassifyPrefixWordBoundary(t *testing.T) {
	t.Parallel()

	hierarchy := testHierarchy()

	// "downloadsForUser" starts with "do" lexically but not at a word
	// boundary.
	sig := entity.MethodSignature{Name: "downloadsForUser", Class: "Widget", Returns: true}
	assert.Equal(t, methodtype.CategoryGive, methodtype.Classify(sig, hierarchy))

	// "once" starts with "on" lexically but not at a word boundary.
	sig = entity.MethodSignature{Name: "once", Class: "Widget"}
	assert.Equal(t, methodtype.CategoryUnclassified, methodtype.Classify(sig, hierarchy))
}

func TestCheckWalksUnitMethods(t *testing.T) {
	t.Parallel()

	unit := check.Unit{
		File:      "widget.py",
		Hierarchy: testHierarchy(),
		Methods: []entity.MethodSignature{
			{Name: "doRefresh", Class: "Widget", Mutates: true, File: "widget.py", Line: 10},
			{Name: "validate", Class: "Widget", File: "widget.py", Line: 20},
		},
	}

	violations := methodtype.NewChecker().Check(unit)

	require.Len(t, violations, 1)
	assert.Equal(t, methodtype.RuleParamCount, violations[0].Rule)
	assert.Equal(t, "validate", violations[0].Subject)
}

func rulesOf(violations []report.Violation) []string {
	rules := make([]string, 0, len(violations))
	for _, v := range violations {
		rules = append(rules, v.Rule)
	}

	return rules
}
