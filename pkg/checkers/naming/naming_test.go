package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/naming"
	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

func newChecker() *naming.Checker {
	return naming.NewChecker(naming.Config{
		FolderExceptions: []string{".ssh", "node_modules"},
		FileExceptions:   []string{"__init__", "authorized_keys"},
	})
}

func TestEvaluateSnakeCaseProperty(t *testing.T) {
	t.Parallel()

	id := entity.Identifier{Name: "my_property", Role: entity.RoleProperty}

	violations := newChecker().Evaluate(id)

	require.Len(t, violations, 1)
	assert.Equal(t, naming.RulePropertyCasing, violations[0].Rule)
	assert.Equal(t, report.KindRuleViolation, violations[0].Kind)
	assert.Equal(t, "myProperty", violations[0].Expected)
	assert.NotEmpty(t, violations[0].Reason)
}

func TestEvaluateCompliantEnum(t *testing.T) {
	t.Parallel()

	id := entity.Identifier{Name: "EnColor", Role: entity.RoleEnum}

	assert.Empty(t, newChecker().Evaluate(id))
}

func TestEvaluateEnumRules(t *testing.T) {
	t.Parallel()

	checker := newChecker()

	// Missing En prefix.
	violations := checker.Evaluate(entity.Identifier{Name: "Color", Role: entity.RoleEnum})
	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleEnumPrefix, violations[0].Rule)
	assert.Equal(t, "EnColor", violations[0].Expected)

	// Plural name is a warning, not a hard failure.
	violations = checker.Evaluate(entity.Identifier{Name: "EnColors", Role: entity.RoleEnum})
	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleEnumSingular, violations[0].Rule)
	assert.Equal(t, report.SeverityWarning, violations[0].Severity)

	// Singular-looking endings defeat the heuristic.
	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "EnStatus", Role: entity.RoleEnum}))
	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "EnAxis", Role: entity.RoleEnum}))

	// A single identifier can breach several rules at once.
	violations = checker.Evaluate(entity.Identifier{Name: "colors", Role: entity.RoleEnum})
	assert.Len(t, violations, 3)
}

func TestEvaluateFolderAndFileExceptions(t *testing.T) {
	t.Parallel()

	checker := newChecker()

	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: ".ssh", Role: entity.RoleFolder}))
	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "__init__", Role: entity.RoleFile}))

	violations := checker.Evaluate(entity.Identifier{Name: "my_folder", Role: entity.RoleFolder})
	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleFolderCasing, violations[0].Rule)
	assert.Equal(t, "MyFolder", violations[0].Expected)
}

func TestEvaluateCamelRoles(t *testing.T) {
	t.Parallel()

	checker := newChecker()

	for _, role := range []entity.Role{
		entity.RoleFunction, entity.RoleMethod, entity.RoleParameter, entity.RoleLocalVariable,
	} {
		assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "doUpdateName", Role: role}))
		assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "_doUpdateName", Role: role}),
			"leading underscore marks protected, remainder must pass")

		violations := checker.Evaluate(entity.Identifier{Name: "Do_Update", Role: role})
		require.Len(t, violations, 1, role)
		assert.Equal(t, naming.RuleCamelCasing, violations[0].Rule)
		assert.Equal(t, "doUpdate", violations[0].Expected)
	}
}

func TestEvaluateOverrideExemption(t *testing.T) {
	t.Parallel()

	id := entity.Identifier{Name: "Handle_Event", Role: entity.RoleMethod, Override: true}

	assert.Empty(t, newChecker().Evaluate(id))
}

func TestEvaluatePropertyFlags(t *testing.T) {
	t.Parallel()

	checker := newChecker()

	// Boolean property must carry the is prefix.
	violations := checker.Evaluate(entity.Identifier{Name: "ready", Role: entity.RoleProperty, Boolean: true})
	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleBooleanPrefix, violations[0].Rule)
	assert.Equal(t, "isReady", violations[0].Expected)

	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "isReady", Role: entity.RoleProperty, Boolean: true}))

	// Lazy-backing property must be protected and end in Lazy.
	violations = checker.Evaluate(entity.Identifier{Name: "total", Role: entity.RoleProperty, LazyBacking: true})
	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleLazyBacking, violations[0].Rule)
	assert.Equal(t, "_totalLazy", violations[0].Expected)

	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "_totalLazy", Role: entity.RoleProperty, LazyBacking: true}))
}

func TestEvaluateGlobalConstant(t *testing.T) {
	t.Parallel()

	checker := newChecker()

	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "MAX_RETRY_COUNT", Role: entity.RoleGlobalConstant}))

	violations := checker.Evaluate(entity.Identifier{Name: "maxRetryCount", Role: entity.RoleGlobalConstant})
	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleConstantCasing, violations[0].Rule)
	assert.Equal(t, "MAX_RETRY_COUNT", violations[0].Expected)
}

func TestEvaluateEmptyIdentifier(t *testing.T) {
	t.Parallel()

	violations := newChecker().Evaluate(entity.Identifier{Name: "", Role: entity.RoleClass})

	require.Len(t, violations, 1)
	assert.Equal(t, naming.RuleEmptyIdentifier, violations[0].Rule)
	assert.Equal(t, report.KindRuleViolation, violations[0].Kind)
}

// TestEvaluateIdempotent verifies evaluation is a pure function: the same
// identifier yields identical violation sequences on repeated runs.
func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()

	checker := newChecker()
	id := entity.Identifier{Name: "colors", Role: entity.RoleEnum, File: "Model.py", Line: 4}

	first := checker.Evaluate(id)
	second := checker.Evaluate(id)

	assert.Equal(t, first, second)
}

// TestEvaluateRoleTieBreak verifies the role-declared expectation wins for
// identifiers that fit several degenerate patterns.
func TestEvaluateRoleTieBreak(t *testing.T) {
	t.Parallel()

	checker := newChecker()

	// "x" is valid camelCase; it is not a valid constant.
	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "x", Role: entity.RoleLocalVariable}))
	assert.Len(t, checker.Evaluate(entity.Identifier{Name: "x", Role: entity.RoleGlobalConstant}), 1)

	// "X" is a degenerate constant; it is not camelCase.
	assert.Empty(t, checker.Evaluate(entity.Identifier{Name: "X", Role: entity.RoleGlobalConstant}))
	assert.Len(t, checker.Evaluate(entity.Identifier{Name: "X", Role: entity.RoleParameter}), 1)
}

func TestCheckWalksUnitIdentifiers(t *testing.T) {
	t.Parallel()

	unit := check.Unit{
		File: "model.py",
		Identifiers: []entity.Identifier{
			{Name: "my_property", Role: entity.RoleProperty, File: "model.py", Line: 3},
			{Name: "EnColor", Role: entity.RoleEnum, File: "model.py", Line: 8},
		},
	}

	violations := newChecker().Check(unit)

	require.Len(t, violations, 1)
	assert.Equal(t, "my_property", violations[0].Subject)
}

func TestAcronymPolicyConfigurable(t *testing.T) {
	t.Parallel()

	lenient := naming.NewChecker(naming.Config{
		Acronyms:              []string{"URL"},
		CaseSensitiveAcronyms: false,
	})
	strict := naming.NewChecker(naming.Config{
		Acronyms:              []string{"URL"},
		CaseSensitiveAcronyms: true,
	})

	id := entity.Identifier{Name: "URLPath", Role: entity.RoleParameter}

	assert.Empty(t, lenient.Evaluate(id))
	assert.Len(t, strict.Evaluate(id), 1)
}
