package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/diag"
)

// Convert fans emitters out across goroutines; none may outlive the call.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const countdownSrc = `SET n = 3
WHILE n > 0
  PRINT n
  SET n = n - 1
END WHILE
PRINT "liftoff"`

func TestConvertRendersEveryRequestedTarget(t *testing.T) {
	targets := Targets()
	res, err := Convert(countdownSrc, targets)
	require.NoError(t, err)

	assert.Empty(t, res.Diagnostics)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Outputs, len(targets))
	for _, target := range targets {
		assert.NotEmpty(t, res.Outputs[target], "target %s produced no code", target)
	}

	assert.Contains(t, res.Outputs["python"], "while n > 0:")
	assert.Contains(t, res.Outputs["go"], "for n > 0 {")
	assert.Contains(t, res.Outputs["rust"], "while n > 0 {")
}

func TestConvertIsolatesUnsupportedTargets(t *testing.T) {
	res, err := Convert(countdownSrc, []Target{"python", "cobol"})
	require.NoError(t, err)

	assert.Contains(t, res.Outputs, Target("python"))
	assert.NotContains(t, res.Outputs, Target("cobol"))
	require.Contains(t, res.Errors, Target("cobol"))
	assert.EqualError(t, res.Errors["cobol"], `unsupported target "cobol"`)
}

func TestConvertEmptySource(t *testing.T) {
	res, err := Convert("", []Target{"python"})
	assert.ErrorIs(t, err, ErrEmptyProgram)

	require.NotNil(t, res)
	assert.Empty(t, res.Outputs)
	assert.Empty(t, res.Diagnostics)
}

func TestConvertKeepsDiagnosticsOnEmptyParse(t *testing.T) {
	// nothing parseable, but the caller still gets told why
	res, err := Convert("???", []Target{"python"})
	assert.ErrorIs(t, err, ErrEmptyProgram)

	require.NotNil(t, res)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.InvalidSyntax, res.Diagnostics[0].Kind)
	assert.Equal(t, 1, res.Diagnostics[0].Line)
}

func TestConvertDiagnosticsDoNotBlockOutput(t *testing.T) {
	res, err := Convert("IF x > 0 THEN\nPRINT x", []Target{"python"})
	require.NoError(t, err)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.MissingKeyword, res.Diagnostics[0].Kind)
	assert.Contains(t, res.Outputs["python"], "if x > 0:")
}

func TestConvertDeterministic(t *testing.T) {
	targets := Targets()
	first, err := Convert(countdownSrc, targets)
	require.NoError(t, err)

	for range 10 {
		next, err := Convert(countdownSrc, targets)
		require.NoError(t, err)
		assert.Equal(t, first.Outputs, next.Outputs)
		assert.Equal(t, first.Diagnostics, next.Diagnostics)
	}
}

func TestConvertToFlowchart(t *testing.T) {
	res, err := ConvertToFlowchart(countdownSrc)
	require.NoError(t, err)

	assert.Empty(t, res.Diagnostics)
	assert.Contains(t, res.Diagram, "graph TD")
	assert.Contains(t, res.Diagram, `{"n > 0"}`)
}

func TestConvertToFlowchartEmptySource(t *testing.T) {
	res, err := ConvertToFlowchart("")
	assert.ErrorIs(t, err, ErrEmptyProgram)
	require.NotNil(t, res)
	assert.Empty(t, res.Diagram)
}

func TestTargetsFixedOrder(t *testing.T) {
	want := []Target{"cpp", "csharp", "go", "java", "javascript", "pseudocode", "python", "rust"}
	assert.Equal(t, want, Targets())
}

func TestParseExposesTree(t *testing.T) {
	prog := Parse(countdownSrc)
	require.NotNil(t, prog)
	assert.Len(t, prog.Statements, 3)
	assert.True(t, prog.HasOutput)
	assert.Equal(t, []string{"n"}, prog.VariableNames())
}
