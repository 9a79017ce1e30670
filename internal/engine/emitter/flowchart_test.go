package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/parser"
)

func flowchart(t *testing.T, src string) string {
	t.Helper()
	out, err := EmitFlowchart(parser.Parse(src))
	require.NoError(t, err)
	return out
}

func TestFlowchartEmptyProgram(t *testing.T) {
	_, err := EmitFlowchart(parser.Parse(""))
	assert.ErrorIs(t, err, ErrEmptyProgram)

	_, err = EmitFlowchart(nil)
	assert.ErrorIs(t, err, ErrEmptyProgram)
}

func TestFlowchartStraightLine(t *testing.T) {
	src := `INPUT n
SET double = n * 2
PRINT double`
	want := `graph TD
    N0(["Start"])
    N1[/"INPUT n"/]
    N0 --> N1
    N2["double = n * 2"]
    N1 --> N2
    N3[/"OUTPUT double"/]
    N2 --> N3
    N4(["End"])
    N3 --> N4
`
	assert.Equal(t, want, flowchart(t, src))
}

func TestFlowchartBranchWithEmptyElse(t *testing.T) {
	src := `IF x > 0 THEN
PRINT "yes"
END IF`
	want := `graph TD
    N0(["Start"])
    N1{"x > 0"}
    N0 --> N1
    N2[/"OUTPUT #quot;yes#quot;"/]
    N1 -->|yes| N2
    N3(("merge"))
    N2 --> N3
    N1 -->|no| N3
    N4(["End"])
    N3 --> N4
`
	assert.Equal(t, want, flowchart(t, src))
}

func TestFlowchartWhileBackEdge(t *testing.T) {
	src := `WHILE x < 3
SET x = x + 1
END WHILE`
	want := `graph TD
    N0(["Start"])
    N1{"x < 3"}
    N0 --> N1
    N2["x = x + 1"]
    N1 -->|iterate| N2
    N2 --> N1
    N3(("continue"))
    N1 -->|exit| N3
    N4(["End"])
    N3 --> N4
`
	assert.Equal(t, want, flowchart(t, src))
}

func TestFlowchartEmptyLoopSelfLoops(t *testing.T) {
	src := `WHILE x > 0
END WHILE`
	want := `graph TD
    N0(["Start"])
    N1{"x > 0"}
    N0 --> N1
    N1 -->|iterate| N1
    N2(("continue"))
    N1 -->|exit| N2
    N3(["End"])
    N2 --> N3
`
	assert.Equal(t, want, flowchart(t, src))
}

func TestFlowchartForLabel(t *testing.T) {
	out := flowchart(t, "FOR i = 1 TO 3\nPRINT i\nNEXT")
	assert.Contains(t, out, `N1{"i = 1 to 3"}`)

	out = flowchart(t, "FOR i = 5 TO 1 STEP -1\nPRINT i\nNEXT")
	assert.Contains(t, out, `N1{"i = 5 to 1 step -1"}`)
}

func TestFlowchartSkipsCommentsAndMarkers(t *testing.T) {
	src := `START
// setup
SET x = 1
END`
	want := `graph TD
    N0(["Start"])
    N1["x = 1"]
    N0 --> N1
    N2(["End"])
    N1 --> N2
`
	assert.Equal(t, want, flowchart(t, src))
}

func TestFlowchartEscapesQuotes(t *testing.T) {
	out := flowchart(t, `PRINT "a \"b\" c"`)
	assert.NotContains(t, out, `""`)
	assert.Contains(t, out, "#quot;")
}

func TestFlowchartDeterministic(t *testing.T) {
	src := sumProgram
	first := flowchart(t, src)
	for range 10 {
		assert.Equal(t, first, flowchart(t, src))
	}
}
