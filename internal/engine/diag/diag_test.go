package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "missing keyword", MissingKeyword.String())
	assert.Equal(t, "incomplete statement", IncompleteStatement.String())
	assert.Equal(t, "invalid syntax", InvalidSyntax.String())
	assert.Equal(t, "ambiguous structure", AmbiguousStructure.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Line:    3,
		Kind:    InvalidSyntax,
		Message: `cannot make sense of "???"`,
	}
	assert.Equal(t, `line 3: invalid syntax: cannot make sense of "???"`, d.String())
}

func TestClosestFindsTypo(t *testing.T) {
	candidates := []string{"START", "END", "PRINT", "INPUT", "END IF", "WHILE"}

	near, ok := Closest("PRNT", candidates)
	require.True(t, ok)
	assert.Equal(t, "PRINT", near)

	// matching is case-insensitive on the probe side
	near, ok = Closest("prnt", candidates)
	require.True(t, ok)
	assert.Equal(t, "PRINT", near)

	near, ok = Closest("END FI", candidates)
	require.True(t, ok)
	assert.Equal(t, "END IF", near)
}

func TestClosestRejectsNoise(t *testing.T) {
	candidates := []string{"START", "END", "PRINT", "INPUT"}

	_, ok := Closest("zzzzzzzz", candidates)
	assert.False(t, ok)

	_, ok = Closest("velocity", candidates)
	assert.False(t, ok)
}

func TestClosestEmptyCandidates(t *testing.T) {
	_, ok := Closest("PRINT", nil)
	assert.False(t, ok)
}
