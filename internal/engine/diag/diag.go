// Package diag defines the structured diagnostics the parser hands back.
// Diagnostics are data, not errors: every one of them is recoverable and
// parsing always continues past the line that produced it.
package diag

import (
	"fmt"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Kind classifies what went wrong with a line of pseudocode.
type Kind int

const (
	// MissingKeyword marks a construct missing a required word, like an IF
	// without THEN or a WHILE that is never closed.
	MissingKeyword Kind = iota
	// IncompleteStatement marks a statement that starts right but stops
	// short, like INPUT with no variable.
	IncompleteStatement
	// InvalidSyntax marks a line no dialect table could claim.
	InvalidSyntax
	// AmbiguousStructure marks a construct that parses but not the way the
	// author probably meant, like a flattened ELSE IF.
	AmbiguousStructure
)

func (k Kind) String() string {
	switch k {
	case MissingKeyword:
		return "missing keyword"
	case IncompleteStatement:
		return "incomplete statement"
	case InvalidSyntax:
		return "invalid syntax"
	case AmbiguousStructure:
		return "ambiguous structure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic points at one source line. Line is the 1-based number of the
// line in the original input, counting the blank lines the tokenizer drops.
// Suggestion, when non-empty, is a remediation hint for the user.
type Diagnostic struct {
	Line       int
	Kind       Kind
	Message    string
	Suggestion string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Kind, d.Message)
}

// Closest returns the candidate nearest to word by edit distance, for
// did-you-mean hints on unrecognized lines. Candidates further away than
// half their own length are rejected: at that distance the match is noise,
// not a typo.
func Closest(word string, candidates []string) (string, bool) {
	wordRunes := []rune(strings.ToUpper(word))

	best := ""
	bestDistance := 0
	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(wordRunes, []rune(candidate), levenshtein.DefaultOptions)
		if best == "" || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	if best == "" || bestDistance > len(best)/2 {
		return "", false
	}
	return best, true
}
