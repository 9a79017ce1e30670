// Package emitter renders a parsed program as source text in one of the
// supported target languages, as canonical pseudocode, or as a Mermaid
// flowchart. Emitters are pure: same tree in, same text out, and the tree
// is never mutated, so one tree can feed many emitters concurrently.
package emitter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
)

// Target names one output language.
type Target string

const (
	Pseudocode Target = "pseudocode"
	Python     Target = "python"
	JavaScript Target = "javascript"
	Java       Target = "java"
	CSharp     Target = "csharp"
	CPP        Target = "cpp"
	Go         Target = "go"
	Rust       Target = "rust"
)

// ErrEmptyProgram is returned before any emitter runs when the parse
// produced no top-level statements at all.
var ErrEmptyProgram = errors.New("program has no statements to convert")

// UnsupportedTargetError names a target no emitter exists for.
type UnsupportedTargetError struct {
	Target Target
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("unsupported target %q", string(e.Target))
}

type emitFunc func(*ast.Program) string

var emitters = map[Target]emitFunc{
	Pseudocode: emitPseudocode,
	Python:     emitPython,
	JavaScript: emitJavaScript,
	Java:       emitJava,
	CSharp:     emitCSharp,
	CPP:        emitCPP,
	Go:         emitGo,
	Rust:       emitRust,
}

// Targets returns every supported target, sorted.
func Targets() []Target {
	ts := make([]Target, 0, len(emitters))
	for t := range emitters {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts
}

// Emit renders prog as target source. It fails whole or not at all: a bad
// target or an empty program returns an error and no partial text.
func Emit(prog *ast.Program, target Target) (string, error) {
	if prog == nil || len(prog.Statements) == 0 {
		return "", ErrEmptyProgram
	}
	fn, ok := emitters[target]
	if !ok {
		return "", &UnsupportedTargetError{Target: target}
	}
	return fn(prog), nil
}

// --- Shared rendering helpers ---

// writer accumulates indented lines of generated source.
type writer struct {
	buf    strings.Builder
	tab    string
	indent int
}

func newWriter(tab string) *writer { return &writer{tab: tab} }

func (w *writer) line(format string, args ...any) {
	w.buf.WriteString(strings.Repeat(w.tab, w.indent))
	if len(args) == 0 {
		// verbatim so % in user expressions survives
		w.buf.WriteString(format)
	} else {
		fmt.Fprintf(&w.buf, format, args...)
	}
	w.buf.WriteByte('\n')
}

func (w *writer) blank() { w.buf.WriteByte('\n') }

func (w *writer) in()  { w.indent++ }
func (w *writer) out() { w.indent-- }

func (w *writer) String() string { return w.buf.String() }

// isQuoted reports whether an output message carries its own double quotes,
// which makes it a string literal rather than an expression.
func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// descending reports whether a step expression is a literal negative
// number, the one case where a loop's direction is knowable from text.
func descending(step string) bool {
	return strings.HasPrefix(step, "-")
}

// hasCode reports whether any statement in the block produces actual code,
// as opposed to comments and program boundary markers.
func hasCode(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		switch s.(type) {
		case *ast.Comment, *ast.Start, *ast.End:
		default:
			return true
		}
	}
	return false
}
