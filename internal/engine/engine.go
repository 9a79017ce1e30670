// Package engine is the public face of the converter: parse once, emit many.
// The engine holds no state between calls, reads no files or environment,
// and performs no network I/O. Persistence, transport, and presentation are
// the caller's business.
package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/diag"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/emitter"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/parser"
)

// Target re-exports emitter.Target so callers only import this package.
type Target = emitter.Target

// ErrEmptyProgram re-exports the emitters' hard failure for parses that
// produce no statements at all.
var ErrEmptyProgram = emitter.ErrEmptyProgram

// Result holds everything one Convert call produced. Outputs carries the
// targets that rendered; Errors carries the ones that did not, keyed the
// same way. Diagnostics are parse-level and shared by every target.
type Result struct {
	Outputs     map[Target]string
	Errors      map[Target]error
	Diagnostics []diag.Diagnostic
}

// FlowchartResult pairs the Mermaid text with the parse diagnostics.
type FlowchartResult struct {
	Diagram     string
	Diagnostics []diag.Diagnostic
}

// Targets returns the supported target names, sorted.
func Targets() []Target { return emitter.Targets() }

// Parse exposes the bare parse for callers that want the tree itself, like
// debugging dumps.
func Parse(src string) *ast.Program { return parser.Parse(src) }

// Convert parses src once and renders every requested target from the same
// tree, concurrently. Failures are isolated per target: an unsupported name
// lands in Result.Errors while the rest still render. When the parse yields
// no statements Convert returns ErrEmptyProgram before any emitter runs;
// the Result still carries the diagnostics, which is usually exactly what
// the caller needs to show.
func Convert(src string, targets []Target) (*Result, error) {
	prog := parser.Parse(src)
	res := &Result{
		Outputs:     make(map[Target]string, len(targets)),
		Errors:      make(map[Target]error),
		Diagnostics: prog.Diagnostics,
	}
	if len(prog.Statements) == 0 {
		return res, ErrEmptyProgram
	}

	// The tree is read-only from here on, so the emitters can fan out.
	// Each worker writes only its own slot; the maps are assembled after
	// Wait so the result is deterministic regardless of scheduling.
	outputs := make([]string, len(targets))
	errs := make([]error, len(targets))

	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target // per-iteration copies; go directive predates Go 1.22 loopvar
		g.Go(func() error {
			outputs[i], errs[i] = emitter.Emit(prog, target)
			return nil
		})
	}
	// Workers never return errors; failures are per-slot.
	_ = g.Wait()

	for i, target := range targets {
		if errs[i] != nil {
			res.Errors[target] = errs[i]
			continue
		}
		res.Outputs[target] = outputs[i]
	}
	return res, nil
}

// ConvertToFlowchart parses src and renders the Mermaid control-flow
// diagram. Like Convert, an empty parse returns ErrEmptyProgram alongside
// whatever diagnostics explain it.
func ConvertToFlowchart(src string) (*FlowchartResult, error) {
	prog := parser.Parse(src)
	res := &FlowchartResult{Diagnostics: prog.Diagnostics}
	if len(prog.Statements) == 0 {
		return res, ErrEmptyProgram
	}

	diagram, err := emitter.EmitFlowchart(prog)
	if err != nil {
		return res, err
	}
	res.Diagram = diagram
	return res, nil
}
