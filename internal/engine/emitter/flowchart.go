package emitter

import (
	"fmt"
	"strings"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
)

// EmitFlowchart renders the program as a Mermaid "graph TD" description.
// Node ids are integers assigned in traversal order, so the same tree always
// yields byte-identical text. Comments draw nothing: the chart describes
// control flow. Start and End stadiums are always present, whether or not
// the source spelled them out.
func EmitFlowchart(prog *ast.Program) (string, error) {
	if prog == nil || len(prog.Statements) == 0 {
		return "", ErrEmptyProgram
	}

	f := &flowchart{}
	f.buf.WriteString("graph TD\n")

	start := f.node(`(["%s"])`, "Start")
	exit, label := f.walk(prog.Statements, start, "")
	end := f.node(`(["%s"])`, "End")
	f.edge(exit, end, label)

	return f.buf.String(), nil
}

type flowchart struct {
	buf  strings.Builder
	next int
}

// node writes one node declaration and returns its id. shape is a format
// string like `["%s"]` (process), `{"%s"}` (decision), `[/"%s"/]` (io),
// `(["%s"])` (stadium), or `(("%s"))` (synthetic join points).
func (f *flowchart) node(shape, label string) int {
	id := f.next
	f.next++
	fmt.Fprintf(&f.buf, "    N%d%s\n", id, fmt.Sprintf(shape, escapeLabel(label)))
	return id
}

func (f *flowchart) edge(from, to int, label string) {
	if label == "" {
		fmt.Fprintf(&f.buf, "    N%d --> N%d\n", from, to)
	} else {
		fmt.Fprintf(&f.buf, "    N%d -->|%s| N%d\n", from, label, to)
	}
}

// walk lowers stmts in order, chaining each node after the previous one.
// label rides along until the first emitted edge claims it; when the block
// emits nothing the label comes back to the caller with the entry node, so
// branch edges keep their yes/no even across empty branches.
func (f *flowchart) walk(stmts []ast.Stmt, entry int, label string) (int, string) {
	cur := entry
	for _, s := range stmts {
		switch st := s.(type) {
		case *ast.Start, *ast.End, *ast.Comment:
			continue

		case *ast.Input:
			n := f.node(`[/"%s"/]`, "INPUT "+st.Variable)
			f.edge(cur, n, label)
			cur, label = n, ""

		case *ast.Output:
			text := "OUTPUT"
			if st.Message != "" {
				text = "OUTPUT " + st.Message
			}
			n := f.node(`[/"%s"/]`, text)
			f.edge(cur, n, label)
			cur, label = n, ""

		case *ast.Assignment:
			n := f.node(`["%s"]`, st.Target+" = "+st.Value)
			f.edge(cur, n, label)
			cur, label = n, ""

		case *ast.If:
			dec := f.node(`{"%s"}`, st.Condition)
			f.edge(cur, dec, label)
			label = ""

			thenExit, thenLabel := f.walk(st.Then, dec, "yes")
			elseExit, elseLabel := f.walk(st.Else, dec, "no")

			merge := f.node(`(("%s"))`, "merge")
			f.edge(thenExit, merge, thenLabel)
			f.edge(elseExit, merge, elseLabel)
			cur = merge

		case *ast.While:
			cur = f.loop(cur, label, st.Condition, st.Body)
			label = ""

		case *ast.For:
			cur = f.loop(cur, label, forLabel(st), st.Body)
			label = ""
		}
	}
	return cur, label
}

// loop draws the shared While/For shape: decision, iterate edge into the
// body, back-edge from the body exit to the decision, exit edge to a
// synthetic continuation node. An empty body degenerates to a self-loop.
func (f *flowchart) loop(cur int, label, condition string, body []ast.Stmt) int {
	dec := f.node(`{"%s"}`, condition)
	f.edge(cur, dec, label)

	exit, exitLabel := f.walk(body, dec, "iterate")
	f.edge(exit, dec, exitLabel)

	cont := f.node(`(("%s"))`, "continue")
	f.edge(dec, cont, "exit")
	return cont
}

func forLabel(st *ast.For) string {
	label := fmt.Sprintf("%s = %s to %s", st.Counter, st.From, st.To)
	if st.Step != "1" {
		label += " step " + st.Step
	}
	return label
}

// escapeLabel keeps user text legal inside Mermaid's quoted labels.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
