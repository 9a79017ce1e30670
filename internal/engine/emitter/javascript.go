package emitter

import (
	"strings"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
)

type jsEmitter struct {
	w        *writer
	declared map[string]bool
}

func emitJavaScript(prog *ast.Program) string {
	e := &jsEmitter{w: newWriter("  "), declared: map[string]bool{}}
	if prog.HasInput {
		e.w.line(`const readlineSync = require("readline-sync");`)
		e.w.blank()
	}
	e.emitStmts(prog.Statements)
	return e.w.String()
}

func (e *jsEmitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

// bind declares a name with let on first sight, plain-assigns afterwards.
func (e *jsEmitter) bind(name, expr string) {
	if e.declared[name] {
		e.w.line("%s = %s;", name, expr)
		return
	}
	e.declared[name] = true
	e.w.line("let %s = %s;", name, expr)
}

func (e *jsEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:

	case *ast.Comment:
		e.w.line("// %s", st.Text)

	case *ast.Input:
		e.bind(st.Variable, `readlineSync.question("")`)

	case *ast.Output:
		if st.Message == "" {
			e.w.line(`console.log("");`)
		} else {
			e.w.line("console.log(%s);", st.Message)
		}

	case *ast.Assignment:
		e.bind(st.Target, st.Value)

	case *ast.If:
		e.w.line("if (%s) {", st.Condition)
		e.block(st.Then)
		if len(st.Else) > 0 {
			e.w.line("} else {")
			e.block(st.Else)
		}
		e.w.line("}")

	case *ast.While:
		e.w.line("while (%s) {", st.Condition)
		e.block(st.Body)
		e.w.line("}")

	case *ast.For:
		e.declared[st.Counter] = true
		e.w.line("for (let %s = %s; %s; %s) {",
			st.Counter, st.From,
			cFamilyLoopCond(st.Counter, st.To, st.Step),
			cFamilyLoopStep(st.Counter, st.Step))
		e.block(st.Body)
		e.w.line("}")
	}
}

func (e *jsEmitter) block(stmts []ast.Stmt) {
	e.w.in()
	e.emitStmts(stmts)
	e.w.out()
}

// cFamilyLoopCond builds the middle clause of a counting for loop. The
// bound is inclusive; a literal negative step flips the comparison.
func cFamilyLoopCond(counter, to, step string) string {
	if descending(step) {
		return counter + " >= " + to
	}
	return counter + " <= " + to
}

// cFamilyLoopStep builds the update clause: i++, i--, i -= 2, i += n.
func cFamilyLoopStep(counter, step string) string {
	switch {
	case step == "1":
		return counter + "++"
	case step == "-1":
		return counter + "--"
	case descending(step):
		return counter + " -= " + strings.TrimSpace(strings.TrimPrefix(step, "-"))
	default:
		return counter + " += " + step
	}
}
