package emitter

import "github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"

type pythonEmitter struct {
	w *writer
}

func emitPython(prog *ast.Program) string {
	e := &pythonEmitter{w: newWriter("    ")}
	for _, s := range prog.Statements {
		e.emitStmt(s)
	}
	return e.w.String()
}

func (e *pythonEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:
		// program boundaries have no code form

	case *ast.Comment:
		e.w.line("# %s", st.Text)

	case *ast.Input:
		e.w.line("%s = input()", st.Variable)

	case *ast.Output:
		if st.Message == "" {
			e.w.line("print()")
		} else {
			e.w.line("print(%s)", st.Message)
		}

	case *ast.Assignment:
		e.w.line("%s = %s", st.Target, st.Value)

	case *ast.If:
		e.w.line("if %s:", st.Condition)
		e.emitBody(st.Then)
		if len(st.Else) > 0 {
			e.w.line("else:")
			e.emitBody(st.Else)
		}

	case *ast.While:
		e.w.line("while %s:", st.Condition)
		e.emitBody(st.Body)

	case *ast.For:
		switch {
		case st.Step == "1":
			e.w.line("for %s in range(%s, %s + 1):", st.Counter, st.From, st.To)
		case descending(st.Step):
			e.w.line("for %s in range(%s, %s - 1, %s):", st.Counter, st.From, st.To, st.Step)
		default:
			e.w.line("for %s in range(%s, %s + 1, %s):", st.Counter, st.From, st.To, st.Step)
		}
		e.emitBody(st.Body)
	}
}

// emitBody indents a block, adding pass when nothing in it produces code.
// Python is the one target where an all-comment block is still invalid.
func (e *pythonEmitter) emitBody(stmts []ast.Stmt) {
	e.w.in()
	for _, s := range stmts {
		e.emitStmt(s)
	}
	if !hasCode(stmts) {
		e.w.line("pass")
	}
	e.w.out()
}
