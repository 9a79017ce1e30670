package emitter

import "github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"

type goEmitter struct {
	w        *writer
	declared map[string]bool
}

func emitGo(prog *ast.Program) string {
	e := &goEmitter{w: newWriter("\t"), declared: map[string]bool{}}
	e.w.line("package main")
	e.w.blank()
	if prog.HasInput || prog.HasOutput {
		e.w.line(`import "fmt"`)
		e.w.blank()
	}
	e.w.line("func main() {")
	e.w.in()
	e.emitStmts(prog.Statements)
	e.w.out()
	e.w.line("}")
	return e.w.String()
}

func (e *goEmitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *goEmitter) bind(name, expr string) {
	if e.declared[name] {
		e.w.line("%s = %s", name, expr)
		return
	}
	e.declared[name] = true
	e.w.line("%s := %s", name, expr)
}

func (e *goEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:

	case *ast.Comment:
		e.w.line("// %s", st.Text)

	case *ast.Input:
		if !e.declared[st.Variable] {
			e.declared[st.Variable] = true
			e.w.line("var %s string", st.Variable)
		}
		e.w.line("fmt.Scanln(&%s)", st.Variable)

	case *ast.Output:
		if st.Message == "" {
			e.w.line("fmt.Println()")
		} else {
			e.w.line("fmt.Println(%s)", st.Message)
		}

	case *ast.Assignment:
		e.bind(st.Target, st.Value)

	case *ast.If:
		e.w.line("if %s {", st.Condition)
		e.block(st.Then)
		if len(st.Else) > 0 {
			e.w.line("} else {")
			e.block(st.Else)
		}
		e.w.line("}")

	case *ast.While:
		e.w.line("for %s {", st.Condition)
		e.block(st.Body)
		e.w.line("}")

	case *ast.For:
		e.declared[st.Counter] = true
		e.w.line("for %s := %s; %s; %s {",
			st.Counter, st.From,
			cFamilyLoopCond(st.Counter, st.To, st.Step),
			cFamilyLoopStep(st.Counter, st.Step))
		e.block(st.Body)
		e.w.line("}")
	}
}

func (e *goEmitter) block(stmts []ast.Stmt) {
	e.w.in()
	e.emitStmts(stmts)
	e.w.out()
}
