package emitter

import "github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"

type cppEmitter struct {
	w        *writer
	declared map[string]bool
}

func emitCPP(prog *ast.Program) string {
	e := &cppEmitter{w: newWriter("    "), declared: map[string]bool{}}
	e.w.line("#include <iostream>")
	if prog.HasInput {
		e.w.line("#include <string>")
	}
	e.w.blank()
	e.w.line("int main() {")
	e.w.in()
	e.emitStmts(prog.Statements)
	e.w.line("return 0;")
	e.w.out()
	e.w.line("}")
	return e.w.String()
}

func (e *cppEmitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *cppEmitter) bind(name, expr string) {
	if e.declared[name] {
		e.w.line("%s = %s;", name, expr)
		return
	}
	e.declared[name] = true
	e.w.line("auto %s = %s;", name, expr)
}

func (e *cppEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:

	case *ast.Comment:
		e.w.line("// %s", st.Text)

	case *ast.Input:
		// getline wants the string to exist first
		if !e.declared[st.Variable] {
			e.declared[st.Variable] = true
			e.w.line("std::string %s;", st.Variable)
		}
		e.w.line("std::getline(std::cin, %s);", st.Variable)

	case *ast.Output:
		if st.Message == "" {
			e.w.line("std::cout << std::endl;")
		} else {
			e.w.line("std::cout << %s << std::endl;", st.Message)
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
		e.w.line("for (int %s = %s; %s; %s) {",
			st.Counter, st.From,
			cFamilyLoopCond(st.Counter, st.To, st.Step),
			cFamilyLoopStep(st.Counter, st.Step))
		e.block(st.Body)
		e.w.line("}")
	}
}

func (e *cppEmitter) block(stmts []ast.Stmt) {
	e.w.in()
	e.emitStmts(stmts)
	e.w.out()
}
