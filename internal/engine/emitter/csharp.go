package emitter

import "github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"

// csharpEmitter writes Allman-brace C#, the house style of that world.
type csharpEmitter struct {
	w        *writer
	declared map[string]bool
}

func emitCSharp(prog *ast.Program) string {
	e := &csharpEmitter{w: newWriter("    "), declared: map[string]bool{}}
	e.w.line("using System;")
	e.w.blank()
	e.w.line("class Program")
	e.w.line("{")
	e.w.in()
	e.w.line("static void Main(string[] args)")
	e.w.line("{")
	e.w.in()
	e.emitStmts(prog.Statements)
	e.w.out()
	e.w.line("}")
	e.w.out()
	e.w.line("}")
	return e.w.String()
}

func (e *csharpEmitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *csharpEmitter) bind(name, expr string) {
	if e.declared[name] {
		e.w.line("%s = %s;", name, expr)
		return
	}
	e.declared[name] = true
	e.w.line("var %s = %s;", name, expr)
}

func (e *csharpEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:

	case *ast.Comment:
		e.w.line("// %s", st.Text)

	case *ast.Input:
		e.bind(st.Variable, "Console.ReadLine()")

	case *ast.Output:
		if st.Message == "" {
			e.w.line("Console.WriteLine();")
		} else {
			e.w.line("Console.WriteLine(%s);", st.Message)
		}

	case *ast.Assignment:
		e.bind(st.Target, st.Value)

	case *ast.If:
		e.w.line("if (%s)", st.Condition)
		e.block(st.Then)
		if len(st.Else) > 0 {
			e.w.line("else")
			e.block(st.Else)
		}

	case *ast.While:
		e.w.line("while (%s)", st.Condition)
		e.block(st.Body)

	case *ast.For:
		e.declared[st.Counter] = true
		e.w.line("for (int %s = %s; %s; %s)",
			st.Counter, st.From,
			cFamilyLoopCond(st.Counter, st.To, st.Step),
			cFamilyLoopStep(st.Counter, st.Step))
		e.block(st.Body)
	}
}

func (e *csharpEmitter) block(stmts []ast.Stmt) {
	e.w.line("{")
	e.w.in()
	e.emitStmts(stmts)
	e.w.out()
	e.w.line("}")
}
