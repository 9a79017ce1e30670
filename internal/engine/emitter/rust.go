package emitter

import (
	"strings"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
)

type rustEmitter struct {
	w        *writer
	declared map[string]bool
}

func emitRust(prog *ast.Program) string {
	e := &rustEmitter{w: newWriter("    "), declared: map[string]bool{}}
	e.w.line("fn main() {")
	e.w.in()
	e.emitStmts(prog.Statements)
	e.w.out()
	e.w.line("}")
	return e.w.String()
}

func (e *rustEmitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *rustEmitter) bind(name, expr string) {
	if e.declared[name] {
		e.w.line("%s = %s;", name, expr)
		return
	}
	e.declared[name] = true
	e.w.line("let mut %s = %s;", name, expr)
}

func (e *rustEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:

	case *ast.Comment:
		e.w.line("// %s", st.Text)

	case *ast.Input:
		if !e.declared[st.Variable] {
			e.declared[st.Variable] = true
			e.w.line("let mut %s = String::new();", st.Variable)
		}
		e.w.line("std::io::stdin().read_line(&mut %s).unwrap();", st.Variable)

	case *ast.Output:
		switch {
		case st.Message == "":
			e.w.line("println!();")
		case isQuoted(st.Message):
			e.w.line("println!(%s);", st.Message)
		default:
			e.w.line(`println!("{}", %s);`, st.Message)
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
		e.w.line("while %s {", st.Condition)
		e.block(st.Body)
		e.w.line("}")

	case *ast.For:
		e.declared[st.Counter] = true
		e.w.line("for %s in %s {", st.Counter, rustRange(st))
		e.block(st.Body)
		e.w.line("}")
	}
}

func (e *rustEmitter) block(stmts []ast.Stmt) {
	e.w.in()
	e.emitStmts(stmts)
	e.w.out()
}

// rustRange builds an inclusive range for the loop header. Rust has no
// negative step_by, so a literal negative step walks the reversed range.
func rustRange(st *ast.For) string {
	switch {
	case st.Step == "1":
		return st.From + "..=" + st.To
	case st.Step == "-1":
		return "(" + st.To + "..=" + st.From + ").rev()"
	case descending(st.Step):
		magnitude := strings.TrimSpace(strings.TrimPrefix(st.Step, "-"))
		return "(" + st.To + "..=" + st.From + ").rev().step_by(" + magnitude + ")"
	default:
		return "(" + st.From + "..=" + st.To + ").step_by(" + st.Step + ")"
	}
}
