package emitter

import "github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"

type javaEmitter struct {
	w        *writer
	declared map[string]bool
}

func emitJava(prog *ast.Program) string {
	e := &javaEmitter{w: newWriter("    "), declared: map[string]bool{}}
	if prog.HasInput {
		e.w.line("import java.util.Scanner;")
		e.w.blank()
	}
	e.w.line("public class Main {")
	e.w.in()
	e.w.line("public static void main(String[] args) {")
	e.w.in()
	if prog.HasInput {
		e.w.line("Scanner scanner = new Scanner(System.in);")
	}
	e.emitStmts(prog.Statements)
	e.w.out()
	e.w.line("}")
	e.w.out()
	e.w.line("}")
	return e.w.String()
}

func (e *javaEmitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *javaEmitter) bind(name, expr string) {
	if e.declared[name] {
		e.w.line("%s = %s;", name, expr)
		return
	}
	e.declared[name] = true
	e.w.line("var %s = %s;", name, expr)
}

func (e *javaEmitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Start, *ast.End:

	case *ast.Comment:
		e.w.line("// %s", st.Text)

	case *ast.Input:
		e.bind(st.Variable, "scanner.nextLine()")

	case *ast.Output:
		if st.Message == "" {
			e.w.line("System.out.println();")
		} else {
			e.w.line("System.out.println(%s);", st.Message)
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

func (e *javaEmitter) block(stmts []ast.Stmt) {
	e.w.in()
	e.emitStmts(stmts)
	e.w.out()
}
