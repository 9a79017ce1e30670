package emitter

import (
	"fmt"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
)

// canonicalWidth is generous on purpose: canonical pseudocode keeps one
// statement per line, so the printer should never be forced to wrap.
const canonicalWidth = 100

// emitPseudocode re-serializes the tree as canonical pseudocode: START/END
// bracketing inserted when absent, SET assignments, IF/THEN/ELSE/END IF,
// WHILE/DO, FOR/FROM/TO/STEP, // comments. When the parse produced
// diagnostics the output opens with an enumerated issue list. The list is
// comment-prefixed so the reformatted text still parses cleanly.
func emitPseudocode(prog *ast.Program) string {
	var docs []prettier.Doc

	if len(prog.Diagnostics) > 0 {
		docs = append(docs, prettier.Text("// Issues detected during parsing:"))
		for i, d := range prog.Diagnostics {
			docs = append(docs, prettier.Text(fmt.Sprintf("//   %d. %s", i+1, d)))
			if d.Suggestion != "" {
				docs = append(docs, prettier.Text(fmt.Sprintf("//      fix: %s", d.Suggestion)))
			}
		}
		docs = append(docs, prettier.Text(""))
	}

	stmts := prog.Statements
	if _, ok := stmts[0].(*ast.Start); !ok {
		docs = append(docs, prettier.Text("START"))
	}
	for _, s := range stmts {
		docs = append(docs, stmtDoc(s))
	}
	if _, ok := stmts[len(stmts)-1].(*ast.End); !ok {
		docs = append(docs, prettier.Text("END"))
	}

	var b strings.Builder
	prettier.Prettier(&b, prettier.Join(prettier.HardLine{}, docs...), canonicalWidth, "    ")
	b.WriteByte('\n')
	return b.String()
}

func stmtDoc(s ast.Stmt) prettier.Doc {
	switch st := s.(type) {
	case *ast.Start:
		return prettier.Text("START")

	case *ast.End:
		return prettier.Text("END")

	case *ast.Comment:
		return prettier.Text(words("//", st.Text))

	case *ast.Input:
		return prettier.Text(words("INPUT", st.Variable))

	case *ast.Output:
		return prettier.Text(words("OUTPUT", st.Message))

	case *ast.Assignment:
		return prettier.Text(fmt.Sprintf("SET %s = %s", st.Target, st.Value))

	case *ast.If:
		doc := prettier.Concat{prettier.Text(words("IF", st.Condition, "THEN"))}
		doc = appendBlock(doc, st.Then)
		if len(st.Else) > 0 {
			doc = append(doc, prettier.HardLine{}, prettier.Text("ELSE"))
			doc = appendBlock(doc, st.Else)
		}
		return append(doc, prettier.HardLine{}, prettier.Text("END IF"))

	case *ast.While:
		doc := prettier.Concat{prettier.Text(words("WHILE", st.Condition, "DO"))}
		doc = appendBlock(doc, st.Body)
		return append(doc, prettier.HardLine{}, prettier.Text("END WHILE"))

	case *ast.For:
		head := words("FOR", st.Counter, "FROM", st.From, "TO", st.To)
		if st.Step != "1" {
			head = words(head, "STEP", st.Step)
		}
		doc := prettier.Concat{prettier.Text(head)}
		doc = appendBlock(doc, st.Body)
		return append(doc, prettier.HardLine{}, prettier.Text("END FOR"))
	}
	return prettier.Text("")
}

// appendBlock indents a body under its header line. An empty body adds
// nothing: IF ... END IF with nothing between is valid pseudocode.
func appendBlock(doc prettier.Concat, stmts []ast.Stmt) prettier.Concat {
	if len(stmts) == 0 {
		return doc
	}
	bodyDocs := make([]prettier.Doc, 0, len(stmts))
	for _, s := range stmts {
		bodyDocs = append(bodyDocs, stmtDoc(s))
	}
	return append(doc, prettier.Indent{
		Doc: prettier.Concat{
			prettier.HardLine{},
			prettier.Join(prettier.HardLine{}, bodyDocs...),
		},
	})
}

// words joins the non-empty parts with single spaces, so optional pieces
// (an empty condition, an empty message) never leave a double space behind.
func words(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
