// Package parser turns scanned pseudocode lines into an ast.Program. It
// never aborts: every malformed line appends a diagnostic and parsing
// continues with the best partial interpretation it can manage.
package parser

import (
	"fmt"
	"strings"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/ast"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/diag"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/keyword"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/lexer"
)

// Parser walks the scanned lines with a single cursor. Nested blocks share
// the cursor, so when an inner block stops at its terminator the enclosing
// call sees exactly how far it got. Moving the cursor anywhere else breaks
// sibling statements after nested blocks.
type Parser struct {
	lines []lexer.Line
	pos   int
	prog  *ast.Program
}

func New(src string) *Parser {
	return &Parser{lines: lexer.ScanLines(src), prog: ast.NewProgram()}
}

// Parse runs the whole pipeline over src and returns the program, with
// whatever diagnostics came up along the way. Identical input yields an
// identical tree and diagnostic order.
func Parse(src string) *ast.Program {
	p := New(src)
	p.prog.Statements = p.parseBlock(nil)
	return p.prog
}

// --- Cursor ---

func (p *Parser) cur() lexer.Line { return p.lines[p.pos] }
func (p *Parser) atEOF() bool     { return p.pos >= len(p.lines) }
func (p *Parser) advance()        { p.pos++ }

// --- Diagnostics / tracking ---

func (p *Parser) report(d diag.Diagnostic) {
	p.prog.Diagnostics = append(p.prog.Diagnostics, d)
}

func (p *Parser) trackVariable(name string) {
	if name != "" {
		p.prog.Variables[name] = true
	}
}

// --- Blocks ---

// parseBlock parses statements until EOF or until the current line matches
// one of terminators. The terminator line is NOT consumed; the caller
// decides what it means. A nil terminator set parses to EOF (top level).
func (p *Parser) parseBlock(terminators []string) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEOF() {
		if len(terminators) > 0 {
			if _, ok := keyword.MatchTerminator(p.cur().Content, terminators); ok {
				return stmts
			}
		}
		if st := p.parseStatement(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

// parseStatement dispatches on the dialect tables. Keyworded statements are
// tried first; assignment only claims lines nothing else wanted, so
// "IF x = 1 THEN" stays an IF. Returns nil for lines that produce no
// statement (bad FOR headers, unrecognized lines, empty inputs).
func (p *Parser) parseStatement() ast.Stmt {
	line := p.cur()
	content := line.Content

	switch {
	case keyword.IsComment(content):
		p.advance()
		return &ast.Comment{Line: line.Number, Src: content, Text: keyword.TrimComment(content)}

	case keyword.IsStart(content):
		p.advance()
		return &ast.Start{Line: line.Number, Src: content}

	case keyword.IsEnd(content):
		p.advance()
		return &ast.End{Line: line.Number, Src: content}
	}

	if rest, ok := keyword.MatchInput(content); ok {
		p.advance()
		if rest == "" {
			p.report(diag.Diagnostic{
				Line:       line.Number,
				Kind:       diag.IncompleteStatement,
				Message:    "input statement names no variable",
				Suggestion: "name the variable to read into, e.g. INPUT count",
			})
			return nil
		}
		p.trackVariable(rest)
		p.prog.HasInput = true
		return &ast.Input{Line: line.Number, Src: content, Variable: rest}
	}

	if rest, ok := keyword.MatchOutput(content); ok {
		p.advance()
		if rest == "" {
			p.report(diag.Diagnostic{
				Line:       line.Number,
				Kind:       diag.IncompleteStatement,
				Message:    "output statement has no message",
				Suggestion: "say what to print, e.g. PRINT total",
			})
		}
		p.prog.HasOutput = true
		return &ast.Output{Line: line.Number, Src: content, Message: rest}
	}

	if rest, ok := keyword.MatchIf(content); ok {
		return p.parseIf(line, rest)
	}
	if rest, ok := keyword.MatchWhile(content); ok {
		return p.parseWhile(line, rest)
	}
	if rest, ok := keyword.MatchFor(content); ok {
		return p.parseFor(line, rest)
	}

	if lhs, rhs, ok := keyword.SplitAssignment(content); ok {
		p.advance()
		target := keyword.TrimSet(lhs)
		if target == "" || rhs == "" {
			side := "right"
			if target == "" {
				side = "left"
			}
			p.report(diag.Diagnostic{
				Line:       line.Number,
				Kind:       diag.IncompleteStatement,
				Message:    fmt.Sprintf("assignment is missing its %s-hand side", side),
				Suggestion: "write it as SET name = value",
			})
			return nil
		}
		p.trackVariable(target)
		return &ast.Assignment{Line: line.Number, Src: content, Target: target, Value: rhs}
	}

	// Nothing claimed the line. Drop it, but try to be useful about why.
	p.advance()
	d := diag.Diagnostic{
		Line:    line.Number,
		Kind:    diag.InvalidSyntax,
		Message: fmt.Sprintf("cannot make sense of %q", content),
	}
	if term, ok := keyword.MatchTerminator(content, keyword.AllTerminators); ok {
		d.Message = fmt.Sprintf("%s closes a block that is not open", term)
		d.Suggestion = "remove it or add the matching opener above"
	} else if hint := suggestKeyword(content); hint != "" {
		d.Suggestion = hint
	}
	p.report(d)
	return nil
}

// --- Constructs ---

// parseIf handles IF <cond> THEN, the then branch, an optional else branch,
// and the closer. rest is everything after "IF ". An ELSE IF is flattened
// into a plain ELSE: the chained condition is dropped, not re-tested, and
// an AmbiguousStructure diagnostic calls that out.
func (p *Parser) parseIf(line lexer.Line, rest string) ast.Stmt {
	p.advance()

	cond, hasThen := keyword.SplitThen(rest)
	if !hasThen {
		p.report(diag.Diagnostic{
			Line:       line.Number,
			Kind:       diag.MissingKeyword,
			Message:    "IF is missing THEN",
			Suggestion: "write IF <condition> THEN",
		})
	}
	if cond == "" {
		p.report(diag.Diagnostic{
			Line:       line.Number,
			Kind:       diag.IncompleteStatement,
			Message:    "IF has no condition",
			Suggestion: "put the test between IF and THEN",
		})
	}

	node := &ast.If{Line: line.Number, Src: line.Content, Condition: cond}
	node.Then = p.parseBlock(keyword.IfTerminators)

	if p.atEOF() {
		p.reportUnclosed(line, "IF", "END IF")
		return node
	}

	term, _ := keyword.MatchTerminator(p.cur().Content, keyword.IfTerminators)
	switch term {
	case "ELSE IF", "ELSEIF":
		p.report(diag.Diagnostic{
			Line:       p.cur().Number,
			Kind:       diag.AmbiguousStructure,
			Message:    "ELSE IF becomes a plain ELSE here: its condition is never tested",
			Suggestion: "nest a separate IF inside the ELSE block instead",
		})
		fallthrough
	case "ELSE":
		p.advance()
		node.Else = p.parseBlock(keyword.ElseTerminators)
		if p.atEOF() {
			p.reportUnclosed(line, "IF", "END IF")
			return node
		}
		p.advance()
	default:
		// END IF / ENDIF
		p.advance()
	}
	return node
}

func (p *Parser) parseWhile(line lexer.Line, rest string) ast.Stmt {
	p.advance()

	if rest == "" {
		p.report(diag.Diagnostic{
			Line:       line.Number,
			Kind:       diag.IncompleteStatement,
			Message:    "WHILE has no condition",
			Suggestion: "write WHILE <condition>",
		})
	}

	node := &ast.While{Line: line.Number, Src: line.Content, Condition: rest}
	node.Body = p.parseBlock(keyword.WhileTerminators)

	if p.atEOF() {
		p.reportUnclosed(line, "WHILE", "END WHILE")
		return node
	}
	p.advance()
	return node
}

// parseFor handles FOR <ident> (=|FROM) <expr> TO <expr> [STEP <expr>].
// A header that does not fit the shape drops the whole line with an
// InvalidSyntax diagnostic; the body lines then parse as ordinary
// statements, which keeps as much of the input alive as possible.
func (p *Parser) parseFor(line lexer.Line, rest string) ast.Stmt {
	counter, from, to, step, ok := splitForHeader(rest)
	if !ok {
		p.advance()
		p.report(diag.Diagnostic{
			Line:       line.Number,
			Kind:       diag.InvalidSyntax,
			Message:    "FOR header does not fit FOR <name> = <start> TO <end> [STEP <n>]",
			Suggestion: "e.g. FOR i FROM 1 TO 10 STEP 2",
		})
		return nil
	}

	p.advance()
	p.trackVariable(counter)
	node := &ast.For{
		Line:    line.Number,
		Src:     line.Content,
		Counter: counter,
		From:    from,
		To:      to,
		Step:    step,
	}
	node.Body = p.parseBlock(keyword.ForTerminators)

	if p.atEOF() {
		p.reportUnclosed(line, "FOR", "NEXT or END FOR")
		return node
	}
	p.advance()
	return node
}

func (p *Parser) reportUnclosed(opener lexer.Line, construct, closer string) {
	p.report(diag.Diagnostic{
		Line:       opener.Number,
		Kind:       diag.MissingKeyword,
		Message:    fmt.Sprintf("%s opened on line %d is never closed", construct, opener.Number),
		Suggestion: fmt.Sprintf("add %s", closer),
	})
}

// --- Helpers ---

// splitForHeader pulls counter, bounds, and step out of a FOR header. Slices
// the original text so expression whitespace survives untouched. Step
// defaults to "1".
func splitForHeader(rest string) (counter, from, to, step string, ok bool) {
	sepIdx, sepLen := -1, 0
	if i := strings.IndexByte(rest, '='); i >= 0 {
		sepIdx, sepLen = i, 1
	}
	if i := keyword.WordIndex(rest, "FROM"); i >= 0 && (sepIdx < 0 || i < sepIdx) {
		sepIdx, sepLen = i, len("FROM")
	}
	if sepIdx < 0 {
		return "", "", "", "", false
	}
	counter = strings.TrimSpace(rest[:sepIdx])
	tail := rest[sepIdx+sepLen:]

	toIdx := keyword.WordIndex(tail, "TO")
	if toIdx < 0 {
		return "", "", "", "", false
	}
	from = strings.TrimSpace(tail[:toIdx])
	tail = tail[toIdx+len("TO"):]

	step = "1"
	if stepIdx := keyword.WordIndex(tail, "STEP"); stepIdx >= 0 {
		step = strings.TrimSpace(tail[stepIdx+len("STEP"):])
		tail = tail[:stepIdx]
	}
	to = strings.TrimSpace(tail)

	if !isIdentifier(counter) || from == "" || to == "" || step == "" {
		return "", "", "", "", false
	}
	return counter, from, to, step, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case isLetter(ch) || ch == '_':
		case isDigit(ch) && i > 0:
		default:
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// suggestKeyword proposes a did-you-mean hint for an unrecognized line,
// trying the whole line first ("END FI" -> END IF), then its first word
// ("PRNT x" -> PRINT).
func suggestKeyword(content string) string {
	if near, ok := diag.Closest(content, keyword.All()); ok {
		return fmt.Sprintf("did you mean %s?", near)
	}
	word := content
	if i := strings.IndexByte(content, ' '); i > 0 {
		word = content[:i]
	}
	if near, ok := diag.Closest(word, keyword.All()); ok && !strings.EqualFold(near, word) {
		return fmt.Sprintf("did you mean %s?", near)
	}
	return ""
}
