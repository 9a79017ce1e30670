// Package ast is the statement tree the parser builds and every emitter
// walks. The tree is built once per parse, read-only afterwards, so any
// number of emitters can walk it concurrently.
package ast

import (
	"sort"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/diag"
)

// Stmt is one pseudocode statement. Every variant carries the verbatim
// trimmed source line and its 1-based line number.
type Stmt interface {
	stmtNode()
	Pos() int
	Source() string
}

// --- Statements ---

// Start -> START or BEGIN
type Start struct {
	Line int
	Src  string
}

// End -> END or STOP
type End struct {
	Line int
	Src  string
}

// Comment -> // text, # text, or /* text */. Text holds the content with
// the markers stripped; Src keeps the original.
type Comment struct {
	Line int
	Src  string
	Text string
}

// Input -> INPUT x, READ x, GET x
type Input struct {
	Line     int
	Src      string
	Variable string
}

// Output -> OUTPUT msg, PRINT msg, DISPLAY msg, WRITE msg. Message is raw
// text: emitters decide literal versus expression by its quoting.
type Output struct {
	Line    int
	Src     string
	Message string
}

// Assignment -> x = expr, x <- expr, SET x := expr. Value is raw text.
type Assignment struct {
	Line   int
	Src    string
	Target string
	Value  string
}

// If -> IF cond THEN ... [ELSE ...] END IF. A nil or empty Else means no
// else branch is emitted.
type If struct {
	Line      int
	Src       string
	Condition string
	Then      []Stmt
	Else      []Stmt
}

// While -> WHILE cond [DO] ... END WHILE
type While struct {
	Line      int
	Src       string
	Condition string
	Body      []Stmt
}

// For -> FOR i (=|FROM) start TO end [STEP s] ... NEXT/END FOR. The bound
// is inclusive. Step defaults to "1". All three are raw expression text.
type For struct {
	Line    int
	Src     string
	Counter string
	From    string
	To      string
	Step    string
	Body    []Stmt
}

func (s *Start) stmtNode()      {}
func (s *Start) Pos() int       { return s.Line }
func (s *Start) Source() string { return s.Src }

func (e *End) stmtNode()      {}
func (e *End) Pos() int       { return e.Line }
func (e *End) Source() string { return e.Src }

func (c *Comment) stmtNode()      {}
func (c *Comment) Pos() int       { return c.Line }
func (c *Comment) Source() string { return c.Src }

func (i *Input) stmtNode()      {}
func (i *Input) Pos() int       { return i.Line }
func (i *Input) Source() string { return i.Src }

func (o *Output) stmtNode()      {}
func (o *Output) Pos() int       { return o.Line }
func (o *Output) Source() string { return o.Src }

func (a *Assignment) stmtNode()      {}
func (a *Assignment) Pos() int       { return a.Line }
func (a *Assignment) Source() string { return a.Src }

func (i *If) stmtNode()      {}
func (i *If) Pos() int       { return i.Line }
func (i *If) Source() string { return i.Src }

func (w *While) stmtNode()      {}
func (w *While) Pos() int       { return w.Line }
func (w *While) Source() string { return w.Src }

func (f *For) stmtNode()      {}
func (f *For) Pos() int       { return f.Line }
func (f *For) Source() string { return f.Src }

// --- Program ---

// Program is the result of one parse: the statement forest plus everything
// the tracker collected while walking the lines.
type Program struct {
	Statements  []Stmt
	Variables   map[string]bool
	HasInput    bool
	HasOutput   bool
	Diagnostics []diag.Diagnostic
}

func NewProgram() *Program {
	return &Program{Variables: make(map[string]bool)}
}

// VariableNames returns the tracked variable names, sorted so callers that
// render them stay deterministic.
func (p *Program) VariableNames() []string {
	names := make([]string, 0, len(p.Variables))
	for name := range p.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
