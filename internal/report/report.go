// Package report renders parser diagnostics for people: a rustc-style
// header, the offending source line, an underline, and the remediation
// hint when there is one. Everything here is presentation; the engine
// itself never prints.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/diag"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/lexer"
)

// DiagnosticPrinter writes diagnostics to w, optionally colorized.
type DiagnosticPrinter struct {
	w       io.Writer
	colored bool
}

func NewDiagnosticPrinter(w io.Writer, colored bool) *DiagnosticPrinter {
	return &DiagnosticPrinter{w: w, colored: colored}
}

// Print renders every diagnostic against src. name labels the source in the
// location line, the way a file path would.
func (p *DiagnosticPrinter) Print(name, src string, diags []diag.Diagnostic) {
	contents := make(map[int]string)
	for _, line := range lexer.ScanLines(src) {
		contents[line.Number] = line.Content
	}

	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.printOne(name, contents[d.Line], d)
	}
}

func (p *DiagnosticPrinter) printOne(name, content string, d diag.Diagnostic) {
	fmt.Fprintf(p.w, "%s: %s: %s\n", p.warning("warning"), d.Kind, d.Message)
	fmt.Fprintf(p.w, " --> %s:%d\n", name, d.Line)

	gutter := strings.Repeat(" ", digits(d.Line))
	if content != "" {
		fmt.Fprintf(p.w, "%s |\n", gutter)
		fmt.Fprintf(p.w, "%d | %s\n", d.Line, content)
		underline := strings.Repeat("^", uniseg.GraphemeClusterCount(content))
		fmt.Fprintf(p.w, "%s | %s\n", gutter, p.underline(underline))
	}
	if d.Suggestion != "" {
		fmt.Fprintf(p.w, "%s = %s: %s\n", gutter, p.help("help"), d.Suggestion)
	}
}

func digits(n int) int {
	return len(fmt.Sprintf("%d", n))
}

// --- Colors ---

func (p *DiagnosticPrinter) warning(s string) string {
	if !p.colored {
		return s
	}
	return aurora.Colorize(s, aurora.YellowFg|aurora.BrightFg|aurora.BoldFm).String()
}

func (p *DiagnosticPrinter) underline(s string) string {
	if !p.colored {
		return s
	}
	return aurora.Colorize(s, aurora.RedFg|aurora.BrightFg).String()
}

func (p *DiagnosticPrinter) help(s string) string {
	if !p.colored {
		return s
	}
	return aurora.Colorize(s, aurora.CyanFg|aurora.BrightFg).String()
}
