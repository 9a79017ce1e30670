package lexer

import "strings"

// Line is one surviving source line: trimmed content plus its 1-based
// position in the original input. Blank lines are dropped before parsing,
// but numbering keeps counting them so diagnostics point at the line the
// user actually sees in their editor.
type Line struct {
	Content string
	Number  int
}

// ScanLines splits src on newlines, trims each line, and drops the ones that
// are empty after trimming. Works for both \n and \r\n input.
func ScanLines(src string) []Line {
	var lines []Line
	for i, raw := range strings.Split(src, "\n") {
		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}
		lines = append(lines, Line{Content: content, Number: i + 1})
	}
	return lines
}
