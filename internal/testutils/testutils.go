// Package testutils carries assertion helpers shared by the test suites.
package testutils

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
)

// printer renders values in failure messages without ANSI colors so the
// output stays readable in CI logs.
var printer = func() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p
}()

// AssertEqualWithDiff asserts that two values are deeply equal. When they are
// not, it fails with both values pretty-printed plus a field-level diff,
// which beats squinting at two interleaved %#v dumps of a statement tree.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)
	if len(diff) == 0 {
		return
	}

	var b strings.Builder
	for i, d := range diff {
		if i == 0 {
			b.WriteString("diff    : ")
		} else {
			b.WriteString("          ")
		}
		b.WriteString(d)
		b.WriteByte('\n')
	}

	t.Errorf(
		"Not equal: \nexpected: %s\nactual  : %s\n\n%s",
		printer.Sprint(expected),
		printer.Sprint(actual),
		b.String(),
	)
}
