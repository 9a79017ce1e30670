// Package keyword holds the dialect tables: every keyword, prefix, and
// block terminator the parser recognizes, across the pseudocode dialects we
// accept (START/BEGIN, PRINT/DISPLAY/WRITE, END IF/ENDIF, and so on).
// Matching is case-insensitive everywhere. Adding a dialect word means
// adding it to a table here, nothing else.
package keyword

import "strings"

// Table order is priority order: the first match wins. "ELSE IF" must sit
// before "ELSE" or an ELSE IF line would be claimed as a bare ELSE.
var (
	startWords = []string{"START", "BEGIN"}
	endWords   = []string{"END", "STOP"}

	commentMarkers = []string{"//", "#", "/*"}

	inputWords  = []string{"INPUT", "READ", "GET"}
	outputWords = []string{"OUTPUT", "PRINT", "DISPLAY", "WRITE"}

	// Assignment operators, longest first so ":=" is never read as "=".
	assignOps = []string{":=", "<-", "="}
)

// Terminator sets, per enclosing construct.
var (
	IfTerminators    = []string{"ELSE IF", "ELSEIF", "ELSE", "END IF", "ENDIF"}
	ElseTerminators  = []string{"END IF", "ENDIF"}
	WhileTerminators = []string{"END WHILE", "ENDWHILE"}
	ForTerminators   = []string{"NEXT", "END FOR", "ENDFOR"}
)

// IsStart reports whether the whole line is a start keyword.
func IsStart(line string) bool { return equalsAny(line, startWords) }

// IsEnd reports whether the whole line is an end keyword.
func IsEnd(line string) bool { return equalsAny(line, endWords) }

// IsComment reports whether the line opens with a comment marker.
func IsComment(line string) bool {
	for _, m := range commentMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// TrimComment strips the leading comment marker (and a trailing */ left by
// a /* ... */ line) and returns the remaining text.
func TrimComment(line string) string {
	for _, m := range commentMarkers {
		if strings.HasPrefix(line, m) {
			line = line[len(m):]
			break
		}
	}
	line = strings.TrimSuffix(strings.TrimSpace(line), "*/")
	return strings.TrimSpace(line)
}

// MatchInput matches an input statement and returns the text after the
// keyword. A line that is only the keyword matches with an empty rest.
func MatchInput(line string) (string, bool) { return afterAny(line, inputWords) }

// MatchOutput matches an output statement and returns the message text.
func MatchOutput(line string) (string, bool) { return afterAny(line, outputWords) }

// MatchIf matches an IF head and returns everything after "IF ".
func MatchIf(line string) (string, bool) { return after(line, "IF") }

// MatchWhile matches a WHILE head and returns the raw condition text, with
// a trailing DO stripped when present.
func MatchWhile(line string) (string, bool) {
	rest, ok := after(line, "WHILE")
	if !ok {
		return "", false
	}
	if strings.EqualFold(rest, "DO") {
		return "", true
	}
	if len(rest) > 3 && strings.EqualFold(rest[len(rest)-3:], " DO") {
		rest = strings.TrimSpace(rest[:len(rest)-3])
	}
	return rest, true
}

// MatchFor matches a FOR head and returns the raw loop header.
func MatchFor(line string) (string, bool) { return after(line, "FOR") }

// SplitThen splits an IF remainder around the THEN keyword. found is false
// when there is no THEN anywhere in the text.
func SplitThen(rest string) (cond string, found bool) {
	if strings.EqualFold(rest, "THEN") {
		return "", true
	}
	if i := WordIndex(rest, "THEN"); i >= 0 {
		return strings.TrimSpace(rest[:i]), true
	}
	return strings.TrimSpace(rest), false
}

// TrimSet strips a leading SET keyword from an assignment target.
func TrimSet(target string) string {
	if strings.EqualFold(target, "SET") {
		return ""
	}
	if len(target) > 4 && strings.EqualFold(target[:4], "SET ") {
		return strings.TrimSpace(target[4:])
	}
	return target
}

// SplitAssignment finds the first assignment operator in line and splits
// around it. A "=" that is part of ==, !=, <=, or >= does not count.
func SplitAssignment(line string) (lhs, rhs string, ok bool) {
	for i := 0; i < len(line); i++ {
		for _, op := range assignOps {
			if !strings.HasPrefix(line[i:], op) {
				continue
			}
			if op == "=" && partOfComparison(line, i) {
				continue
			}
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len(op):]), true
		}
	}
	return "", "", false
}

func partOfComparison(line string, i int) bool {
	if i > 0 {
		switch line[i-1] {
		case '=', '!', '<', '>':
			return true
		}
	}
	return i+1 < len(line) && line[i+1] == '='
}

// MatchTerminator reports whether the line closes a block, given the
// terminator set of the innermost construct. It returns the canonical
// terminator that matched, so callers can tell ELSE from END IF. A line
// matches when it equals the terminator or starts with terminator+space
// ("NEXT i" closes a FOR just like "NEXT").
func MatchTerminator(line string, terminators []string) (string, bool) {
	for _, t := range terminators {
		if strings.EqualFold(line, t) {
			return t, true
		}
		if len(line) > len(t) && line[len(t)] == ' ' && strings.EqualFold(line[:len(t)], t) {
			return t, true
		}
	}
	return "", false
}

// AllTerminators is every block terminator across all constructs, used to
// call out stray closers at places where no block is open.
var AllTerminators = func() []string {
	var all []string
	seen := map[string]bool{}
	for _, set := range [][]string{IfTerminators, ElseTerminators, WhileTerminators, ForTerminators} {
		for _, t := range set {
			if !seen[t] {
				seen[t] = true
				all = append(all, t)
			}
		}
	}
	return all
}()

// All returns every keyword the dialect tables know about, in a fixed
// order, for the did-you-mean suggestion machinery.
func All() []string {
	var all []string
	seen := map[string]bool{}
	add := func(words []string) {
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				all = append(all, w)
			}
		}
	}
	add(startWords)
	add(endWords)
	add(inputWords)
	add(outputWords)
	add([]string{"SET", "IF", "THEN", "WHILE", "DO", "FOR", "FROM", "TO", "STEP"})
	add(AllTerminators)
	return all
}

// WordIndex finds word in s as a whole space-delimited word, matching
// case-insensitively, and returns its byte index or -1.
func WordIndex(s, word string) int {
	for i := 0; i+len(word) <= len(s); i++ {
		if !strings.EqualFold(s[i:i+len(word)], word) {
			continue
		}
		leftOK := i == 0 || s[i-1] == ' '
		rightOK := i+len(word) == len(s) || s[i+len(word)] == ' '
		if leftOK && rightOK {
			return i
		}
	}
	return -1
}

func equalsAny(line string, words []string) bool {
	for _, w := range words {
		if strings.EqualFold(line, w) {
			return true
		}
	}
	return false
}

// after matches "WORD rest" (or the bare word) case-insensitively and
// returns rest trimmed. "INPUTX" does not match INPUT: the keyword needs a
// space boundary.
func after(line, word string) (string, bool) {
	if strings.EqualFold(line, word) {
		return "", true
	}
	if len(line) > len(word) && line[len(word)] == ' ' && strings.EqualFold(line[:len(word)], word) {
		return strings.TrimSpace(line[len(word)+1:]), true
	}
	return "", false
}

func afterAny(line string, words []string) (string, bool) {
	for _, w := range words {
		if rest, ok := after(line, w); ok {
			return rest, true
		}
	}
	return "", false
}
