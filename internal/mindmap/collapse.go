// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mindmap

// collapseRootParens removes one level of nested parenthetical
// annotation from inside a root declaration's circular delimiters:
//
//	root((MoE (Mixture of Experts))) -> root((MoE))
//
// The rule is deliberately narrower than annotation stripping on
// ordinary lines, because the ((...)) pair is required syntax that
// must survive. It matches circular-open marker, non-parenthesis
// label text, whitespace, a parenthetical with no nested parentheses,
// and eventually the circular-close marker, then deletes only the
// whitespace-plus-parenthetical span. A line without that pattern is
// returned unchanged.
func collapseRootParens(line string) string {
	for open := 0; open+1 < len(line); open++ {
		if line[open] != '(' || line[open+1] != '(' {
			continue
		}
		if out, ok := collapseAt(line, open); ok {
			return out
		}
	}
	return line
}

// collapseAt attempts the collapse with the circular-open marker at
// line[open:open+2]. It reports false when the nested-parenthetical
// pattern does not occur there.
func collapseAt(line string, open int) (string, bool) {
	// Label text after (( runs up to the next parenthesis of either
	// kind; the annotation must open there, separated by whitespace.
	i := open + 2
	for i < len(line) && line[i] != '(' && line[i] != ')' {
		i++
	}
	if i >= len(line) || line[i] != '(' {
		return "", false
	}

	wsStart := i
	for wsStart > open+2 && isLineSpace(line[wsStart-1]) {
		wsStart--
	}
	if wsStart == i {
		// Annotation butted against the label with no separator.
		return "", false
	}

	// The annotation content itself may not contain parentheses.
	j := i + 1
	for j < len(line) && line[j] != '(' && line[j] != ')' {
		j++
	}
	if j >= len(line) || line[j] != ')' {
		return "", false
	}

	// The circular-close marker must still follow.
	if !hasMarker(line[j+1:], ')') {
		return "", false
	}

	return line[:wsStart] + line[j+1:], true
}

// hasMarker reports whether s contains a doubled occurrence of b.
func hasMarker(s string, b byte) bool {
	for k := 0; k+1 < len(s); k++ {
		if s[k] == b && s[k+1] == b {
			return true
		}
	}
	return false
}
