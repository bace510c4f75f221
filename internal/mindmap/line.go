// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mindmap

import (
	"strings"
	"unicode"
)

// rootMarker opens the circular node that doubles as the mindmap root.
const rootMarker = "root(("

// isRootLine reports whether line declares the root node. The
// classification is derived from the line text on every call, never
// stored.
func isRootLine(line string) bool {
	return strings.Contains(line, rootMarker)
}

// shapeDelimiters is the fixed whitelist of node-shape delimiter pairs
// whose brackets are load-bearing syntax rather than annotations. The
// open marker of a pair must never be a prefix of a later pair's open
// marker, so the slice is ordered longest-open first.
var shapeDelimiters = []struct{ open, close string }{
	{"((", "))"}, // circle
	{"))", "(("}, // bang
	{"{{", "}}"}, // hexagon
	{"(", ")"},   // rounded square
	{")", "("},   // cloud
	{"[", "]"},   // square
}

// isShapeLine reports whether the line's entire content is a node id
// followed by one shape delimiter pair enclosing a non-empty label,
// e.g. "id(I am a rounded square)". Such lines must be left untouched
// by annotation stripping: their brackets are required syntax.
func isShapeLine(line string) bool {
	content := strings.TrimRight(strings.TrimLeft(line, " \t"), " \t")

	id := 0
	for id < len(content) && isWordByte(content[id]) {
		id++
	}
	if id == 0 {
		return false
	}
	rest := content[id:]

	for _, d := range shapeDelimiters {
		if !strings.HasPrefix(rest, d.open) || !strings.HasSuffix(rest, d.close) {
			continue
		}
		label := rest[len(d.open) : len(rest)-len(d.close)]
		return label != ""
	}
	return false
}

// isWordByte reports whether b is an ASCII word byte (letter, digit,
// or underscore). Node ids are ASCII by Mermaid convention.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// isWordRune reports whether r counts as a word character for the
// annotation lookahead: letters, digits, or underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isLineSpace reports whether b is intra-line whitespace.
func isLineSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
