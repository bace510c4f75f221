// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mindmap repairs model-generated Mermaid mindmap syntax.
//
// Generative models asked to emit mindmap diagrams routinely produce
// constructs the renderer rejects: parenthetical asides inside node
// labels, nested parentheses inside the root's ((...)) delimiters, a
// missing "mindmap" header, or the whole diagram wrapped in a Markdown
// code fence. Sanitize deterministically rewrites such output into a
// renderable document. Every transformation is total: malformed input
// degrades to a best-effort result, never an error.
package mindmap

import "strings"

// HeaderKeyword is the required first line of a mindmap document.
const HeaderKeyword = "mindmap"

// Sanitize rewrites raw model output into syntactically valid mindmap
// text. It unwraps a surrounding code fence, rewrites each line (root
// lines have one level of nested parentheses collapsed, other lines
// have parenthetical annotations stripped), and guarantees the result
// starts with the "mindmap" header.
//
// Sanitize is idempotent for well-formed input: running it over its
// own output changes nothing.
func Sanitize(raw string) string {
	body := CodeBlockBody(raw)

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if isRootLine(line) {
			lines[i] = collapseRootParens(line)
		} else {
			lines[i] = stripAnnotations(line)
		}
	}

	return assemble(lines)
}

// assemble joins rewritten lines and ensures the document begins with
// the header keyword on its own line, prepending it when absent. It
// never duplicates an existing header.
func assemble(lines []string) string {
	doc := strings.Join(lines, "\n")

	first := doc
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		first = doc[:i]
	}
	if strings.TrimRight(first, " \t") == HeaderKeyword {
		return doc
	}
	return HeaderKeyword + "\n" + doc
}
