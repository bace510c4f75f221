// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mindmap

import (
	"strings"
	"unicode/utf8"
)

// stripAnnotations removes parenthetical annotations from an ordinary
// node line. An annotation is a balanced (...) span whose content
// contains no nested parentheses; it is deleted together with any
// immediately preceding whitespace when it is followed by a colon, a
// word character, whitespace, or end of line. Text after the
// annotation is never consumed, so one space keeps separating the
// surrounding words. Lines whose entire content is a shape delimiter
// pair are returned unchanged: those parentheses are required node
// syntax.
//
// The scan is a single left-to-right pass. A doubly nested annotation
// like (a (b) c) loses only its innermost pair; the outer pair held
// parentheses in the original text and is deliberately left for a
// later sanitization round rather than handled recursively here.
func stripAnnotations(line string) string {
	if isShapeLine(line) {
		return line
	}
	if !strings.ContainsRune(line, '(') {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))

	// flushed marks how much of line is already written to b.
	flushed := 0

	// Stack of open-parenthesis offsets. sawInner records whether a
	// nested pair closed inside the span, which disqualifies it as an
	// annotation.
	type open struct {
		pos      int
		sawInner bool
	}
	var stack []open

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			stack = append(stack, open{pos: i})
		case ')':
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				stack[len(stack)-1].sawInner = true
			}
			if top.sawInner || !removableAnnotation(line, i) {
				continue
			}

			// Delete the annotation plus preceding whitespace.
			start := top.pos
			for start > flushed && isLineSpace(line[start-1]) {
				start--
			}
			b.WriteString(line[flushed:start])
			flushed = i + 1
		}
	}

	b.WriteString(line[flushed:])
	return b.String()
}

// removableAnnotation reports whether the annotation closing at
// line[close] may be deleted: it must be followed by ':', a word
// character, whitespace, or end of line. Any other character directly
// after the closing parenthesis keeps the annotation in place.
func removableAnnotation(line string, close int) bool {
	rest := line[close+1:]
	if rest == "" {
		return true
	}
	next, _ := utf8.DecodeRuneInString(rest)
	return next == ':' || isWordRune(next) || next == ' ' || next == '\t'
}
