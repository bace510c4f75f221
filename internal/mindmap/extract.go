// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mindmap

import "strings"

const fenceMarker = "```"

// CodeBlockBody returns the content of the first fenced code block in
// text: everything strictly between an opening fence line (the marker,
// optionally followed by a language tag) and the next line consisting
// solely of the marker. When no complete fence pair exists the input
// is returned unchanged. Malformed fences never produce an error; the
// result is always a best-effort string.
func CodeBlockBody(text string) string {
	lines := strings.Split(text, "\n")

	open := -1
	for i, line := range lines {
		if isFenceLine(line) {
			open = i
			break
		}
	}
	if open < 0 {
		return text
	}

	for j := open + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == fenceMarker {
			return strings.Join(lines[open+1:j], "\n")
		}
	}

	// Opening fence without a closing one: treat as plain text.
	return text
}

// isFenceLine reports whether line is an opening fence: the marker
// alone, or the marker immediately followed by a language tag.
func isFenceLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fenceMarker) {
		return false
	}
	tag := trimmed[len(fenceMarker):]
	return !strings.ContainsAny(tag, "` ")
}
