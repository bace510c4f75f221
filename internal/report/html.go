// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/util"
)

const mermaidLanguage = "mermaid"

// mermaidScript hydrates the <div class="mermaid"> blocks emitted by
// the code block wrapper.
const mermaidScript = `<script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: true });
</script>`

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithWrapperRenderer(mermaidWrapper),
		),
	),
)

// mermaidWrapper turns ```mermaid fences into divs that Mermaid.js can
// hydrate and leaves other unhighlighted code blocks in plain
// pre/code wrappers.
func mermaidWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	if ctx.Highlighted() {
		return
	}

	lang, _ := ctx.Language()
	if strings.TrimSpace(strings.ToLower(string(lang))) == mermaidLanguage {
		if entering {
			_, _ = w.WriteString(`<div class="mermaid">`)
		} else {
			_, _ = w.WriteString("</div>\n")
		}
		return
	}

	if entering {
		_, _ = w.WriteString("<pre><code")
		if len(bytes.TrimSpace(lang)) > 0 {
			_, _ = w.WriteString(` class="language-`)
			_, _ = w.Write(util.EscapeHTML(lang))
			_, _ = w.WriteString(`"`)
		}
		_, _ = w.WriteString(">")
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}

// RenderHTML converts Markdown content to an HTML fragment.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderPage converts Markdown content to a standalone HTML page with
// the Mermaid loader included.
func RenderPage(title, markdown string) (string, error) {
	body, err := RenderHTML(markdown)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"utf-8\">\n<title>%s</title>\n", title)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString(mermaidScript)
	b.WriteString("\n</body>\n</html>\n")
	return b.String(), nil
}
