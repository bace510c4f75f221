// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the summary-engine
// pipeline: sources to summarize, workflow configuration, and run
// records. All stage packages consume these types; none define their
// own copies.
package types

// SourceType identifies how a source's text is acquired.
type SourceType string

const (
	SourcePDF     SourceType = "pdf"
	SourceYouTube SourceType = "youtube"
	SourceURL     SourceType = "url"
)

// ValidSourceType reports whether t is one of the supported source types.
func ValidSourceType(t SourceType) bool {
	switch t {
	case SourcePDF, SourceYouTube, SourceURL:
		return true
	}
	return false
}

// Source is one document to be summarized: a local PDF path, a YouTube
// video URL or ID, or a web page URL.
type Source struct {
	// Location is the file path, video URL/ID, or page URL.
	Location string `json:"source" yaml:"source"`

	// Type selects the acquisition backend.
	Type SourceType `json:"source_type" yaml:"source_type"`
}

// SummaryKind selects what the summarize workflow produces.
type SummaryKind string

const (
	// SummaryMindmap produces only the Mermaid mindmap (.mm file).
	SummaryMindmap SummaryKind = "mindmap"

	// SummaryText produces only the prose summary (.md file).
	SummaryText SummaryKind = "text"

	// SummaryBoth produces the prose summary with the mindmap spliced
	// in as a second section (.md file).
	SummaryBoth SummaryKind = "both"
)

// ValidSummaryKind reports whether k is a supported summary kind.
func ValidSummaryKind(k SummaryKind) bool {
	switch k {
	case SummaryMindmap, SummaryText, SummaryBoth:
		return true
	}
	return false
}
