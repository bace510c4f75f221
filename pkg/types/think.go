// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ThinkMode selects the reader/writer persona pair for the deep-think
// workflow.
type ThinkMode string

const (
	// ModeCritical interrogates the article with critical-thinking
	// questions; the writer defends with evidence.
	ModeCritical ThinkMode = "critical"

	// ModeFAQ asks comprehension questions; the writer explains.
	ModeFAQ ThinkMode = "faq"
)

// ValidThinkMode reports whether m is a supported thinking mode.
func ValidThinkMode(m ThinkMode) bool {
	switch m {
	case ModeCritical, ModeFAQ:
		return true
	}
	return false
}

// ReportFormat selects how a deep-think report is written to disk.
type ReportFormat string

const (
	FormatMarkdown ReportFormat = "md"
	FormatHTML     ReportFormat = "html"
)

// ValidReportFormat reports whether f is a supported report format.
func ValidReportFormat(f ReportFormat) bool {
	switch f {
	case FormatMarkdown, FormatHTML:
		return true
	}
	return false
}

// Exchange is one question/answer round of a deep-think session. The
// reader's questions and the writer's answers are stored verbatim.
type Exchange struct {
	Questions string `json:"questions" yaml:"questions"`
	Answers   string `json:"answers" yaml:"answers"`
}
