// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "summary-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for stages that call a generative model API.
type AIConfig struct {
	// Provider selects the model backend: gemini or openai.
	Provider string `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the model API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider's default endpoint when set.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// FetchConfig holds settings for the source acquisition stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ReaderBase is the Markdown reader endpoint used for web pages
	// (default "https://r.jina.ai").
	ReaderBase string `json:"reader_base,omitempty" yaml:"reader_base,omitempty"`

	// TranscriptLang is the preferred caption language for YouTube
	// transcripts (default "en").
	TranscriptLang string `json:"transcript_lang,omitempty" yaml:"transcript_lang,omitempty"`
}

// ReportConfig holds settings for report output and delivery.
type ReportConfig struct {
	// OutputDir is the directory where reports are written (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// EmailFrom is the sender address for emailed reports.
	EmailFrom string `json:"email_from,omitempty" yaml:"email_from,omitempty"`

	// ResendAPIKey authenticates against the Resend email API.
	ResendAPIKey string `json:"resend_api_key,omitempty" yaml:"resend_api_key,omitempty"`
}

// SummarizeConfig holds settings for the summarize workflow.
type SummarizeConfig struct {
	AIConfig `yaml:",inline"`

	// Sources lists the documents to combine and summarize.
	Sources []Source `json:"sources" yaml:"sources"`

	// Kind selects the output: mindmap, text, or both (default both).
	Kind SummaryKind `json:"type" yaml:"type"`

	// OutputName is the base name for output files, without extension.
	OutputName string `json:"output_file" yaml:"output_file"`
}

// ThinkConfig holds settings for the deep-think workflow.
type ThinkConfig struct {
	AIConfig `yaml:",inline"`

	// Link is the article URL to interrogate.
	Link string `json:"link" yaml:"link"`

	// Mode selects the reader/writer persona pair (default critical).
	Mode ThinkMode `json:"mode" yaml:"mode"`

	// Loops is the number of question/answer rounds (default 5).
	Loops int `json:"loops" yaml:"loops"`

	// Lang is the output language for the report (default "english").
	Lang string `json:"lang" yaml:"lang"`

	// Receivers lists email addresses the report is sent to. Empty
	// means no email.
	Receivers []string `json:"receivers,omitempty" yaml:"receivers,omitempty"`

	// Format selects the report format: md or html (default md).
	Format ReportFormat `json:"format" yaml:"format"`
}

// ArchiveConfig holds settings for the run archive.
type ArchiveConfig struct {
	// Dir is the directory containing the archive database (default "output").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of history rows (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	AI      AIConfig      `json:"ai" yaml:"ai"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}
