// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/summary-engine/internal/container"
	"github.com/pdiddy/summary-engine/internal/fetch"
	"github.com/pdiddy/summary-engine/internal/report"
	"github.com/pdiddy/summary-engine/pkg/types"
)

// aiConfig assembles the model settings from flags, config file, and
// secrets, in that order of precedence.
func aiConfig(cmd *cobra.Command) types.AIConfig {
	provider, _ := cmd.Flags().GetString("provider")
	if provider == "" {
		provider = viper.GetString("ai.provider")
	}

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("ai.model")
	}

	keyFile := "gemini-api-key"
	if strings.EqualFold(provider, "openai") {
		keyFile = "openai-api-key"
	}

	return types.AIConfig{
		Provider:   provider,
		Model:      model,
		APIKey:     secretDefault(keyFile, viper.GetString("ai.api_key")),
		BaseURL:    viper.GetString("ai.base_url"),
		MaxRetries: viper.GetInt("ai.max_retries"),
	}
}

// fetchConfig assembles the source acquisition settings from the
// config file.
func fetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		ReaderBase:     viper.GetString("fetch.reader_base"),
		TranscriptLang: viper.GetString("fetch.transcript_lang"),
	}
}

// newFetcher builds a Fetcher, detecting a container runtime only when
// PDF sources need one.
func newFetcher(sources []types.Source, needsRuntime bool) (*fetch.Fetcher, error) {
	for _, src := range sources {
		if src.Type == types.SourcePDF {
			needsRuntime = true
		}
	}

	var rt container.Runtime
	if needsRuntime {
		var err error
		rt, err = container.DetectRuntime()
		if err != nil {
			return nil, fmt.Errorf("PDF sources need a container runtime: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Using container runtime: %s\n", rt.Name())
	}
	return fetch.New(rt, fetchConfig()), nil
}

// outputWriter builds the report writer for the configured output
// directory.
func outputWriter(cmd *cobra.Command) *report.Writer {
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		dir = viper.GetString("report.output_dir")
	}
	return report.NewWriter(dir)
}

// newMailer builds the Resend mailer from secrets and config.
func newMailer() *report.Mailer {
	return &report.Mailer{
		APIKey: secretDefault("resend-api-key", viper.GetString("report.resend_api_key")),
		From:   secretDefault("email-from", viper.GetString("report.email_from")),
	}
}

// archiveConfig assembles the run archive settings.
func archiveConfig() types.ArchiveConfig {
	dir := viper.GetString("archive.dir")
	if dir == "" {
		dir = viper.GetString("report.output_dir")
	}
	return types.ArchiveConfig{
		Dir:        dir,
		MaxResults: viper.GetInt("archive.max_results"),
	}
}
