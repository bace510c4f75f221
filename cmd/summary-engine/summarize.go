// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/summary-engine/internal/archive"
	"github.com/pdiddy/summary-engine/internal/model"
	"github.com/pdiddy/summary-engine/internal/summarize"
	"github.com/pdiddy/summary-engine/pkg/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <job-file>",
	Short: "Summarize sources into a mindmap and/or prose summary",
	Long: `Summarize reads a job file listing PDF, YouTube, and web sources,
combines their text, and generates a Mermaid mindmap, a prose summary,
or both. Output lands in the report directory; the run is recorded in
the archive.

Job file (YAML or JSON):

    sources:
      - source: https://example.com/post
        source_type: url
      - source: papers/moe.pdf
        source_type: pdf
    type: both
    output_file: moe-notes`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := summarize.LoadConfig(args[0])
	if err != nil {
		return err
	}

	if kind, _ := cmd.Flags().GetString("type"); kind != "" {
		cfg.Kind = types.SummaryKind(kind)
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputName = out
	}
	cfg.AIConfig = mergeAIConfig(cmd, cfg.AIConfig)

	gen, err := model.New(cfg.AIConfig)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg.Sources, false)
	if err != nil {
		return err
	}

	runner := &summarize.Runner{
		Generator: gen,
		Fetcher:   fetcher,
		Writer:    outputWriter(cmd),
		Retries:   cfg.MaxRetries,
	}

	ctx := context.Background()
	path, err := runner.Run(ctx, *cfg, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("Summary written to %s\n", path)

	return recordRun(ctx, types.WorkflowSummarize, sourceLocations(cfg.Sources), cfg.Model, path)
}

// mergeAIConfig overlays CLI and config-file model settings on top of
// the job file's values.
func mergeAIConfig(cmd *cobra.Command, jobCfg types.AIConfig) types.AIConfig {
	base := aiConfig(cmd)
	if jobCfg.Provider != "" {
		base.Provider = jobCfg.Provider
	}
	if jobCfg.Model != "" {
		base.Model = jobCfg.Model
	}
	if jobCfg.APIKey != "" {
		base.APIKey = jobCfg.APIKey
	}
	if jobCfg.BaseURL != "" {
		base.BaseURL = jobCfg.BaseURL
	}
	if jobCfg.MaxRetries > 0 {
		base.MaxRetries = jobCfg.MaxRetries
	}
	// Flags outrank the job file.
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		base.Provider = provider
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		base.Model = model
	}
	return base
}

func sourceLocations(sources []types.Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Location
	}
	return out
}

// recordRun stores a completed run in the archive. Archive failures
// warn instead of failing the workflow that already produced output.
func recordRun(ctx context.Context, workflow types.Workflow, sources []string, model, path string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open run archive: %v\n", err)
		return nil
	}
	defer store.Close()

	if _, err := store.Record(ctx, workflow, sources, model, path); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
	return nil
}

func init() {
	summarizeCmd.Flags().String("type", "", "summary type: mindmap, text, or both (overrides the job file)")
	summarizeCmd.Flags().String("output", "", "output file base name (overrides the job file)")
	summarizeCmd.Flags().String("provider", "", "model provider: gemini or openai")
	summarizeCmd.Flags().String("model", "", "model identifier for generation")
	summarizeCmd.Flags().String("output-dir", "", "directory for generated files (default: output)")

	rootCmd.AddCommand(summarizeCmd)
}
