// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/summary-engine/internal/model"
	"github.com/pdiddy/summary-engine/internal/think"
	"github.com/pdiddy/summary-engine/pkg/types"
)

var thinkCmd = &cobra.Command{
	Use:   "think [link]",
	Short: "Run a deep-think question loop over an article",
	Long: `Think fetches an article and loops a reader persona asking questions
against a writer persona answering them. The formatted transcript is
written as a report and can be mailed to receivers.

Give the article link as an argument, or a job file with --job:

    link: https://example.com/post
    mode: critical
    loops: 5
    lang: english
    receivers:
      - someone@example.com
    format: md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThink,
}

func runThink(cmd *cobra.Command, args []string) error {
	cfg, err := thinkConfigFrom(cmd, args)
	if err != nil {
		return err
	}
	cfg.AIConfig = mergeAIConfig(cmd, cfg.AIConfig)

	gen, err := model.New(cfg.AIConfig)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(nil, false)
	if err != nil {
		return err
	}

	runner := &think.Runner{
		Generator: gen,
		Fetcher:   fetcher,
		Writer:    outputWriter(cmd),
		Mailer:    newMailer(),
		Retries:   cfg.MaxRetries,
	}

	ctx := context.Background()
	path, err := runner.Run(ctx, *cfg, os.Stdout)
	if err != nil {
		return err
	}

	return recordRun(ctx, types.WorkflowThink, []string{cfg.Link}, cfg.Model, path)
}

// thinkConfigFrom builds the job config from a --job file or from the
// link argument plus flags.
func thinkConfigFrom(cmd *cobra.Command, args []string) (*types.ThinkConfig, error) {
	jobFile, _ := cmd.Flags().GetString("job")

	var cfg *types.ThinkConfig
	if jobFile != "" {
		loaded, err := think.LoadConfig(jobFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &types.ThinkConfig{}
	}

	if len(args) == 1 {
		cfg.Link = args[0]
	}
	if cfg.Link == "" {
		return nil, fmt.Errorf("no link given: pass it as an argument or in a --job file")
	}

	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		cfg.Mode = types.ThinkMode(mode)
	}
	if loops, _ := cmd.Flags().GetInt("loops"); loops > 0 {
		cfg.Loops = loops
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Lang = lang
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = types.ReportFormat(format)
	}
	if to, _ := cmd.Flags().GetStringSlice("to"); len(to) > 0 {
		cfg.Receivers = to
	}
	return cfg, nil
}

func init() {
	thinkCmd.Flags().String("job", "", "path to a job file (YAML or JSON)")
	thinkCmd.Flags().String("mode", "", "thinking mode: critical or faq (default: critical)")
	thinkCmd.Flags().Int("loops", 0, "number of question/answer rounds (default: 5)")
	thinkCmd.Flags().String("lang", "", "output language for the report (default: english)")
	thinkCmd.Flags().String("format", "", "report format: md or html (default: md)")
	thinkCmd.Flags().StringSlice("to", nil, "email addresses to send the report to")
	thinkCmd.Flags().String("provider", "", "model provider: gemini or openai")
	thinkCmd.Flags().String("model", "", "model identifier for generation")
	thinkCmd.Flags().String("output-dir", "", "directory for generated files (default: output)")

	rootCmd.AddCommand(thinkCmd)
}
