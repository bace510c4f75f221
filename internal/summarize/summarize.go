// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize runs the summary workflow: acquire source texts,
// generate a Mermaid mindmap and/or a prose summary, repair the
// mindmap syntax, and write the result to the output directory.
package summarize

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/summary-engine/internal/fetch"
	"github.com/pdiddy/summary-engine/internal/mindmap"
	"github.com/pdiddy/summary-engine/internal/model"
	"github.com/pdiddy/summary-engine/internal/report"
	"github.com/pdiddy/summary-engine/pkg/types"
)

// LoadConfig reads a summarize job file. The file is YAML; JSON files
// parse as well since JSON is a YAML subset.
func LoadConfig(path string) (*types.SummarizeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var cfg types.SummarizeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if cfg.Kind == "" {
		cfg.Kind = types.SummaryBoth
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *types.SummarizeConfig) error {
	if !types.ValidSummaryKind(cfg.Kind) {
		return fmt.Errorf("summary type %q not supported", cfg.Kind)
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources given")
	}
	for _, src := range cfg.Sources {
		if !types.ValidSourceType(src.Type) {
			return fmt.Errorf("source type %q not supported", src.Type)
		}
	}
	if cfg.OutputName == "" {
		return fmt.Errorf("no output file name given")
	}
	return nil
}

// Runner executes summarize jobs with a fixed set of collaborators.
type Runner struct {
	Generator model.Generator
	Fetcher   *fetch.Fetcher
	Writer    *report.Writer
	Retries   int

	// Now supplies the report date. Defaults to time.Now.
	Now func() time.Time
}

// Run executes one summarize job and returns the path of the file
// written. Progress lines go to w.
func (r *Runner) Run(ctx context.Context, cfg types.SummarizeConfig, w io.Writer) (string, error) {
	if err := validate(&cfg); err != nil {
		return "", err
	}

	text, err := r.Fetcher.FetchAll(ctx, cfg.Sources, w)
	if err != nil {
		return "", err
	}

	switch cfg.Kind {
	case types.SummaryMindmap:
		mm, err := r.generateMindmap(ctx, text, w)
		if err != nil {
			return "", err
		}
		return r.Writer.Write(cfg.OutputName+".mm", fencedMermaid(mm))

	case types.SummaryText:
		summary, err := r.generateText(ctx, text, w)
		if err != nil {
			return "", err
		}
		return r.Writer.Write(cfg.OutputName+".md", summary)

	default:
		mm, err := r.generateMindmap(ctx, text, w)
		if err != nil {
			return "", err
		}
		summary, err := r.generateText(ctx, text, w)
		if err != nil {
			return "", err
		}
		return r.Writer.Write(cfg.OutputName+".md", spliceMindmap(summary, mm))
	}
}

// generateMindmap asks the model for a mindmap and repairs its syntax.
func (r *Runner) generateMindmap(ctx context.Context, text string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "generating mindmap")
	raw, err := model.GenerateWithRetry(ctx, r.Generator, model.Request{
		System: mindmapSystem + "\n\n" + mindmapInstructions,
		Prompt: text,
	}, r.Retries)
	if err != nil {
		return "", fmt.Errorf("generating mindmap: %w", err)
	}
	return mindmap.Sanitize(raw), nil
}

// generateText asks the model for a prose summary and strips any code
// fence wrapping the response.
func (r *Runner) generateText(ctx context.Context, text string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "generating summary")
	now := r.Now
	if now == nil {
		now = time.Now
	}
	instructions, err := summaryInstructions(now().Format("2006-01-02"))
	if err != nil {
		return "", fmt.Errorf("rendering summary prompt: %w", err)
	}
	raw, err := model.GenerateWithRetry(ctx, r.Generator, model.Request{
		System: summarySystem + "\n\n" + instructions,
		Prompt: text,
	}, r.Retries)
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	return mindmap.CodeBlockBody(raw), nil
}

// fencedMermaid wraps a mindmap in a mermaid code fence for rendering.
func fencedMermaid(mm string) string {
	return "```mermaid\n" + mm + "\n```"
}

// spliceMindmap inserts the mindmap as a "## Mindmap" section after
// the summary's title line.
func spliceMindmap(summary, mm string) string {
	lines := strings.Split(summary, "\n")
	section := "\n## Mindmap\n" + fencedMermaid(mm)
	if len(lines) < 2 {
		return summary + "\n" + section
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[0], section)
	out = append(out, lines[1:]...)
	return strings.Join(out, "\n")
}
