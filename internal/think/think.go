// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package think runs the deep-think workflow: fetch an article, loop a
// reader persona asking questions against a writer persona answering
// them, format the transcript, and deliver the report.
package think

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

const (
	defaultLoops = 5
	defaultLang  = "english"

	// Character limits passed to the personas. Answers get twice the
	// room questions do.
	questionMaxLength = 300
	answerMaxLength   = 600
)

// LoadConfig reads a deep-think job file. The file is YAML; JSON files
// parse as well since JSON is a YAML subset.
func LoadConfig(path string) (*types.ThinkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var cfg types.ThinkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Runner executes deep-think jobs with a fixed set of collaborators.
// Mailer may be nil when no receivers are configured.
type Runner struct {
	Generator model.Generator
	Fetcher   *fetch.Fetcher
	Writer    *report.Writer
	Mailer    *report.Mailer
	Retries   int

	// Now supplies the report topic timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run executes one deep-think job and returns the path of the report
// written. Progress lines go to w.
func (r *Runner) Run(ctx context.Context, cfg types.ThinkConfig, w io.Writer) (string, error) {
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return "", err
	}

	article, err := r.Fetcher.Fetch(ctx, types.Source{Location: cfg.Link, Type: types.SourceURL})
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", cfg.Link, err)
	}

	var session Session
	for i := 0; i < cfg.Loops; i++ {
		fmt.Fprintf(w, "thinking loop %d of %d\n", i+1, cfg.Loops)

		questions, err := r.askQuestions(ctx, article, cfg, &session)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(questions) == "" {
			fmt.Fprintln(w, "no more questions")
			break
		}
		session.AddQuestions(questions)

		answers, err := r.answerQuestions(ctx, article, questions, cfg)
		if err != nil {
			return "", err
		}
		session.AddAnswers(answers)
	}

	if len(session.Exchanges) == 0 {
		return "", fmt.Errorf("no questions or answers produced")
	}

	fmt.Fprintln(w, "formatting transcript")
	formatted, err := r.formatTranscript(ctx, session.Transcript(), cfg)
	if err != nil {
		return "", err
	}

	content := fmt.Sprintf("# Thinking(Mode: %s) on %s\n\n%s", cfg.Mode, cfg.Link, formatted)

	now := r.Now
	if now == nil {
		now = time.Now
	}
	topic := fmt.Sprintf("%s%d", cfg.Mode, now().Unix())

	path, err := r.writeReport(topic, content, cfg.Format)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "report written to %s\n", path)

	if len(cfg.Receivers) > 0 {
		if r.Mailer == nil {
			return "", fmt.Errorf("receivers configured but no mailer available")
		}
		if err := r.Mailer.Send(ctx, topic, cfg.Receivers, content); err != nil {
			return "", fmt.Errorf("mailing report: %w", err)
		}
		fmt.Fprintf(w, "report mailed to %s\n", strings.Join(cfg.Receivers, ", "))
	}
	return path, nil
}

func applyDefaults(cfg *types.ThinkConfig) {
	if cfg.Mode == "" {
		cfg.Mode = types.ModeCritical
	}
	if cfg.Loops <= 0 {
		cfg.Loops = defaultLoops
	}
	if cfg.Lang == "" {
		cfg.Lang = defaultLang
	}
	if cfg.Format == "" {
		cfg.Format = types.FormatMarkdown
	}
}

func validate(cfg *types.ThinkConfig) error {
	if cfg.Link == "" {
		return fmt.Errorf("no link given")
	}
	if !types.ValidThinkMode(cfg.Mode) {
		return fmt.Errorf("thinking mode %q not supported", cfg.Mode)
	}
	if !types.ValidReportFormat(cfg.Format) {
		return fmt.Errorf("report format %q not supported (want md or html)", cfg.Format)
	}
	return nil
}

// askQuestions runs the reader persona. After the first round the
// prompt carries the question and answer histories.
func (r *Runner) askQuestions(ctx context.Context, article string, cfg types.ThinkConfig, s *Session) (string, error) {
	prompt := "Article:\n" + article
	if len(s.Exchanges) > 0 {
		prompt = fmt.Sprintf("Article:\n%s\nAsked Questions:\n%s\nAnswers to Questions:\n%s",
			article, strings.Join(s.Questions(), "\n"), strings.Join(s.Answers(), "\n"))
	}

	out, err := model.GenerateWithRetry(ctx, r.Generator, model.Request{
		System: lengthAndLang(modes[cfg.Mode].reader, questionMaxLength, cfg.Lang),
		Prompt: prompt,
	}, r.Retries)
	if err != nil {
		return "", fmt.Errorf("asking questions: %w", err)
	}
	return out, nil
}

// answerQuestions runs the writer persona against one round of
// questions.
func (r *Runner) answerQuestions(ctx context.Context, article, questions string, cfg types.ThinkConfig) (string, error) {
	out, err := model.GenerateWithRetry(ctx, r.Generator, model.Request{
		System: lengthAndLang(modes[cfg.Mode].writer, answerMaxLength, cfg.Lang),
		Prompt: "Article:\n" + article + "\nQuestions:\n" + questions,
	}, r.Retries)
	if err != nil {
		return "", fmt.Errorf("answering questions: %w", err)
	}
	return out, nil
}

// formatTranscript runs the formatting pass over the raw transcript
// and strips any code fence wrapping the response.
func (r *Runner) formatTranscript(ctx context.Context, transcript string, cfg types.ThinkConfig) (string, error) {
	out, err := model.GenerateWithRetry(ctx, r.Generator, model.Request{
		System: formatterSystem + "\n\n" + formatterInstructions(cfg.Lang),
		Prompt: transcript,
	}, r.Retries)
	if err != nil {
		return "", fmt.Errorf("formatting transcript: %w", err)
	}
	return mindmap.CodeBlockBody(out), nil
}

// writeReport persists the report in the requested format.
func (r *Runner) writeReport(topic, content string, format types.ReportFormat) (string, error) {
	if format == types.FormatHTML {
		page, err := report.RenderPage(topic, content)
		if err != nil {
			return "", err
		}
		return r.Writer.Write(topic+".html", page)
	}
	return r.Writer.Write(topic+".md", content)
}
