package think

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/summary-engine/internal/fetch"
	"github.com/pdiddy/summary-engine/internal/model"
	"github.com/pdiddy/summary-engine/internal/report"
	"github.com/pdiddy/summary-engine/pkg/types"
)

// scriptedGenerator answers reader, writer, and formatter requests
// from canned responses, keyed on the persona in the system prompt.
type scriptedGenerator struct {
	questions []string // one per reader round, "" ends the loop
	round     int
	answers   string
	requests  []model.Request
}

func (g *scriptedGenerator) Generate(_ context.Context, req model.Request) (string, error) {
	g.requests = append(g.requests, req)
	switch {
	case strings.Contains(req.System, "reader"):
		q := ""
		if g.round < len(g.questions) {
			q = g.questions[g.round]
		}
		g.round++
		return q, nil
	case strings.Contains(req.System, "writer of a given article"):
		return g.answers, nil
	case strings.Contains(req.System, "formatter"):
		// Pass the transcript through wrapped in a fence, as models
		// tend to do.
		return "```markdown\n" + req.Prompt + "\n```", nil
	}
	return "", fmt.Errorf("unexpected system prompt: %q", req.System)
}

func newTestRunner(t *testing.T, gen model.Generator) (*Runner, string) {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "the article text")
	}))
	t.Cleanup(ts.Close)

	f := fetch.New(nil, types.FetchConfig{ReaderBase: ts.URL})
	f.Client = ts.Client()

	dir := t.TempDir()
	return &Runner{
		Generator: gen,
		Fetcher:   f,
		Writer:    report.NewWriter(dir),
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}, dir
}

func TestRun(t *testing.T) {
	gen := &scriptedGenerator{
		questions: []string{"Q1?", "Q2?"},
		answers:   "Because of the evidence.",
	}
	r, dir := newTestRunner(t, gen)

	var status bytes.Buffer
	path, err := r.Run(context.Background(), types.ThinkConfig{
		Link:  "https://example.com/post",
		Mode:  types.ModeCritical,
		Loops: 2,
	}, &status)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if path != filepath.Join(dir, "critical1700000000.md") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "# Thinking(Mode: critical) on https://example.com/post\n\n") {
		t.Errorf("report header wrong:\n%s", got)
	}
	for _, want := range []string{"Q1?", "Q2?", "Because of the evidence.", "## Question:", "## Answer:"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	// The formatter's fence must not survive into the report.
	if strings.Contains(got, "```markdown") {
		t.Errorf("fence not stripped:\n%s", got)
	}
}

func TestRunHistoryFeedsSecondRound(t *testing.T) {
	gen := &scriptedGenerator{
		questions: []string{"Q1?", "Q2?"},
		answers:   "A.",
	}
	r, _ := newTestRunner(t, gen)

	var status bytes.Buffer
	if _, err := r.Run(context.Background(), types.ThinkConfig{
		Link:  "https://example.com/post",
		Loops: 2,
	}, &status); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Requests: reader, writer, reader, writer, formatter.
	if len(gen.requests) != 5 {
		t.Fatalf("requests = %d, want 5", len(gen.requests))
	}
	first, second := gen.requests[0], gen.requests[2]
	if strings.Contains(first.Prompt, "Asked Questions:") {
		t.Errorf("first round should have no history: %q", first.Prompt)
	}
	if !strings.Contains(second.Prompt, "Asked Questions:\nQ1?") ||
		!strings.Contains(second.Prompt, "Answers to Questions:\nA.") {
		t.Errorf("second round missing history: %q", second.Prompt)
	}
}

func TestRunStopsWhenQuestionsRunOut(t *testing.T) {
	gen := &scriptedGenerator{
		questions: []string{"Q1?"}, // round 2 returns ""
		answers:   "A.",
	}
	r, _ := newTestRunner(t, gen)

	var status bytes.Buffer
	path, err := r.Run(context.Background(), types.ThinkConfig{
		Link:  "https://example.com/post",
		Loops: 5,
	}, &status)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if path == "" {
		t.Error("expected a report path")
	}
	if !strings.Contains(status.String(), "no more questions") {
		t.Errorf("status = %q", status.String())
	}
	// reader, writer, reader (empty), formatter.
	if len(gen.requests) != 4 {
		t.Errorf("requests = %d, want 4", len(gen.requests))
	}
}

func TestRunNoQuestionsAtAll(t *testing.T) {
	gen := &scriptedGenerator{answers: "A."}
	r, _ := newTestRunner(t, gen)

	var status bytes.Buffer
	_, err := r.Run(context.Background(), types.ThinkConfig{Link: "https://example.com/post"}, &status)
	if err == nil || !strings.Contains(err.Error(), "no questions or answers") {
		t.Errorf("err = %v", err)
	}
}

func TestRunHTMLFormat(t *testing.T) {
	gen := &scriptedGenerator{questions: []string{"Q1?"}, answers: "A."}
	r, dir := newTestRunner(t, gen)

	var status bytes.Buffer
	path, err := r.Run(context.Background(), types.ThinkConfig{
		Link:   "https://example.com/post",
		Loops:  1,
		Format: types.FormatHTML,
	}, &status)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if path != filepath.Join(dir, "critical1700000000.html") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "<!DOCTYPE html>") || !strings.Contains(got, "<h1") {
		t.Errorf("html report wrong:\n%s", got)
	}
}

func TestRunMailsReceivers(t *testing.T) {
	var mailed struct {
		Subject string   `json:"subject"`
		To      []string `json:"to"`
	}
	mailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&mailed); err != nil {
			t.Errorf("decoding mail: %v", err)
		}
		w.Write([]byte(`{"id":"x"}`))
	}))
	defer mailSrv.Close()

	gen := &scriptedGenerator{questions: []string{"Q1?"}, answers: "A."}
	r, _ := newTestRunner(t, gen)
	r.Mailer = &report.Mailer{APIKey: "k", From: "reports@example.com", Client: mailSrv.Client(), Endpoint: mailSrv.URL}

	var status bytes.Buffer
	_, err := r.Run(context.Background(), types.ThinkConfig{
		Link:      "https://example.com/post",
		Loops:     1,
		Receivers: []string{"a@example.com"},
	}, &status)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if mailed.Subject != "critical1700000000" || len(mailed.To) != 1 {
		t.Errorf("mail = %+v", mailed)
	}
}

func TestRunValidation(t *testing.T) {
	r, _ := newTestRunner(t, &scriptedGenerator{})

	tests := []struct {
		name    string
		cfg     types.ThinkConfig
		wantSub string
	}{
		{name: "no link", cfg: types.ThinkConfig{}, wantSub: "no link"},
		{name: "bad mode", cfg: types.ThinkConfig{Link: "x", Mode: "dreamy"}, wantSub: "thinking mode"},
		{name: "bad format", cfg: types.ThinkConfig{Link: "x", Format: "pdf"}, wantSub: "report format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status bytes.Buffer
			_, err := r.Run(context.Background(), tt.cfg, &status)
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("err = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "job.yaml")
	content := `link: https://example.com/post
mode: faq
loops: 3
lang: german
receivers:
  - a@example.com
format: html
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Mode != types.ModeFAQ || cfg.Loops != 3 || cfg.Lang != "german" || cfg.Format != types.FormatHTML {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Receivers) != 1 {
		t.Errorf("receivers = %v", cfg.Receivers)
	}

	t.Run("defaults", func(t *testing.T) {
		minimal := filepath.Join(dir, "minimal.yaml")
		if err := os.WriteFile(minimal, []byte("link: https://example.com/post\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(minimal)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Mode != types.ModeCritical || cfg.Loops != 5 || cfg.Lang != "english" || cfg.Format != types.FormatMarkdown {
			t.Errorf("defaults = %+v", cfg)
		}
	})

	t.Run("missing link", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(bad, []byte("mode: faq\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(bad); err == nil {
			t.Error("want error for missing link")
		}
	})
}

func TestSessionTranscript(t *testing.T) {
	var s Session
	s.AddQuestions("Q1?")
	s.AddAnswers("A1.")
	s.AddQuestions("Q2?")
	s.AddAnswers("A2.")

	got := s.Transcript()
	want := "## Question:\n\n Q1?\n\n## Answer: \n\nA1.\n## Question:\n\n Q2?\n\n## Answer: \n\nA2."
	if got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}
