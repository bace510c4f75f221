// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch acquires source text for summarization: PDF files
// converted through the markitdown container, YouTube transcripts, and
// web pages read as Markdown.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/summary-engine/internal/container"
	"github.com/pdiddy/summary-engine/pkg/types"
)

// fetchConcurrency bounds parallel source acquisition.
const fetchConcurrency = 4

// Fetcher acquires text from the supported source types. The container
// runtime is only required when PDF sources are present.
type Fetcher struct {
	Client  *http.Client
	Runtime container.Runtime
	Config  types.FetchConfig
}

// New returns a Fetcher using the given container runtime, which may
// be nil when no PDF sources will be fetched.
func New(rt container.Runtime, cfg types.FetchConfig) *Fetcher {
	client := &http.Client{}
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	return &Fetcher{Client: client, Runtime: rt, Config: cfg}
}

// Fetch returns the text of one source, dispatching on its type.
func (f *Fetcher) Fetch(ctx context.Context, src types.Source) (string, error) {
	switch src.Type {
	case types.SourcePDF:
		return f.fetchPDF(ctx, src.Location)
	case types.SourceYouTube:
		return f.fetchTranscript(ctx, src.Location)
	case types.SourceURL:
		return f.fetchPage(ctx, src.Location)
	}
	return "", fmt.Errorf("source type %q not supported", src.Type)
}

// FetchAll acquires every source concurrently and returns the
// non-empty texts joined by blank lines, in input order. A source that
// fails or yields no text is reported to w and skipped; FetchAll only
// errors when nothing at all was extracted.
func (f *Fetcher) FetchAll(ctx context.Context, sources []types.Source, w io.Writer) (string, error) {
	texts := make([]string, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			texts[i], errs[i] = f.Fetch(gctx, src)
			return nil
		})
	}
	// Closures never return errors; per-source failures are collected
	// in errs so one bad source cannot cancel the rest.
	g.Wait()

	var combined strings.Builder
	for i, src := range sources {
		switch {
		case errs[i] != nil:
			fmt.Fprintf(w, "failed  %s: %v\n", src.Location, errs[i])
		case strings.TrimSpace(texts[i]) == "":
			fmt.Fprintf(w, "empty   %s: no text extracted\n", src.Location)
		default:
			fmt.Fprintf(w, "fetched %s (%d bytes)\n", src.Location, len(texts[i]))
			combined.WriteString(texts[i])
			combined.WriteString("\n\n")
		}
	}

	if combined.Len() == 0 {
		return "", fmt.Errorf("no text extracted from any of the %d sources", len(sources))
	}
	return combined.String(), nil
}
