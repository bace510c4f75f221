// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/summary-engine/internal/httputil"
)

// defaultReaderBase is the Markdown reader proxy: GET <base>/<url>
// returns the page content converted to Markdown.
const defaultReaderBase = "https://r.jina.ai"

// fetchPage retrieves a web page as Markdown through the reader
// endpoint.
func (f *Fetcher) fetchPage(ctx context.Context, pageURL string) (string, error) {
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return "", fmt.Errorf("invalid page URL %q: missing scheme", pageURL)
	}

	base := f.Config.ReaderBase
	if base == "" {
		base = defaultReaderBase
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimSuffix(base, "/")+"/"+pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if f.Config.UserAgent != "" {
		req.Header.Set("User-Agent", f.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, f.Client, req, 0)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reader returned HTTP %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading reader response: %w", err)
	}
	return string(body), nil
}
