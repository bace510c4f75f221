// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/summary-engine/internal/httputil"
)

// timedtextBase is the YouTube caption endpoint. Declared as a var so
// tests can substitute an httptest server.
var timedtextBase = "https://video.google.com/timedtext"

// transcriptFeed is the timedtext XML document: a flat list of caption
// segments.
type transcriptFeed struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// fetchTranscript downloads the caption track for a YouTube video and
// returns its segments joined into plain text.
func (f *Fetcher) fetchTranscript(ctx context.Context, video string) (string, error) {
	id, err := videoID(video)
	if err != nil {
		return "", err
	}

	lang := f.Config.TranscriptLang
	if lang == "" {
		lang = "en"
	}

	q := url.Values{}
	q.Set("lang", lang)
	q.Set("v", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, timedtextBase+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if f.Config.UserAgent != "" {
		req.Header.Set("User-Agent", f.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, f.Client, req, 0)
	if err != nil {
		return "", fmt.Errorf("fetching transcript for %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext returned HTTP %d for video %s", resp.StatusCode, id)
	}

	var feed transcriptFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return "", fmt.Errorf("parsing transcript for %s: %w", id, err)
	}
	if len(feed.Texts) == 0 {
		return "", fmt.Errorf("no %s captions for video %s", lang, id)
	}

	segments := make([]string, 0, len(feed.Texts))
	for _, t := range feed.Texts {
		// Caption bodies arrive entity-encoded, often twice.
		s := strings.TrimSpace(html.UnescapeString(html.UnescapeString(t.Body)))
		if s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, " "), nil
}

// videoID extracts the 11-character video ID from a YouTube URL in
// watch or short-link form, or accepts a bare ID.
func videoID(video string) (string, error) {
	if !strings.Contains(video, "/") && !strings.Contains(video, "?") {
		if video == "" {
			return "", fmt.Errorf("empty video reference")
		}
		return video, nil
	}

	u, err := url.Parse(video)
	if err != nil {
		return "", fmt.Errorf("invalid video URL %q: %w", video, err)
	}

	if strings.HasSuffix(u.Host, "youtu.be") {
		id := strings.Trim(u.Path, "/")
		if id != "" {
			return id, nil
		}
	}
	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}
	// Embed and shorts paths carry the ID as the final segment.
	if parts := strings.Split(strings.Trim(u.Path, "/"), "/"); len(parts) == 2 {
		switch parts[0] {
		case "embed", "shorts", "live":
			return parts[1], nil
		}
	}
	return "", fmt.Errorf("could not extract video ID from %q", video)
}
