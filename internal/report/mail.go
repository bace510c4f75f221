// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/summary-engine/internal/httputil"
)

// resendAPIURL is the default Resend send endpoint.
const resendAPIURL = "https://api.resend.com/emails"

// Mailer sends report content as HTML email through the Resend API.
type Mailer struct {
	APIKey string
	From   string
	Client *http.Client

	// Endpoint overrides the Resend API URL. Tests point it at an
	// httptest server.
	Endpoint string
}

// resendRequest is the request body for the Resend send endpoint.
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send renders the Markdown content to HTML and mails it to the
// receivers with the given subject.
func (m *Mailer) Send(ctx context.Context, subject string, receivers []string, markdown string) error {
	if m.APIKey == "" {
		return fmt.Errorf("no Resend API key configured")
	}
	if m.From == "" {
		return fmt.Errorf("no sender address configured")
	}
	if len(receivers) == 0 {
		return fmt.Errorf("no receivers given")
	}

	html, err := RenderHTML(markdown)
	if err != nil {
		return err
	}

	bodyBytes, err := json.Marshal(resendRequest{
		From:    m.From,
		To:      receivers,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("marshaling mail request: %w", err)
	}

	endpoint := m.Endpoint
	if endpoint == "" {
		endpoint = resendAPIURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return fmt.Errorf("calling Resend API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Resend API returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
