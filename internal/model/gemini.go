// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/summary-engine/pkg/types"
)

// geminiAPIBase is the Gemini API endpoint base. Package-level var for
// test substitution with an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

// GeminiBackend calls the Gemini generateContent API.
type GeminiBackend struct {
	APIKey string
	Model  string
	Client *http.Client

	// APIBase overrides the default endpoint base when set.
	APIBase string
}

// NewGeminiBackend validates cfg and returns a Gemini generator.
func NewGeminiBackend(cfg types.AIConfig) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key missing; provide ai.api_key or .secrets/gemini-api-key")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}
	return &GeminiBackend{APIKey: cfg.APIKey, Model: cfg.Model, APIBase: cfg.BaseURL}, nil
}

// geminiRequest is the request body for the generateContent endpoint.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

// geminiContent is one content block: a role plus text parts.
type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the generateContent response the
// pipeline consumes.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate calls the Gemini API with the request's system instruction
// and prompt and returns the first candidate's concatenated text.
func (b *GeminiBackend) Generate(ctx context.Context, req Request) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	base := b.APIBase
	if base == "" {
		base = geminiAPIBase
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", base, b.Model, b.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(msg))
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	var out bytes.Buffer
	for _, part := range gResp.Candidates[0].Content.Parts {
		out.WriteString(part.Text)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("Gemini API returned empty content")
	}
	return out.String(), nil
}
