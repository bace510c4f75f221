// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/summary-engine/pkg/types"
)

// OpenAIBackend calls chat completions through the official openai-go
// SDK. A custom BaseURL allows OpenAI-compatible endpoints.
type OpenAIBackend struct {
	Model string
	Opts  []option.RequestOption
}

// NewOpenAIBackend validates cfg and returns an OpenAI generator.
func NewOpenAIBackend(cfg types.AIConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key missing; provide ai.api_key or .secrets/openai-api-key")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIBackend{Model: cfg.Model, Opts: opts}, nil
}

// Generate sends the request as a system + user message pair and
// returns the first choice's content.
func (b *OpenAIBackend) Generate(ctx context.Context, req Request) (string, error) {
	client := openai.NewClient(b.Opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(b.Model),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
