// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model abstracts the generative model APIs behind a single
// Generator interface so workflows and tests can swap backends.
package model

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pdiddy/summary-engine/pkg/types"
)

// Request is one generation call: a system persona description and the
// user content to respond to.
type Request struct {
	// System describes the persona and output rules for the model.
	System string

	// Prompt is the user content: article text plus task instructions.
	Prompt string
}

// Generator produces text from a generation request. Each
// implementation wraps one hosted model API; tests supply a mock.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// New constructs the Generator selected by cfg.Provider.
func New(cfg types.AIConfig) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return NewGeminiBackend(cfg)
	case "openai":
		return NewOpenAIBackend(cfg)
	}
	return nil, fmt.Errorf("unknown model provider %q (want gemini or openai)", cfg.Provider)
}

// backoffBase controls the base duration for exponential backoff.
// Tests override this to avoid real sleeps.
var backoffBase = time.Second

// GenerateWithRetry calls the generator with exponential backoff on
// failure: 1 s, 2 s, 4 s, ... between attempts. A maxRetries of zero
// or less uses the default of 3.
func GenerateWithRetry(ctx context.Context, g Generator, req Request, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		out, err := g.Generate(ctx, req)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
