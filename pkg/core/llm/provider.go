// Package llm abstracts the hosted language models behind a single provider
// interface so the analysis pipeline never depends on a concrete vendor.
package llm

import (
	"context"
	"time"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats.
	AdaptInstructions(rawInstructions string) string
}

// Message is one turn of a chat-completion request.
type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// generateTimeout bounds every narrative call. An expired call surfaces as
// an upstream failure instead of blocking the request indefinitely.
const generateTimeout = 90 * time.Second
