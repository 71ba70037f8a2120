// Package llmclient provides remote text-generation clients.
//
// Clients implement the single-method Generate capability consumed by the
// pipeline. Construction is gated on API-key environment variables: a
// missing key yields a nil client, meaning "capability unavailable", never
// an error.
package llmclient

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Supported providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// API-key environment variables gating client construction.
const (
	GeminiKeyEnv = "GEMINI_API_KEY"
	GoogleKeyEnv = "GOOGLE_API_KEY"
	OpenAIKeyEnv = "OPENAI_API_KEY"
)

// ErrUnknownProvider indicates an unrecognized provider name.
var ErrUnknownProvider = errors.New("unknown llm provider")

// Client is a remote text generator.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FromEnv builds a client for the named provider using its API key from the
// environment. A missing key returns (nil, nil): the capability is absent,
// not broken. model may be empty to use the provider default.
func FromEnv(ctx context.Context, provider, model string) (Client, error) {
	switch provider {
	case ProviderGemini, "":
		key := os.Getenv(GeminiKeyEnv)
		if key == "" {
			key = os.Getenv(GoogleKeyEnv)
		}
		if key == "" {
			return nil, nil
		}
		return NewGemini(ctx, key, model)
	case ProviderOpenAI:
		key := os.Getenv(OpenAIKeyEnv)
		if key == "" {
			return nil, nil
		}
		return NewOpenAI(key, model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
