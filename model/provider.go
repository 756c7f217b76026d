package model

import "context"

// Provider abstracts the remote chat completions backend.
//
// This interface is defined in the model package (not provider package) to
// avoid import cycles: provider implementations can import model, and the
// session layer can use the Provider interface without importing the
// provider package.
type Provider interface {
	// Chat sends the full message history and returns the assistant's reply.
	// The call blocks until the remote service responds or the request fails;
	// one request is outstanding at a time.
	Chat(ctx context.Context, messages []Message) (string, error)

	// GetModel returns the model identifier sent with each request.
	// For OpenRouter this includes the vendor prefix (e.g., "qwen/qwen3-coder:free").
	GetModel() string

	// GetDisplayName returns the model name formatted for display.
	// For OpenRouter this strips the vendor prefix (e.g., "qwen/qwen3-coder:free" → "qwen3-coder:free").
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
