// Package provider implements the HTTP client for OpenRouter's
// chat completions API.
//
// The session and chat layers depend only on the model.Provider interface,
// so they can be exercised with fake providers in tests. This package
// supplies the one real implementation plus the typed error taxonomy that
// per-turn failures are reported through:
//
//   - TransportError: the request never produced a usable response
//     (DNS, connect, TLS, read failure)
//   - ProtocolError: the service answered with a non-2xx status
//   - ParseError: the body did not match the expected response shape
//
// Construction goes through the NewProvider factory so that configuration
// stays declarative and the dispatch point is in one place.
package provider

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeOpenRouter ProviderType = "openrouter"
)

// Config holds provider configuration resolved at startup.
type Config struct {
	Type    ProviderType
	URL     string // chat completions endpoint
	APIKey  string
	Model   string
	Referer string // optional HTTP-Referer header
	Title   string // optional X-Title header
}
