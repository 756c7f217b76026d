package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orchat/config"
	"orchat/model"
)

const (
	// DefaultURL is OpenRouter's chat completions endpoint.
	DefaultURL = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultModel is used when no model is configured.
	DefaultModel = "cognitivecomputations/dolphin3.0-mistral-24b:free"
)

// OpenRouterProvider implements model.Provider against OpenRouter's
// OpenAI-compatible chat completions endpoint using plain HTTP.
//
// Each call sends the entire conversation in one POST and reads the first
// choice of the reply. TLS, pooling, and timeouts are the http.Client's
// concern; no retry policy is applied here.
type OpenRouterProvider struct {
	client  *http.Client
	url     string
	apiKey  string
	model   string
	referer string
	title   string
}

// NewOpenRouterProvider creates a new OpenRouter provider instance.
// The API key is required; URL and model fall back to defaults.
func NewOpenRouterProvider(cfg Config) (*OpenRouterProvider, error) {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid OpenRouter URL: %w", err)
	}

	return &OpenRouterProvider{
		client:  http.DefaultClient,
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		referer: cfg.Referer,
		title:   cfg.Title,
	}, nil
}

// Chat implements model.Provider.Chat with a single blocking POST.
func (p *OpenRouterProvider) Chat(ctx context.Context, messages []model.Message) (string, error) {
	body, err := json.Marshal(ChatRequest{
		Model:    p.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	p.setHeaders(req)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[OpenRouter] POST %s model=%s messages=%d body=%dB", p.url, p.model, len(messages), len(body))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProtocolError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var parsed ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ParseError{Reason: "malformed response body", Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &ParseError{Reason: "response has no choices"}
	}

	reply := parsed.Choices[0].Message.Content
	if reply == "" {
		return "", &ParseError{Reason: "response choice has empty content"}
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[OpenRouter] %d id=%s reply=%d chars", resp.StatusCode, parsed.ID, len(reply))
	}

	return reply, nil
}

func (p *OpenRouterProvider) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	if p.referer != "" {
		req.Header.Set("HTTP-Referer", p.referer)
	}
	if p.title != "" {
		req.Header.Set("X-Title", p.title)
	}
}

// GetModel implements model.Provider.GetModel.
// Returns the full model name with vendor prefix for API calls.
func (p *OpenRouterProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements model.Provider.GetDisplayName.
// Returns the model name with the vendor prefix stripped.
func (p *OpenRouterProvider) GetDisplayName() string {
	return stripProviderPrefix(p.model)
}

// SetModel implements model.Provider.SetModel.
func (p *OpenRouterProvider) SetModel(model string) {
	p.model = model
}

// Ping implements model.Provider.Ping by fetching the models listing with
// the configured credentials.
func (p *OpenRouterProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.modelsURL(), nil)
	if err != nil {
		return fmt.Errorf("OpenRouter ping failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("OpenRouter ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("OpenRouter ping failed with status %d", resp.StatusCode)
	}
	return nil
}

// modelsURL derives the models endpoint from the chat completions URL.
// "https://openrouter.ai/api/v1/chat/completions" → "https://openrouter.ai/api/v1/models"
func (p *OpenRouterProvider) modelsURL() string {
	if idx := strings.Index(p.url, "/chat/completions"); idx != -1 {
		return p.url[:idx] + "/models"
	}
	return strings.TrimRight(p.url, "/") + "/models"
}

// stripProviderPrefix removes vendor prefixes from OpenRouter model names.
// "meta-llama/llama-3.2-90b-instruct" → "llama-3.2-90b-instruct"
func stripProviderPrefix(modelName string) string {
	if idx := strings.Index(modelName, "/"); idx != -1 {
		return modelName[idx+1:]
	}
	return modelName
}
