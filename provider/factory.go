package provider

import (
	"fmt"

	"orchat/model"
)

// NewProvider creates a provider based on configuration.
//
// This is the centralized factory for creating any provider type. Only
// OpenRouter is implemented; the dispatch exists so configuration stays
// declarative and construction errors surface in one place.
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeOpenRouter:
		p, err := NewOpenRouterProvider(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}
