package llmprovider

import (
	"sort"

	"portfolio-chatbot/config"
	"portfolio-chatbot/pkg/openrouter"
)

// InitializeProviders creates one Provider per enabled model in cfg.
// Returns providers sorted by priority (ascending) with disabled models filtered out.
// A missing API key is not an error here: calls fail fast and the caller falls back.
func InitializeProviders(cfg config.LLMConfig) ([]Provider, error) {
	var enabled []config.ModelConfig
	for _, m := range cfg.Models {
		if m.Enabled && m.Name != "" {
			enabled = append(enabled, m)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	client := openrouter.New(openrouter.Config{
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    enabled[0].Name,
		SiteURL:  cfg.SiteURL,
		SiteName: cfg.SiteName,
		Timeout:  cfg.Timeout,
	})

	providers := make([]Provider, 0, len(enabled))
	for _, m := range enabled {
		providers = append(providers, NewOpenRouterAdapter(client, m.Name))
	}
	return providers, nil
}
