package config

import (
	"strings"
	"sync"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type GeminiConfig struct {
	APIKey   string
	Model    string
	Provider string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

// LoadGeminiConfig reads GEMINI_API_KEY, falling back to API_KEY.
func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		v := env()
		apiKey := v.GetString("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = v.GetString("API_KEY")
		}
		geminiConfig = &GeminiConfig{
			APIKey:   apiKey,
			Model:    v.GetString("GEMINI_MODEL"),
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("AI_PROVIDER"))),
		}
	})
	return geminiConfig
}
