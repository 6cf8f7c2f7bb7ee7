package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once

	envReader *viper.Viper
	envOnce   sync.Once
)

// env returns the shared reader for process environment values.
func env() *viper.Viper {
	envOnce.Do(func() {
		envReader = viper.New()
		envReader.AutomaticEnv()

		envReader.SetDefault("APP_NAME", "Koh Lanta Senior - Espace Candidat")
		envReader.SetDefault("APP_PORT", ":8080")
		envReader.SetDefault("AI_PROVIDER", ProviderGemini)
		envReader.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
		envReader.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
		envReader.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
		envReader.SetDefault("SESSION_TTL", "2h")
		envReader.SetDefault("SESSION_COOKIE", "intake_session")
		envReader.SetDefault("LOG_LEVEL", "info")
		envReader.SetDefault("LOG_FORMAT", "console")
	})
	return envReader
}

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		v := env()
		appEnv := v.GetString("APP_ENV")
		if appEnv == "" {
			appEnv = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", appEnv)
		}
		appConfig = &AppConfig{
			Name:    v.GetString("APP_NAME"),
			Env:     appEnv,
			Port:    v.GetString("APP_PORT"),
			BaseURL: v.GetString("APP_URL"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
