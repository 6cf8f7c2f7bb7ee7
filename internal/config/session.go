package config

import (
	"log"
	"sync"
	"time"
)

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		v := env()
		ttl := v.GetDuration("SESSION_TTL")
		if ttl <= 0 {
			ttl = 2 * time.Hour
			log.Printf("Warning: invalid SESSION_TTL, defaulting to %s", ttl)
		}
		sessionConfig = &SessionConfig{
			TTL:        ttl,
			CookieName: v.GetString("SESSION_COOKIE"),
		}
	})
	return sessionConfig
}
