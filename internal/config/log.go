package config

import "sync"

type LogConfig struct {
	Level  string
	Format string
	File   string
}

var (
	logConfig *LogConfig
	logOnce   sync.Once
)

func LoadLogConfig() *LogConfig {
	logOnce.Do(func() {
		v := env()
		logConfig = &LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			File:   v.GetString("LOG_FILE"),
		}
	})
	return logConfig
}
