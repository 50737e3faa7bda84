package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultGeminiURL is the generateContent endpoint used when GEMINI_API_URL is unset.
const DefaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Config holds all service configuration. Defaults are layered first,
// then overridden by environment variables (PORT, GEMINI_API_KEY, ...).
type Config struct {
	Port     string `koanf:"port"`
	Env      string `koanf:"env"`
	LogLevel string `koanf:"log_level"`

	GeminiAPIURL string `koanf:"gemini_api_url"`
	GeminiAPIKey string `koanf:"gemini_api_key"`

	PostgresDSN string `koanf:"postgres_dsn"`
	MongoURI    string `koanf:"mongo_uri"`
	MongoDB     string `koanf:"mongo_db"`

	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`

	SessionTTL time.Duration `koanf:"session_ttl"`
	StaticDir  string        `koanf:"static_dir"`
}

func defaults() *Config {
	return &Config{
		Port:         "8080",
		Env:          "development",
		LogLevel:     "info",
		GeminiAPIURL: DefaultGeminiURL,
		MongoURI:     "mongodb://localhost:27017",
		MongoDB:      "seo_generator",
		SessionTTL:   24 * time.Hour,
		StaticDir:    "dist",
	}
}

// Load builds the configuration from defaults and environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// PORT -> port, GEMINI_API_KEY -> gemini_api_key
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Env == "production"
}
