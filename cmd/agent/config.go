package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the agent, loaded from the
// environment and config.yaml.
type AppConfig struct {
	Port     string
	Provider string // "anthropic" or "gemini"

	AnthropicAPIKey string
	ClaudeModel     string
	GeminiAPIKey    string
	GeminiModel     string

	RedisAddr  string
	SQLitePath string

	SpeechAPIKey   string
	SpeechLanguage string

	Agent AgentConfig
}

// AgentConfig carries the tuning knobs read from config.yaml.
type AgentConfig struct {
	Defaults struct {
		TargetAI       string `yaml:"target_ai"`
		ExpertiseLevel string `yaml:"expertise_level"`
		Language       string `yaml:"language"`
	} `yaml:"defaults"`
	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Session struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"session"`
	History struct {
		RecentLimit int `yaml:"recent_limit"`
	} `yaml:"history"`
}

// CacheTTL returns the prompt-cache TTL with a one hour floor default.
func (c AgentConfig) CacheTTL() time.Duration {
	if c.Cache.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// SessionTTL returns the guided-session TTL; non-positive values defer to
// the store's default.
func (c AgentConfig) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// LoadConfig loads configuration from a .env file (local development only),
// environment variables, and config.yaml.
func LoadConfig() (*AppConfig, error) {
	// In containers (GIN_MODE=release) configuration arrives as plain
	// environment variables; the .env file is a local convenience.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		Port:            envOr("PORT", "8000"),
		Provider:        envOr("LLM_PROVIDER", "anthropic"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		ClaudeModel:     envOr("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		SQLitePath:      envOr("SQLITE_PATH", "data/prompt-agent.db"),
		SpeechAPIKey:    os.Getenv("SPEECH_API_KEY"),
		SpeechLanguage:  envOr("SPEECH_LANGUAGE", "en-US"),
	}

	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want anthropic or gemini)", cfg.Provider)
	}

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}
	if err := yaml.Unmarshal(yamlFile, &cfg.Agent); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
