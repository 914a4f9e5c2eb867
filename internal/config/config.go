// Package config loads taskflowd configuration from YAML files and
// environment overrides.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type AIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (a AIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	AI     AIConfig     `mapstructure:"ai"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		AI: AIConfig{
			Model:          "gpt-3.5-turbo",
			TimeoutSeconds: 30,
		},
	}
}

// ApplyEnv layers environment overrides on top of file configuration. The
// API key additionally falls back to OPENAI_API_KEY so the stock OpenAI
// setup works without a config file.
func ApplyEnv(cfg *Config) {
	if v := getEnv("TASKFLOWD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getEnv("TASKFLOWD_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	} else if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = getEnv("OPENAI_API_KEY")
	}
	if v := getEnv("TASKFLOWD_AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := getEnv("TASKFLOWD_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v, ok := getEnvInt("TASKFLOWD_AI_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.AI.TimeoutSeconds = v
	}
}

func getEnv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func getEnvInt(name string) (int, bool) {
	raw := getEnv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
