package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvAddr          = "NOTEDIGEST_ADDR"
)

// Load reads the YAML config at path (skipped when path is empty), overlays
// credentials from the environment and the dotenv file, then validates.
func Load(path string, dotenvPath string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	env, err := readDotenv(dotenvPath)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read dotenv %s: %w", path, err)
	}
	return values, nil
}

// applyEnv prefers the process environment over the dotenv file.
func (c *Config) applyEnv(dotenv map[string]string) {
	lookup := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	gemini := strings.EqualFold(strings.TrimSpace(c.Summarizer.Provider), ProviderGemini)

	if v := lookup(EnvOpenAIKey); v != "" {
		c.Transcription.APIKey = v
	}
	if v := lookup(EnvOpenAIBaseURL); v != "" {
		c.Transcription.BaseURL = v
		if !gemini && c.Summarizer.BaseURL == "" {
			c.Summarizer.BaseURL = v
		}
	}
	if v := lookup(EnvGeminiKey); v != "" && gemini {
		c.Summarizer.APIKey = v
	}
	if v := lookup(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}
