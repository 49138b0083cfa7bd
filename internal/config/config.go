package config

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summarizer    SummarizerConfig    `yaml:"summarizer"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

type TranscriptionConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	Language       string `yaml:"language"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type SummarizerConfig struct {
	Provider       string `yaml:"provider"`
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type FFmpegConfig struct {
	Normalize  bool   `yaml:"normalize"`
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// MaxUploadBytes returns the request body limit in bytes.
func (c *Config) MaxUploadBytes() int {
	return c.Server.MaxUploadMB * 1024 * 1024
}

func (c *Config) Validate() error {
	c.Summarizer.Provider = strings.ToLower(strings.TrimSpace(c.Summarizer.Provider))
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAI
	}
	if c.Summarizer.Provider != ProviderOpenAI && c.Summarizer.Provider != ProviderGemini {
		return fmt.Errorf("summarizer.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Summarizer.Provider)
	}

	if c.Transcription.APIKey == "" {
		return fmt.Errorf("transcription.api_key is required")
	}
	if c.Summarizer.APIKey == "" && c.Summarizer.Provider == ProviderOpenAI {
		c.Summarizer.APIKey = c.Transcription.APIKey
	}
	if c.Summarizer.APIKey == "" {
		return fmt.Errorf("summarizer.api_key is required for provider %s", c.Summarizer.Provider)
	}
	if c.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server.max_upload_mb must not be negative")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 25
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "whisper-1"
	}
	if c.Transcription.TimeoutSeconds == 0 {
		c.Transcription.TimeoutSeconds = 120
	}
	if c.Summarizer.Model == "" {
		if c.Summarizer.Provider == ProviderGemini {
			c.Summarizer.Model = "gemini-2.5-flash"
		} else {
			c.Summarizer.Model = "gpt-4o-mini"
		}
	}
	if c.Summarizer.TimeoutSeconds == 0 {
		c.Summarizer.TimeoutSeconds = 60
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}

	return nil
}
