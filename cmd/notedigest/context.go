package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/nguyentantai21042004/note-digest/internal/completion"
	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/intake"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/media"
	"github.com/nguyentantai21042004/note-digest/internal/pipeline"
	"github.com/nguyentantai21042004/note-digest/internal/summarizer"
	"github.com/nguyentantai21042004/note-digest/internal/transcriber"
	"github.com/nguyentantai21042004/note-digest/pkg/executor"
)

const defaultConfigPath = "config.yaml"

type commandContext struct {
	configFlag *string
	envFlag    *string

	once sync.Once
	cfg  *config.Config
	err  error
}

func newCommandContext(configFlag, envFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, envFlag: envFlag}
}

// ensureConfig loads the configuration once per process.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.once.Do(func() {
		path, err := resolveConfigPath(*c.configFlag)
		if err != nil {
			c.err = err
			return
		}
		c.cfg, c.err = config.Load(path, *c.envFlag)
	})
	return c.cfg, c.err
}

// resolveConfigPath falls back to ./config.yaml when it exists and to
// environment-only configuration otherwise.
func resolveConfigPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat %s: %w", defaultConfigPath, err)
	}
	return "", nil
}

// services is the wired dependency graph shared by serve and summarize.
type services struct {
	intake   intake.Intake
	pipeline pipeline.Pipeline
}

func buildServices(ctx context.Context, cfg *config.Config, log logger.Logger) (*services, error) {
	completer, err := completion.New(ctx, cfg.Summarizer, log)
	if err != nil {
		return nil, fmt.Errorf("create completer: %w", err)
	}

	var normalizer media.Normalizer
	if cfg.FFmpeg.Normalize {
		normalizer = media.New(cfg.FFmpeg, executor.New(), log)
	}

	return &services{
		intake: intake.New(cfg.Paths.Temp, log),
		pipeline: pipeline.New(pipeline.Options{
			Normalizer:    normalizer,
			Transcriber:   transcriber.New(cfg.Transcription, nil, log),
			Summarizer:    summarizer.New(completer, log),
			MaxConcurrent: cfg.Performance.MaxConcurrent,
		}, log),
	}, nil
}
