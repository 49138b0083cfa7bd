package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// Process runs normalize (when configured), transcribe and summarize.
func (p *implPipeline) Process(ctx context.Context, audio models.AudioPayload) (models.Result, error) {
	if err := p.sem.acquire(ctx); err != nil {
		return models.Result{}, models.NewInternalError(models.StageIntake, err)
	}
	defer p.sem.release()

	startTime := time.Now()
	p.logger.Info(ctx, "Processing %s (%s, %s)", audio.Filename, audio.MediaType, humanize.Bytes(uint64(audio.Size)))

	// Step 1: Normalize audio
	if p.normalizer != nil {
		normalized, err := p.normalize(ctx, audio)
		if err != nil {
			return models.Result{}, err
		}
		defer p.cleanupTempFile(ctx, normalized.Path)
		audio = normalized
	}

	// Step 2: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, audio)
	if err != nil {
		p.logFailure(ctx, err)
		return models.Result{}, models.AsPipelineError(err)
	}

	// Step 3: Summarize
	outcome, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		p.logFailure(ctx, err)
		return models.Result{}, models.AsPipelineError(err)
	}

	result := models.Result{
		Transcript: transcript,
		Summary:    outcome.Summary.Normalized(),
		Degraded:   outcome.Degraded,
	}

	p.logger.Info(ctx, "Processing completed in %s (degraded=%v)", time.Since(startTime).Round(time.Millisecond), result.Degraded)
	return result, nil
}

func (p *implPipeline) normalize(ctx context.Context, audio models.AudioPayload) (models.AudioPayload, error) {
	outPath, err := p.normalizer.Normalize(ctx, audio.Path)
	if err != nil {
		pe := models.NewInternalError(models.StageNormalize, err)
		p.logFailure(ctx, pe)
		return models.AudioPayload{}, pe
	}

	normalized := audio
	normalized.Path = outPath
	normalized.Filename = strings.TrimSuffix(audio.Filename, filepath.Ext(audio.Filename)) + ".wav"
	normalized.MediaType = "audio/wav"
	if info, err := os.Stat(outPath); err == nil {
		normalized.Size = info.Size()
	}
	return normalized, nil
}

func (p *implPipeline) logFailure(ctx context.Context, err error) {
	var pe *models.PipelineError
	if errors.As(err, &pe) {
		p.logger.Error(ctx, "Pipeline failed at %s (%s): %v", pe.Stage, pe.Kind, pe)
		return
	}
	p.logger.Error(ctx, "Pipeline failed: %v", err)
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
