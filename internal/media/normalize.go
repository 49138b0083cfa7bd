package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Normalize converts audio to mono 16-bit PCM WAV at the configured sample
// rate. Browser recordings arrive as webm/ogg; WAV is accepted everywhere.
func (n *implNormalizer) Normalize(ctx context.Context, srcPath string) (string, error) {
	outPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + "_norm.wav"

	n.logger.Debug(ctx, "Normalizing audio: %s -> %s", srcPath, outPath)

	args := []string{
		"-hide_banner",
		"-i", srcPath,
		"-vn",
		"-ar", strconv.Itoa(n.cfg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	}

	if _, err := n.executor.Execute(ctx, n.cfg.BinaryPath, args...); err != nil {
		// ffmpeg may leave a partial file behind
		_ = os.Remove(outPath)
		return "", fmt.Errorf("ffmpeg normalize: %w", err)
	}

	return outPath, nil
}
