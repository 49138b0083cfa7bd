package intake

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"lukechampine.com/blake3"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

const defaultExt = ".webm"

var mediaTypeExt = map[string]string{
	"audio/webm":  ".webm",
	"video/webm":  ".webm",
	"audio/ogg":   ".ogg",
	"audio/mpeg":  ".mp3",
	"audio/mp3":   ".mp3",
	"audio/mp4":   ".m4a",
	"audio/x-m4a": ".m4a",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/wave":  ".wav",
	"audio/flac":  ".flac",
}

// Stage copies the upload into a temp file. An absent or empty upload fails
// with a missing-audio error before anything else happens.
func (i *implIntake) Stage(ctx context.Context, up Upload) (*Staged, error) {
	if up.Open == nil || up.Size == 0 {
		return nil, models.NewMissingAudioError(fmt.Sprintf("%q field is required and must not be empty", FieldName))
	}

	src, err := up.Open()
	if err != nil {
		return nil, models.NewInternalError(models.StageIntake, fmt.Errorf("open upload: %w", err))
	}
	defer src.Close()

	return i.stage(ctx, src, up.Filename, up.MediaType)
}

// StageFile stages a local file, as used by the CLI.
func (i *implIntake) StageFile(ctx context.Context, path string) (*Staged, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, models.NewMissingAudioError(fmt.Sprintf("audio file %s: %v", path, err))
	}
	if info.IsDir() {
		return nil, models.NewMissingAudioError(fmt.Sprintf("%s is a directory", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewInternalError(models.StageIntake, fmt.Errorf("open audio file: %w", err))
	}
	defer f.Close()

	return i.stage(ctx, f, filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)))
}

func (i *implIntake) stage(ctx context.Context, src io.Reader, filename, mediaType string) (*Staged, error) {
	if err := os.MkdirAll(i.tempDir, 0755); err != nil {
		return nil, models.NewInternalError(models.StageIntake, fmt.Errorf("create temp dir: %w", err))
	}

	dst, err := os.CreateTemp(i.tempDir, "upload-*"+extensionFor(filename, mediaType))
	if err != nil {
		return nil, models.NewInternalError(models.StageIntake, fmt.Errorf("create temp file: %w", err))
	}

	hasher := blake3.New(32, nil)
	written, copyErr := io.Copy(io.MultiWriter(dst, hasher), src)
	closeErr := dst.Close()

	if copyErr != nil || closeErr != nil || written == 0 {
		os.Remove(dst.Name())
		switch {
		case copyErr != nil:
			return nil, models.NewInternalError(models.StageIntake, fmt.Errorf("copy upload: %w", copyErr))
		case closeErr != nil:
			return nil, models.NewInternalError(models.StageIntake, fmt.Errorf("close temp file: %w", closeErr))
		default:
			return nil, models.NewMissingAudioError(fmt.Sprintf("%q field is required and must not be empty", FieldName))
		}
	}

	if filename == "" {
		filename = filepath.Base(dst.Name())
	}

	payload := models.AudioPayload{
		Path:      dst.Name(),
		Filename:  filename,
		MediaType: mediaType,
		Size:      written,
		Digest:    hex.EncodeToString(hasher.Sum(nil)),
	}

	i.logger.Info(ctx, "Staged audio %s (%s, %s, blake3=%s)",
		payload.Filename, humanize.Bytes(uint64(payload.Size)), orUnknown(payload.MediaType), shortDigest(payload.Digest))

	return newStaged(payload, i.logger), nil
}

// extensionFor keeps the provider-visible extension meaningful: it prefers
// the uploaded filename, then the declared media type.
func extensionFor(filename, mediaType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if isSafeExt(ext) {
		return ext
	}
	base, _, _ := mime.ParseMediaType(mediaType)
	if ext, ok := mediaTypeExt[base]; ok {
		return ext
	}
	return defaultExt
}

func isSafeExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 6 {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown type"
	}
	return s
}
