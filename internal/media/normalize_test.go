package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
)

type fakeExecutor struct {
	name string
	args []string
	err  error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return "", f.err
}

func TestNormalize(t *testing.T) {
	exec := &fakeExecutor{}
	n := New(config.FFmpegConfig{BinaryPath: "/usr/bin/ffmpeg", SampleRate: 16000}, exec, logger.Discard())

	out, err := n.Normalize(context.Background(), "/tmp/upload-1.webm")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out != "/tmp/upload-1_norm.wav" {
		t.Errorf("Normalize() = %v, want %v", out, "/tmp/upload-1_norm.wav")
	}
	if exec.name != "/usr/bin/ffmpeg" {
		t.Errorf("binary = %v, want %v", exec.name, "/usr/bin/ffmpeg")
	}
	joined := strings.Join(exec.args, " ")
	for _, want := range []string{"-i /tmp/upload-1.webm", "-ar 16000", "-ac 1", "-c:a pcm_s16le"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if exec.args[len(exec.args)-1] != out {
		t.Errorf("last arg = %v, want output path %v", exec.args[len(exec.args)-1], out)
	}
}

func TestNormalizeFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	n := New(config.FFmpegConfig{BinaryPath: "ffmpeg", SampleRate: 16000}, exec, logger.Discard())

	if _, err := n.Normalize(context.Background(), "/tmp/a.ogg"); err == nil {
		t.Error("Normalize() should fail when ffmpeg fails")
	}
}
