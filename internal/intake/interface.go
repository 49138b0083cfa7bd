package intake

import (
	"context"
	"io"
)

// FieldName is the multipart field that carries the recording.
const FieldName = "audio"

// Upload describes one received audio part before it is staged.
type Upload struct {
	Filename  string
	MediaType string
	Size      int64
	Open      func() (io.ReadCloser, error)
}

// Intake stages uploaded audio in temporary storage for the pipeline.
type Intake interface {
	Stage(ctx context.Context, up Upload) (*Staged, error)
	StageFile(ctx context.Context, path string) (*Staged, error)
}
