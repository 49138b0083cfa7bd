package media

import "context"

// Normalizer converts staged audio into a format every provider accepts.
type Normalizer interface {
	// Normalize writes a converted copy of srcPath and returns its path.
	// The caller owns the returned file.
	Normalize(ctx context.Context, srcPath string) (string, error)
}
