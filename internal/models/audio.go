package models

// AudioPayload is one staged voice note. It lives for a single request and
// its file is removed once the pipeline finishes with it.
type AudioPayload struct {
	Path      string
	Filename  string
	MediaType string
	Size      int64
	Digest    string
}
