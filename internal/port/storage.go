package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload a listing image.
type UploadInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload. URL is the
// address stored in the listing payload.
type UploadOutput struct {
	Key  string
	URL  string
	ETag string
}

// ObjectStorage abstracts the image bucket.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, key string) error
}
