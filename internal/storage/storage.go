package storage

import (
	"context"
	"io"
)

// FileStorage abstracts the blob store uploads land in. Adapters take a byte
// stream and return a URL clients can fetch the file from.
type FileStorage interface {
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}
