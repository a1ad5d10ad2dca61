package filestorage

import (
	"context"
	"mime/multipart"
)

// FileStorage defines the interface for upload storage backends
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath and returns its public URL
	SaveFileWithPath(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously returned URL. Unknown URLs are not an error.
	DeleteFile(ctx context.Context, fileURL string) error

	// Owns reports whether fileURL points at a file held by this storage
	Owns(fileURL string) bool
}
