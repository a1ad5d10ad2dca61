package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotAnImage is returned when an upload's content is not an image
var ErrNotAnImage = errors.New("only image files are allowed")

// DetectImage sniffs the upload content and rejects anything that is not image/*
func DetectImage(fileHeader *multipart.FileHeader) (*mimetype.MIME, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, ErrNotAnImage
	}
	return mtype, nil
}

// fileExtension prefers the sniffed extension over the client supplied name
func fileExtension(fileHeader *multipart.FileHeader, content io.ReadSeeker) string {
	if mtype, err := mimetype.DetectReader(content); err == nil && mtype.Extension() != "" {
		if _, err := content.Seek(0, io.SeekStart); err == nil {
			return mtype.Extension()
		}
	}
	_, _ = content.Seek(0, io.SeekStart)
	return strings.ToLower(filepath.Ext(fileHeader.Filename))
}
