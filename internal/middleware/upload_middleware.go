package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// ContextKeyUploadedFile holds the public URL of the stored upload
const ContextKeyUploadedFile = "uploadedFile"

// UploadMiddleware stores a single optional image upload before the handler runs
type UploadMiddleware struct {
	storage  filestorage.FileStorage
	maxBytes int64
}

// NewUploadMiddleware creates a new UploadMiddleware
func NewUploadMiddleware(storage filestorage.FileStorage, maxUploadMB int) *UploadMiddleware {
	return &UploadMiddleware{
		storage:  storage,
		maxBytes: int64(maxUploadMB) << 20,
	}
}

// Single accepts at most one file in the given form field and stores it under folder.
// Requests that are not multipart, or carry no file, pass through untouched.
func (m *UploadMiddleware) Single(field, folder string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		// Leave room for the other form fields
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBytes+1<<20)

		fileHeader, err := c.FormFile(field)
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.Is(err, http.ErrMissingFile):
				c.Next()
			case errors.As(err, &tooLarge):
				abortUpload(c, fmt.Sprintf("File too large, maximum is %d MB", m.maxBytes>>20))
			default:
				abortUpload(c, "Invalid multipart form")
			}
			return
		}

		if fileHeader.Size > m.maxBytes {
			abortUpload(c, fmt.Sprintf("File too large, maximum is %d MB", m.maxBytes>>20))
			return
		}

		if _, err := filestorage.DetectImage(fileHeader); err != nil {
			if errors.Is(err, filestorage.ErrNotAnImage) {
				abortUpload(c, "Images only")
				return
			}
			abortUpload(c, "Invalid file")
			return
		}

		url, err := m.storage.SaveFileWithPath(c.Request.Context(), fileHeader, folder)
		if err != nil {
			logger.Error().Err(err).Str("folder", folder).Msg("Failed to store upload")
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Server Error")))
			return
		}

		c.Set(ContextKeyUploadedFile, url)
		c.Next()
	}
}

// GetUploadedFile returns the URL stored by Single, or "" when nothing was uploaded
func GetUploadedFile(c *gin.Context) string {
	return c.GetString(ContextKeyUploadedFile)
}

func abortUpload(c *gin.Context, message string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeInvalidUpload, message)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
