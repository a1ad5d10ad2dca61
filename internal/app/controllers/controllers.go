// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/middleware"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// filterAll is the list filter value the client sends for "no filter"
const filterAll = "all"

// requireIdentity returns the caller identity, writing a 401 when Protect did not run
func requireIdentity(ctx *gin.Context) (appAuth.Identity, bool) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized, no token")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
	}
	return identity, ok
}

// listFilter normalises a query filter; "" and "all" both mean unfiltered
func listFilter(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, filterAll) {
		return ""
	}
	return value
}

func removed(ctx *gin.Context, entity string) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: entity + " removed"})
}

// discardUpload deletes a file stored by the upload middleware when the request is rejected before the service runs
func discardUpload(ctx *gin.Context, storage filestorage.FileStorage) {
	url := middleware.GetUploadedFile(ctx)
	if url == "" || storage == nil {
		return
	}
	if err := storage.DeleteFile(ctx.Request.Context(), url); err != nil {
		logger.Warn().Err(err).Str("url", url).Msg("Failed to delete rejected upload")
	}
}
