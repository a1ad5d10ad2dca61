package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
)

// StoryController handles success story operations
type StoryController struct {
	storyService services.StoryService
	fileStorage  filestorage.FileStorage
}

// NewStoryController creates a new StoryController
func NewStoryController(storyService services.StoryService, fileStorage filestorage.FileStorage) *StoryController {
	return &StoryController{
		storyService: storyService,
		fileStorage:  fileStorage,
	}
}

// GetStories godoc
// @Summary List approved success stories
// @Tags stories
// @Produce json
// @Success 200 {array} models.SuccessStory
// @Failure 500 {object} dto.ErrorResponse
// @Router /stories [get]
func (c *StoryController) GetStories(ctx *gin.Context) {
	stories, err := c.storyService.ListStories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stories)
}

// GetStory godoc
// @Summary Get a success story
// @Tags stories
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} models.SuccessStory
// @Failure 404 {object} dto.ErrorResponse
// @Router /stories/{id} [get]
func (c *StoryController) GetStory(ctx *gin.Context) {
	story, err := c.storyService.GetStory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, story)
}

// CreateStory godoc
// @Summary Share a success story
// @Description JSON or multipart. An uploaded image takes precedence over the image URL field.
// @Tags stories
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param role formData string true "Role"
// @Param company formData string true "Company"
// @Param content formData string true "Story"
// @Param linkedinProfile formData string false "LinkedIn URL"
// @Param image formData file false "Image"
// @Success 201 {object} models.SuccessStory
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /stories [post]
func (c *StoryController) CreateStory(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		discardUpload(ctx, c.fileStorage)
		return
	}

	var req dto.CreateStoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		discardUpload(ctx, c.fileStorage)
		middleware.HandleBindError(ctx, err)
		return
	}

	story, err := c.storyService.CreateStory(ctx.Request.Context(), identity, &req, middleware.GetUploadedFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, story)
}

// UpdateStory godoc
// @Summary Update a success story
// @Description Only the author. Send image="" to remove the current image.
// @Tags stories
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Param request body dto.UpdateStoryRequest true "Fields to change"
// @Success 200 {object} models.SuccessStory
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stories/{id} [put]
func (c *StoryController) UpdateStory(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		discardUpload(ctx, c.fileStorage)
		return
	}

	var req dto.UpdateStoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		discardUpload(ctx, c.fileStorage)
		middleware.HandleBindError(ctx, err)
		return
	}

	story, err := c.storyService.UpdateStory(ctx.Request.Context(), identity, ctx.Param("id"), &req, middleware.GetUploadedFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, story)
}

// DeleteStory godoc
// @Summary Delete a success story
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stories/{id} [delete]
func (c *StoryController) DeleteStory(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	if err := c.storyService.DeleteStory(ctx.Request.Context(), identity, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	removed(ctx, "Story")
}

// UpdateStoryStatus godoc
// @Summary Moderate a success story
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Param request body dto.UpdateStoryStatusRequest true "Decision"
// @Success 200 {object} models.SuccessStory
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stories/{id}/status [patch]
func (c *StoryController) UpdateStoryStatus(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStoryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	story, err := c.storyService.SetStatus(ctx.Request.Context(), identity, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, story)
}
