package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
)

// PostController handles community feed operations
type PostController struct {
	postService services.PostService
	fileStorage filestorage.FileStorage
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, fileStorage filestorage.FileStorage) *PostController {
	return &PostController{
		postService: postService,
		fileStorage: fileStorage,
	}
}

// GetPosts godoc
// @Summary List feed posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Post
// @Failure 401 {object} dto.ErrorResponse
// @Router /posts [get]
func (c *PostController) GetPosts(ctx *gin.Context) {
	posts, err := c.postService.ListPosts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a feed post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [get]
func (c *PostController) GetPost(ctx *gin.Context) {
	post, err := c.postService.GetPost(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary Publish a feed post
// @Tags posts
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param content formData string true "Text"
// @Param image formData file false "Image"
// @Success 201 {object} models.Post
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		discardUpload(ctx, c.fileStorage)
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		discardUpload(ctx, c.fileStorage)
		middleware.HandleBindError(ctx, err)
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), identity, &req, middleware.GetUploadedFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Edit a feed post
// @Description Only the author. Send image="" to remove the current image.
// @Tags posts
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} models.Post
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		discardUpload(ctx, c.fileStorage)
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		discardUpload(ctx, c.fileStorage)
		middleware.HandleBindError(ctx, err)
		return
	}

	post, err := c.postService.UpdatePost(ctx.Request.Context(), identity, ctx.Param("id"), &req, middleware.GetUploadedFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a feed post
// @Description The author or an admin
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	if err := c.postService.DeletePost(ctx.Request.Context(), identity, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	removed(ctx, "Post")
}

// LikePost godoc
// @Summary Like or unlike a feed post
// @Description Toggles the caller's like and returns the resulting list of user ids
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {array} string
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/like [put]
func (c *PostController) LikePost(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	likes, err := c.postService.ToggleLike(ctx.Request.Context(), identity, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, likes)
}
