package dto

import "github.com/yigit/alumnihub/internal/app/models"

// CreateStoryRequest represents the success story form (JSON or multipart)
type CreateStoryRequest struct {
	Name            string `json:"name" form:"name" binding:"required,notblank,max=100"`
	Role            string `json:"role" form:"role" binding:"required,notblank,max=100"`
	Company         string `json:"company" form:"company" binding:"required,notblank,max=200"`
	Content         string `json:"content" form:"content" binding:"required,notblank"`
	LinkedinProfile string `json:"linkedinProfile" form:"linkedinProfile" binding:"omitempty,url"`
	// Image is an already hosted image URL, used when no file is uploaded.
	// The multipart "image" part is the file itself.
	Image string `json:"image" form:"imageUrl" binding:"omitempty,url"`
}

// UpdateStoryRequest carries only the fields the client sent
type UpdateStoryRequest struct {
	Name            *string `json:"name" form:"name" binding:"omitempty,max=100"`
	Role            *string `json:"role" form:"role" binding:"omitempty,max=100"`
	Company         *string `json:"company" form:"company" binding:"omitempty,max=200"`
	Content         *string `json:"content" form:"content"`
	LinkedinProfile *string `json:"linkedinProfile" form:"linkedinProfile" binding:"omitempty,url"`
	// Image set to "" removes the current image; an uploaded file replaces it
	Image *string `json:"image" form:"imageUrl" binding:"omitempty,url"`
}

// UpdateStoryStatusRequest represents an admin moderation decision
type UpdateStoryStatusRequest struct {
	Status models.StoryStatus `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
}
