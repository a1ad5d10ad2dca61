package dto

// CreatePostRequest represents a feed post (JSON or multipart)
type CreatePostRequest struct {
	Content string `json:"content" form:"content" binding:"required,notblank,max=5000"`
}

// UpdatePostRequest carries only the fields the client sent
type UpdatePostRequest struct {
	Content *string `json:"content" form:"content" binding:"omitempty,max=5000"`
	// Image set to "" removes the current image; an uploaded file replaces it
	Image *string `json:"image" form:"imageUrl" binding:"omitempty,url"`
}
