package dto

import "github.com/yigit/alumnihub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a self-service registration. Admins cannot self-register.
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required,notblank,min=2,max=100" example:"Jane Doe"`
	Email    string      `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string      `json:"password" binding:"required,strongpassword,max=72" example:"s3cretpass"`
	Role     models.Role `json:"role" binding:"omitempty,oneof=student alumni" example:"alumni"`
}

// AuthResponse is the user record plus a bearer token, flattened the way the web client stores it
type AuthResponse struct {
	*models.User
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn" example:"2592000"`
}
