package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// Context keys set by Protect
const (
	ContextKeyUserID   = "userID"
	ContextKeyUser     = "user"
	ContextKeyIdentity = "identity"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// Protect requires a valid bearer token whose user still exists
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
			}
			abortUnauthorized(c, code, "Not authorized, token failed")
			return
		}

		// Roles are read from the stored user, not the token, so demotions apply at once
		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrResourceNotFound) {
				logger.Error().Err(err).Str("userID", claims.UserID).Msg("Failed to load token user")
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Not authorized, token failed")
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyIdentity, appAuth.NewIdentity(user))

		c.Next()
	}
}

// AdminOnly must run after Protect
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAdmin() {
			abortUnauthorized(c, dto.ErrorCodeForbidden, "Not authorized as an admin")
			return
		}
		c.Next()
	}
}

// GetIdentity returns the caller identity stored by Protect
func GetIdentity(c *gin.Context) (appAuth.Identity, bool) {
	value, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return appAuth.Identity{}, false
	}
	identity, ok := value.(appAuth.Identity)
	return identity, ok
}

// GetCurrentUser returns the user loaded by Protect
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
