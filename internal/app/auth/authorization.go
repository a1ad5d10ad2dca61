// Package auth holds the ownership and role rules applied by the services.
package auth

import (
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// notAuthorizedMessage is what the client shows for ownership failures
const notAuthorizedMessage = "Not authorized"

// Identity is the authenticated caller as established by the auth middleware
type Identity struct {
	UserID string
	Role   models.Role
}

// NewIdentity builds the identity of a loaded user
func NewIdentity(user *models.User) Identity {
	return Identity{UserID: user.ID, Role: user.Role}
}

// IsAdmin reports whether the caller holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanModify reports whether the caller may change a record owned by ownerID.
// Admins pass only when allowAdmin is set.
func CanModify(identity Identity, ownerID string, allowAdmin bool) bool {
	if identity.UserID == "" {
		return false
	}
	if identity.UserID == ownerID {
		return true
	}
	return allowAdmin && identity.IsAdmin()
}

// ValidateOwnership returns a permission error unless CanModify holds
func ValidateOwnership(identity Identity, ownerID string, allowAdmin bool) error {
	if !CanModify(identity, ownerID, allowAdmin) {
		return apperrors.NewForbiddenError(notAuthorizedMessage)
	}
	return nil
}

// ValidateAdmin returns a permission error unless the caller is an admin
func ValidateAdmin(identity Identity) error {
	if !identity.IsAdmin() {
		return apperrors.NewForbiddenError("Not authorized as an admin")
	}
	return nil
}

// Ownership rules per resource
const (
	JobAdminOverride        = true
	EventAdminOverride      = true
	StoryAdminOverride      = false
	PostEditAdminOverride   = false
	PostDeleteAdminOverride = true
)
