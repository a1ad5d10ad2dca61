package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/alumnihub/internal/app/models"
	appRepos "github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/validation"
)

// ErrAdminNotConfigured is returned when the admin section has no email or password
var ErrAdminNotConfigured = errors.New("admin email and password are not configured")

// Admin describes the administrator account to create
type Admin struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultAdmin creates the configured admin account unless its email is already taken.
// It reports whether a user was created.
func CreateDefaultAdmin(ctx context.Context, userRepo appRepos.UserRepository, admin Admin, lgr zerolog.Logger) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		return false, ErrAdminNotConfigured
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Admin account already exists, skipping")
		return false, nil
	}

	if problem := validation.PasswordProblem(admin.Password); problem != "" {
		return false, fmt.Errorf("admin password rejected: %s", problem)
	}

	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return false, fmt.Errorf("error hashing admin password: %w", err)
	}

	name := strings.TrimSpace(admin.Name)
	if name == "" {
		name = "Administrator"
	}

	user := &appModels.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     appModels.RoleAdmin,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		// Lost a race with another seeder
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error creating admin: %w", err)
	}

	lgr.Info().Str("userID", user.ID).Str("email", email).Msg("Admin account created")
	return true, nil
}
