// Package services implements the portal's business rules on top of the
// repositories. Every mutating call receives the caller's identity explicitly.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// populator resolves user references into summaries
type populator struct {
	users repositories.UserRepository
}

func (p populator) summaries(ctx context.Context, ids ...string) (map[string]models.UserSummary, error) {
	ids = helpers.UniqueIDs(ids...)
	if len(ids) == 0 {
		return map[string]models.UserSummary{}, nil
	}
	out, err := p.users.GetSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading user summaries: %w", err)
	}
	return out, nil
}

// contactShape keeps name and email, as shown on jobs and events
func contactShape(s models.UserSummary, ok bool) *models.UserSummary {
	if !ok {
		return nil
	}
	return &models.UserSummary{ID: s.ID, Name: s.Name, Email: s.Email}
}

// profileShape keeps name and picture, as shown on stories
func profileShape(s models.UserSummary, ok bool) *models.UserSummary {
	if !ok {
		return nil
	}
	return &models.UserSummary{ID: s.ID, Name: s.Name, ProfilePicture: s.ProfilePicture}
}

// authorShape is profileShape plus the role badge shown in the feed
func authorShape(s models.UserSummary, ok bool) *models.UserSummary {
	if !ok {
		return nil
	}
	return &models.UserSummary{ID: s.ID, Name: s.Name, Role: s.Role, ProfilePicture: s.ProfilePicture}
}

// requiredField applies a partial update to a required string field.
// Absent keeps the current value; present but blank is rejected.
func requiredField(dst *string, v *string, field string) error {
	if v == nil {
		return nil
	}
	if strings.TrimSpace(*v) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
	}
	*dst = *v
	return nil
}

// optionalField applies a partial update to an optional field; blank clears it
func optionalField(dst **string, v *string) {
	if v == nil {
		return
	}
	*dst = helpers.StringPtr(strings.TrimSpace(*v))
}

// notFound wraps the sentinel with the client-facing "<Entity> not found" message
func notFound(entity string, err error) error {
	if apperrors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.NewResourceNotFoundError(entity + " not found")
	}
	return err
}

// images removes stored uploads once nothing references them
type images struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// discard deletes url from storage, logging failures
func (im images) discard(ctx context.Context, url *string) {
	if im.storage == nil || url == nil || *url == "" {
		return
	}
	if err := im.storage.DeleteFile(ctx, *url); err != nil {
		im.logger.Warn().Err(err).Str("url", *url).Msg("Failed to delete stored image")
	}
}

// linked applies a client-supplied image URL. Files in our own storage can only
// be attached by uploading them, so a record never points at another record's upload.
func (im images) linked(current *string, supplied string) (*string, error) {
	supplied = strings.TrimSpace(supplied)
	if current != nil && *current == supplied {
		return current, nil
	}
	if supplied != "" && im.storage != nil && im.storage.Owns(supplied) {
		return nil, apperrors.NewValidationError("Image must be uploaded as a file")
	}
	return helpers.StringPtr(supplied), nil
}

// replaced discards prev when the record no longer points at it
func (im images) replaced(ctx context.Context, prev, next *string) {
	if prev != nil && (next == nil || *next != *prev) {
		im.discard(ctx, prev)
	}
}
