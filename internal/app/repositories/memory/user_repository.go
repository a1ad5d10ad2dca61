package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// UserRepository stores users in memory
type UserRepository struct {
	users   *table[*models.User]
	emailMu sync.Mutex
	byEmail map[string]string
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   newTable(cloneUser),
		byEmail: make(map[string]string),
	}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.ProfilePicture = cloneStringPtr(u.ProfilePicture)
	return &c
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	key := strings.ToLower(user.Email)

	r.emailMu.Lock()
	defer r.emailMu.Unlock()
	if _, taken := r.byEmail[key]; taken {
		return apperrors.ErrEmailAlreadyExists
	}

	user.ID = newID()
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	r.users.insert(user.ID, user)
	r.byEmail[key] = user.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users.get(id)
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.emailMu.Lock()
	id, ok := r.byEmail[strings.ToLower(email)]
	r.emailMu.Unlock()
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.emailMu.Lock()
	defer r.emailMu.Unlock()
	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (r *UserRepository) GetSummaries(_ context.Context, ids []string) (map[string]models.UserSummary, error) {
	out := make(map[string]models.UserSummary, len(ids))
	for _, id := range ids {
		if u, ok := r.users.get(id); ok {
			out[id] = u.Summary()
		}
	}
	return out, nil
}
