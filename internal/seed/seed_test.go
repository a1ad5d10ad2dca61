package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/memory"
	"github.com/yigit/alumnihub/internal/pkg/auth"
)

func TestCreateDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	admin := Admin{Name: "Root", Email: " Admin@Example.com ", Password: "adm1nPassword"}

	created, err := CreateDefaultAdmin(ctx, users, admin, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, created)

	user, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Root", user.Name)
	assert.True(t, auth.CheckPassword(user.Password, "adm1nPassword"))

	created, err = CreateDefaultAdmin(ctx, users, admin, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCreateDefaultAdminRejectsBadConfig(t *testing.T) {
	users := memory.NewUserRepository()

	_, err := CreateDefaultAdmin(context.Background(), users, Admin{Email: "a@example.com"}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrAdminNotConfigured)

	_, err = CreateDefaultAdmin(context.Background(), users, Admin{Email: "a@example.com", Password: "short"}, zerolog.Nop())
	assert.Error(t, err)

	exists, err := users.EmailExists(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
