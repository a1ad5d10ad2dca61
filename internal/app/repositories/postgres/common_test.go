package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func TestValidID(t *testing.T) {
	assert.True(t, validID("6f1c2a40-8c1e-4a51-9d8a-1f2b3c4d5e6f"))
	assert.False(t, validID("not-a-valid-id"))
	assert.False(t, validID(""))
}

func TestMapNoRows(t *testing.T) {
	assert.ErrorIs(t, mapNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)), apperrors.ErrResourceNotFound)

	other := fmt.Errorf("boom")
	assert.Equal(t, other, mapNoRows(other))
}

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, `%remote%`, containsPattern("remote"))
	assert.Equal(t, `%100\%\_off%`, containsPattern("100%_off"))
}

func TestJobListQuery(t *testing.T) {
	sql, args, err := psql.Select("id").From("jobs").
		Where(jobKeywordPredicate("go")).ToSql()
	assert.NoError(t, err)
	assert.Contains(t, sql, "title ILIKE $1")
	assert.Contains(t, sql, "unnest(requirements)")
	assert.Len(t, args, 4)
}

func TestMalformedIDsNeverReachTheDatabase(t *testing.T) {
	// A nil pool would panic if the repositories reached the database
	ctx := context.Background()

	_, err := NewJobRepository(nil).GetByID(ctx, "not-a-valid-id")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = NewPostRepository(nil).ToggleLike(ctx, "bad", "bad")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.ErrorIs(t, NewEventRepository(nil).Update(ctx, &models.Event{ID: "x"}), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, NewStoryRepository(nil).Delete(ctx, "x"), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, NewInquiryRepository(nil).UpdateStatus(ctx, "x", models.InquiryStatusRead), apperrors.ErrResourceNotFound)
}
