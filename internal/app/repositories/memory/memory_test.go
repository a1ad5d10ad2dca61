package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func TestUserRepository_EmailUniqueAndSummaries(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := &models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleAlumni}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	err := repo.Create(ctx, &models.User{Name: "Other", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	exists, err := repo.EmailExists(ctx, "Ada@Example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	summaries, err := repo.GetSummaries(ctx, []string{u.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Ada", summaries[u.ID].Name)

	_, err = repo.GetByID(ctx, "not-a-valid-id")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestJobRepository_ListFiltersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository()

	first := &models.Job{Title: "Backend Intern", Company: "Acme", Location: "Istanbul", Type: models.JobTypeInternship}
	second := &models.Job{Title: "Designer", Company: "Globex", Location: "Remote", Type: models.JobTypeFullTime, Requirements: []string{"Figma"}}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	all, err := repo.List(ctx, models.JobFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	byType, _ := repo.List(ctx, models.JobFilter{Type: models.JobTypeInternship})
	require.Len(t, byType, 1)
	assert.Equal(t, first.ID, byType[0].ID)

	byLocation, _ := repo.List(ctx, models.JobFilter{Location: "remo"})
	require.Len(t, byLocation, 1)
	assert.Equal(t, second.ID, byLocation[0].ID)

	byRequirement, _ := repo.List(ctx, models.JobFilter{Keyword: "figma"})
	require.Len(t, byRequirement, 1)

	none, _ := repo.List(ctx, models.JobFilter{Keyword: "rust"})
	assert.Empty(t, none)
}

func TestJobRepository_UpdateKeepsOwnerAndReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository()

	job := &models.Job{Title: "Backend Intern", PostedByID: "owner", Requirements: []string{"Go"}}
	require.NoError(t, repo.Create(ctx, job))

	loaded, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	loaded.Requirements[0] = "mutated"
	loaded.PostedByID = "someone-else"
	loaded.Title = "Changed"
	require.NoError(t, repo.Update(ctx, loaded))

	again, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Changed", again.Title)
	assert.Equal(t, "owner", again.PostedByID)

	assert.ErrorIs(t, repo.Update(ctx, &models.Job{ID: "missing"}), apperrors.ErrResourceNotFound)
	require.NoError(t, repo.Delete(ctx, job.ID))
	assert.ErrorIs(t, repo.Delete(ctx, job.ID), apperrors.ErrResourceNotFound)
}

func TestPostRepository_ToggleLikeIsASet(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	post := &models.Post{Content: "hello", AuthorID: "a"}
	require.NoError(t, repo.Create(ctx, post))

	likes, err := repo.ToggleLike(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, likes)

	likes, err = repo.ToggleLike(ctx, post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, likes)

	likes, err = repo.ToggleLike(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, likes)

	_, err = repo.ToggleLike(ctx, "missing", "u1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestPostRepository_ConcurrentTogglesNeverDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()
	post := &models.Post{Content: "hello"}
	require.NoError(t, repo.Create(ctx, post))

	var wg sync.WaitGroup
	for i := 0; i < 51; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.ToggleLike(ctx, post.ID, "u1")
		}()
	}
	wg.Wait()

	stored, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, stored.Likes, "an odd number of toggles leaves exactly one like")
}

func TestStoryRepository_ListByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewStoryRepository()

	approved := &models.SuccessStory{Name: "A", Status: models.StoryStatusApproved}
	rejected := &models.SuccessStory{Name: "B", Status: models.StoryStatusRejected}
	require.NoError(t, repo.Create(ctx, approved))
	require.NoError(t, repo.Create(ctx, rejected))

	list, err := repo.List(ctx, models.StoryStatusApproved)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, approved.ID, list[0].ID)

	all, _ := repo.List(ctx, "")
	assert.Len(t, all, 2)
}

func TestEventAndInquiryRepositories(t *testing.T) {
	ctx := context.Background()

	events := NewEventRepository()
	require.NoError(t, events.Create(ctx, &models.Event{Title: "Reunion", Type: models.EventTypeReunion}))
	require.NoError(t, events.Create(ctx, &models.Event{Title: "Go Workshop", Type: models.EventTypeWorkshop}))
	list, err := events.List(ctx, models.EventFilter{Type: models.EventTypeWorkshop})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Workshop", list[0].Title)

	inquiries := NewInquiryRepository()
	inq := &models.Inquiry{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	require.NoError(t, inquiries.Create(ctx, inq))
	assert.Equal(t, models.InquiryStatusNew, inq.Status)

	require.NoError(t, inquiries.UpdateStatus(ctx, inq.ID, models.InquiryStatusRead))
	stored, err := inquiries.GetByID(ctx, inq.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusRead, stored.Status)
	assert.ErrorIs(t, inquiries.UpdateStatus(ctx, "missing", models.InquiryStatusRead), apperrors.ErrResourceNotFound)
}
