package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appAuth "github.com/yigit/alumnihub/internal/app/auth"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories/memory"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/email"
)

type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeStorage) SaveFileWithPath(context.Context, *multipart.FileHeader, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeStorage) DeleteFile(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeStorage) Owns(url string) bool {
	return strings.HasPrefix(url, "http://localhost:5000/uploads/")
}

type fakeNotifier struct {
	sent []email.InquiryMessage
	err  error
}

func (f *fakeNotifier) SendInquiryNotification(msg email.InquiryMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type fixture struct {
	users   *memory.UserRepository
	storage *fakeStorage
	alice   appAuth.Identity
	bob     appAuth.Identity
	admin   appAuth.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{users: memory.NewUserRepository(), storage: &fakeStorage{}}
	f.alice = f.addUser(t, "Alice", "alice@example.com", models.RoleAlumni)
	f.bob = f.addUser(t, "Bob", "bob@example.com", models.RoleStudent)
	f.admin = f.addUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	return f
}

func (f *fixture) addUser(t *testing.T, name, mail string, role models.Role) appAuth.Identity {
	t.Helper()
	u := &models.User{Name: name, Email: mail, Password: "x", Role: role}
	require.NoError(t, f.users.Create(context.Background(), u))
	return appAuth.NewIdentity(u)
}

func ptr[T any](v T) *T { return &v }

func assertMessage(t *testing.T, err error, sentinel error, message string) {
	t.Helper()
	require.ErrorIs(t, err, sentinel)
	msg, ok := apperrors.MessageOf(err)
	require.True(t, ok)
	assert.Equal(t, message, msg)
}

func TestAuthService_RegisterLoginMe(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	svc := NewAuthService(users, jwtService, zerolog.Nop())

	resp, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Jane", Email: "Jane@Example.com", Password: "passw0rd1", Role: models.RoleAlumni})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, models.RoleAlumni, resp.Role)
	assert.NotEmpty(t, resp.Token)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Dup", Email: "jane@example.com", Password: "passw0rd1"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Eve", Email: "eve@example.com", Password: "passw0rd1", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Eve", Email: "eve@example.com", Password: "lettersonly"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	student, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Sam", Email: "sam@example.com", Password: "passw0rd1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, student.Role)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "JANE@example.com", Password: "passw0rd1"})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, login.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "passw0rd1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	me, err := svc.Me(ctx, appAuth.Identity{UserID: resp.ID})
	require.NoError(t, err)
	assert.Equal(t, "Jane", me.Name)
}

func TestJobService_OwnershipAndPartialUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewJobService(memory.NewJobRepository(), f.users, zerolog.Nop())

	job, err := svc.CreateJob(ctx, f.alice, &dto.CreateJobRequest{
		Title: "Backend Intern", Company: "Acme", Location: "Istanbul", Type: models.JobTypeInternship,
		Description: "Go services", Requirements: []string{" Go ", ""}, ContactEmail: "jobs@acme.io",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, job.Requirements)
	assert.Equal(t, f.alice.UserID, job.PostedByID)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PostedBy)
	assert.Equal(t, "Alice", got.PostedBy.Name)
	assert.Equal(t, "alice@example.com", got.PostedBy.Email)
	assert.Nil(t, got.PostedBy.ProfilePicture)

	_, err = svc.UpdateJob(ctx, f.bob, job.ID, &dto.UpdateJobRequest{Title: ptr("Hijacked")})
	assertMessage(t, err, apperrors.ErrPermissionDenied, "Not authorized")

	updated, err := svc.UpdateJob(ctx, f.alice, job.ID, &dto.UpdateJobRequest{Location: ptr("Remote"), ContactEmail: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "Backend Intern", updated.Title)
	assert.Nil(t, updated.ContactEmail)

	_, err = svc.UpdateJob(ctx, f.alice, job.ID, &dto.UpdateJobRequest{Title: ptr("  ")})
	assertMessage(t, err, apperrors.ErrValidationFailed, "Title cannot be empty")

	_, err = svc.UpdateJob(ctx, f.admin, job.ID, &dto.UpdateJobRequest{Company: ptr("Acme Corp")})
	require.NoError(t, err)

	_, err = svc.GetJob(ctx, "not-a-valid-id")
	assertMessage(t, err, apperrors.ErrResourceNotFound, "Job not found")

	require.NoError(t, svc.DeleteJob(ctx, f.alice, job.ID))
	_, err = svc.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStoryService_ModerationAndImages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewStoryService(memory.NewStoryRepository(), f.users, f.storage, zerolog.Nop())

	story, err := svc.CreateStory(ctx, f.alice, &dto.CreateStoryRequest{
		Name: "Alice", Role: "Engineer", Company: "Acme", Content: "From class to code",
	}, "http://localhost:5000/uploads/stories/a.png")
	require.NoError(t, err)
	assert.Equal(t, models.StoryStatusApproved, story.Status)

	list, err := svc.ListStories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "Alice", list[0].User.Name)
	assert.Empty(t, list[0].User.Email)

	// admins cannot edit someone else's story
	_, err = svc.UpdateStory(ctx, f.admin, story.ID, &dto.UpdateStoryRequest{Content: ptr("x")}, "")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateStory(ctx, f.alice, story.ID, &dto.UpdateStoryRequest{}, "http://localhost:5000/uploads/stories/b.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/stories/b.png", *updated.Image)
	assert.Equal(t, []string{"http://localhost:5000/uploads/stories/a.png"}, f.storage.deleted)

	_, err = svc.SetStatus(ctx, f.alice, story.ID, models.StoryStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.SetStatus(ctx, f.admin, story.ID, models.StoryStatusRejected)
	require.NoError(t, err)
	list, err = svc.ListStories(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, svc.DeleteStory(ctx, f.alice, story.ID))
	assert.Contains(t, f.storage.deleted, "http://localhost:5000/uploads/stories/b.png")
}

func TestPostService_LikesAndPermissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewPostService(memory.NewPostRepository(), f.users, f.storage, zerolog.Nop())

	post, err := svc.CreatePost(ctx, f.alice, &dto.CreatePostRequest{Content: "Hello alumni"}, "")
	require.NoError(t, err)
	require.NotNil(t, post.Author)
	assert.Equal(t, models.RoleAlumni, post.Author.Role)
	assert.Equal(t, []string{}, post.Likes)

	likes, err := svc.ToggleLike(ctx, f.bob, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.bob.UserID}, likes)

	likes, err = svc.ToggleLike(ctx, f.bob, post.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	_, err = svc.ToggleLike(ctx, f.bob, "missing")
	assertMessage(t, err, apperrors.ErrResourceNotFound, "Post not found")

	_, err = svc.UpdatePost(ctx, f.admin, post.ID, &dto.UpdatePostRequest{Content: ptr("edited")}, "")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.UpdatePost(ctx, f.alice, post.ID, &dto.UpdatePostRequest{Content: ptr("")}, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.ErrorIs(t, svc.DeletePost(ctx, f.bob, post.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.DeletePost(ctx, f.admin, post.ID))
}

func TestPostService_FailedUpdateDiscardsUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewPostService(memory.NewPostRepository(), f.users, f.storage, zerolog.Nop())

	post, err := svc.CreatePost(ctx, f.alice, &dto.CreatePostRequest{Content: "Hello"}, "")
	require.NoError(t, err)

	_, err = svc.UpdatePost(ctx, f.bob, post.ID, &dto.UpdatePostRequest{}, "http://localhost:5000/uploads/posts/new.png")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, []string{"http://localhost:5000/uploads/posts/new.png"}, f.storage.deleted)
}

func TestEventService_DatesAndOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewEventService(memory.NewEventRepository(), f.users, zerolog.Nop())

	_, err := svc.CreateEvent(ctx, f.alice, &dto.CreateEventRequest{
		Title: "Reunion", Description: "Class of 2015", Date: "next week", Time: "18:30", Location: "Campus", Type: models.EventTypeReunion,
	})
	assertMessage(t, err, apperrors.ErrValidationFailed, "Invalid date")

	event, err := svc.CreateEvent(ctx, f.alice, &dto.CreateEventRequest{
		Title: "Reunion", Description: "Class of 2015", Date: "2025-06-01", Time: "18:30", Location: "Campus", Type: models.EventTypeReunion,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), event.Date)

	workshops, err := svc.ListEvents(ctx, models.EventFilter{Type: models.EventTypeWorkshop})
	require.NoError(t, err)
	assert.Empty(t, workshops)

	_, err = svc.UpdateEvent(ctx, f.bob, event.ID, &dto.UpdateEventRequest{Location: ptr("Online")})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateEvent(ctx, f.admin, event.ID, &dto.UpdateEventRequest{Location: ptr("Online"), Date: ptr("2025-07-01T10:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, "Online", updated.Location)
	assert.Equal(t, "Reunion", updated.Title)
	require.NotNil(t, updated.Organizer)
	assert.Equal(t, "Alice", updated.Organizer.Name)

	require.NoError(t, svc.DeleteEvent(ctx, f.alice, event.ID))
	_, err = svc.GetEvent(ctx, event.ID)
	assertMessage(t, err, apperrors.ErrResourceNotFound, "Event not found")
}

func TestInquiryService_NotifyAndWorkflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewInquiryService(memory.NewInquiryRepository(), notifier, zerolog.Nop())

	_, err := svc.CreateInquiry(ctx, &dto.CreateInquiryRequest{Name: "Visitor", Email: "v@example.com", Subject: " ", Message: "Hi"})
	assertMessage(t, err, apperrors.ErrValidationFailed, "Please provide all fields")

	inquiry, err := svc.CreateInquiry(ctx, &dto.CreateInquiryRequest{Name: "Visitor", Email: "v@example.com", Subject: "Mentoring", Message: "Hi"})
	require.NoError(t, err, "notification failures must not fail the submission")
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, inquiry.ID, notifier.sent[0].ID)

	_, err = svc.ListInquiries(ctx, f.alice)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	read, err := svc.UpdateStatus(ctx, f.admin, inquiry.ID, models.InquiryStatusRead)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusRead, read.Status)

	replied, err := svc.UpdateStatus(ctx, f.admin, inquiry.ID, models.InquiryStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusReplied, replied.Status)

	_, err = svc.UpdateStatus(ctx, f.admin, inquiry.ID, models.InquiryStatusNew)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	all, err := svc.ListInquiries(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
