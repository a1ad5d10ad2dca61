package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnihub/internal/app/controllers"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
	"github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/email"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

type app struct {
	t          *testing.T
	router     *gin.Engine
	repos      *repositories.Repositories
	jwt        *auth.JWTService
	uploadsDir string
}

type silentMailer struct{}

func (silentMailer) SendInquiryNotification(email.InquiryMessage) error { return nil }

func newApp(t *testing.T) *app {
	t.Helper()
	require.NoError(t, middleware.RegisterBindingRules())

	lgr := zerolog.Nop()
	repos := repositories.NewMemoryRepositories()
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})

	uploadsDir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(uploadsDir, "http://localhost:5000/uploads")
	require.NoError(t, err)

	storyService := services.NewStoryService(repos.StoryRepository, repos.UserRepository, storage, lgr)
	postService := services.NewPostService(repos.PostRepository, repos.UserRepository, storage, lgr)

	router := gin.New()
	SetupRouter(router, Handlers{
		Auth:    controllers.NewAuthController(services.NewAuthService(repos.UserRepository, jwt, lgr), lgr),
		Job:     controllers.NewJobController(services.NewJobService(repos.JobRepository, repos.UserRepository, lgr)),
		Story:   controllers.NewStoryController(storyService, storage),
		Post:    controllers.NewPostController(postService, storage),
		Event:   controllers.NewEventController(services.NewEventService(repos.EventRepository, repos.UserRepository, lgr)),
		Inquiry: controllers.NewInquiryController(services.NewInquiryService(repos.InquiryRepository, silentMailer{}, lgr)),
		Health:  controllers.NewHealthController("memory", nil),

		AuthMiddleware:   middleware.NewAuthMiddleware(jwt, repos.UserRepository),
		UploadMiddleware: middleware.NewUploadMiddleware(storage, 1),
	})

	return &app{t: t, router: router, repos: repos, jwt: jwt, uploadsDir: uploadsDir}
}

type user struct {
	ID    string
	Name  string
	Email string
	Token string
}

func (a *app) register(name, emailAddr string, role models.Role) user {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": name, "email": emailAddr, "password": "s3cretpass", "role": role,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID    string `json:"_id"`
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return user{ID: resp.ID, Name: name, Email: emailAddr, Token: resp.Token}
}

// admin bypasses registration, which refuses the admin role
func (a *app) admin() user {
	a.t.Helper()
	u := &models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(a.t, a.repos.UserRepository.Create(context.Background(), u))
	token, _, err := a.jwt.GenerateAccessToken(u)
	require.NoError(a.t, err)
	return user{ID: u.ID, Name: u.Name, Email: u.Email, Token: token}
}

func (a *app) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *app) multipart(method, path, token string, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	a.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(a.t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", "photo.png")
		require.NoError(a.t, err)
		_, err = part.Write(image)
		require.NoError(a.t, err)
	}
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[struct {
		Message string `json:"message"`
	}](t, w).Message
}

func TestJobLifecycle(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)
	bob := a.register("Bob", "bob@example.com", models.RoleStudent)

	w := a.do(http.MethodPost, "/api/jobs", alice.Token, map[string]any{
		"title":        "Backend Intern",
		"company":      "Acme",
		"location":     "Istanbul",
		"type":         "Internship",
		"description":  "Go services",
		"requirements": []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Job](t, w)
	require.NotEmpty(t, created.ID)

	w = a.do(http.MethodGet, "/api/jobs/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	job := decode[models.Job](t, w)
	assert.Equal(t, "Backend Intern", job.Title)
	assert.Equal(t, "Acme", job.Company)
	require.NotNil(t, job.PostedBy)
	assert.Equal(t, "Alice", job.PostedBy.Name)
	assert.Equal(t, "alice@example.com", job.PostedBy.Email)
	assert.Empty(t, job.PostedBy.ProfilePicture)

	w = a.do(http.MethodPut, "/api/jobs/"+created.ID, bob.Token, map[string]any{"title": "Hijacked"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPut, "/api/jobs/"+created.ID, alice.Token, map[string]any{"location": "Remote"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Job](t, w)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "Backend Intern", updated.Title)
	assert.Equal(t, []string{"Go", "SQL"}, updated.Requirements)

	w = a.do(http.MethodDelete, "/api/jobs/"+created.ID, alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Job removed", message(t, w))

	w = a.do(http.MethodGet, "/api/jobs/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", message(t, w))
}

func TestJobListFilters(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)

	for _, j := range []map[string]any{
		{"title": "Backend Intern", "company": "Acme", "location": "Remote", "type": "Internship", "description": "d", "requirements": []string{"Kubernetes"}},
		{"title": "Frontend Dev", "company": "Globex", "location": "Ankara", "type": "Full-time", "description": "React"},
		{"title": "Install Engineer", "company": "Initech", "location": "Izmir", "type": "Full-time", "description": "Field work"},
	} {
		require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/jobs", alice.Token, j).Code)
	}

	tests := []struct {
		query  string
		titles []string
	}{
		{"", []string{"Install Engineer", "Frontend Dev", "Backend Intern"}},
		{"?type=all", []string{"Install Engineer", "Frontend Dev", "Backend Intern"}},
		{"?type=Internship", []string{"Backend Intern"}},
		{"?location=ankara", []string{"Frontend Dev"}},
		{"?keyword=kubernetes", []string{"Backend Intern"}},
		{"?keyword=all", []string{"Install Engineer"}},
		{"?keyword=nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := a.do(http.MethodGet, "/api/jobs"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			titles := []string{}
			for _, j := range decode[[]models.Job](t, w) {
				titles = append(titles, j.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestCreateWithMissingFieldPersistsNothing(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)

	w := a.do(http.MethodPost, "/api/jobs", alice.Token, map[string]any{
		"company": "Acme", "location": "Remote", "type": "Internship", "description": "d",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title is required", message(t, w))

	w = a.do(http.MethodPost, "/api/jobs", alice.Token, map[string]any{
		"title": "   ", "company": "Acme", "location": "Remote", "type": "Internship", "description": "d",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title is required", message(t, w))

	w = a.do(http.MethodPost, "/api/events", alice.Token, map[string]any{"title": "Reunion"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/posts", alice.Token, map[string]any{"content": " \n\t "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "content is required", message(t, w))

	jobs, err := a.repos.JobRepository.List(context.Background(), models.JobFilter{})
	require.NoError(t, err)
	assert.Empty(t, jobs)
	events, err := a.repos.EventRepository.List(context.Background(), models.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
	posts, err := a.repos.PostRepository.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestMalformedIDsAreNotFound(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)

	for _, path := range []string{"/api/jobs/not-a-valid-id", "/api/events/not-a-valid-id", "/api/stories/not-a-valid-id"} {
		w := a.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
	w := a.do(http.MethodGet, "/api/posts/not-a-valid-id", alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthEndpoints(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "Alice@Example.com", models.RoleAlumni)

	w := a.do(http.MethodGet, "/api/auth/me", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.User](t, w)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = a.do(http.MethodPost, "/api/auth/register", "", map[string]any{"name": "Again", "email": "alice@example.com", "password": "s3cretpass"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(http.MethodPost, "/api/auth/register", "", map[string]any{"name": "Eve", "email": "eve@example.com", "password": "s3cretpass", "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "alice@example.com", "password": "wrongpass1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "alice@example.com", "password": "s3cretpass"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[struct {
		Token string `json:"token"`
	}](t, w).Token)

	w = a.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, no token", message(t, w))
}

func TestPostLikesAndPermissions(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)
	bob := a.register("Bob", "bob@example.com", models.RoleStudent)
	admin := a.admin()

	w := a.do(http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/posts", alice.Token, map[string]any{"content": "Hello alumni"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode[models.Post](t, w)
	require.NotNil(t, post.Author)
	assert.Equal(t, models.RoleAlumni, post.Author.Role)

	like := func(u user) []string {
		w := a.do(http.MethodPut, "/api/posts/"+post.ID+"/like", u.Token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[[]string](t, w)
	}
	assert.Equal(t, []string{bob.ID}, like(bob))
	assert.ElementsMatch(t, []string{bob.ID, alice.ID}, like(alice))
	assert.Equal(t, []string{alice.ID}, like(bob))

	// Only the author edits; an admin may still delete
	w = a.do(http.MethodPut, "/api/posts/"+post.ID, admin.Token, map[string]any{"content": "moderated"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = a.do(http.MethodDelete, "/api/posts/"+post.ID, bob.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodGet, "/api/posts/"+post.ID, bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello alumni", decode[models.Post](t, w).Content)

	w = a.do(http.MethodDelete, "/api/posts/"+post.ID, admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post removed", message(t, w))
}

func TestStoryImageUpload(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)
	bob := a.register("Bob", "bob@example.com", models.RoleStudent)

	w := a.multipart(http.MethodPost, "/api/stories", alice.Token, map[string]string{
		"name": "Alice", "role": "Engineer", "company": "Acme", "content": "From campus to Acme",
	}, pngPixel)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	story := decode[models.SuccessStory](t, w)
	assert.Equal(t, models.StoryStatusApproved, story.Status)
	require.NotNil(t, story.Image)
	assert.True(t, strings.HasPrefix(*story.Image, "http://localhost:5000/uploads/"+StoryUploadFolder+"/"))

	stored := filepath.Join(a.uploadsDir, strings.TrimPrefix(*story.Image, "http://localhost:5000/uploads/"))
	_, err := os.Stat(stored)
	require.NoError(t, err)

	w = a.do(http.MethodPut, "/api/stories/"+story.ID, alice.Token, map[string]any{"name": strings.Repeat("x", 101)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name must be at most 100 characters", message(t, w))

	// A rejected upload from a non-owner must not be left behind
	w = a.multipart(http.MethodPut, "/api/stories/"+story.ID, bob.Token, map[string]string{"content": "mine now"}, pngPixel)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	entries, err := os.ReadDir(filepath.Join(a.uploadsDir, StoryUploadFolder))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	w = a.do(http.MethodGet, "/api/stories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stories := decode[[]models.SuccessStory](t, w)
	require.Len(t, stories, 1)
	require.NotNil(t, stories[0].User)
	assert.Equal(t, "Alice", stories[0].User.Name)
	assert.Empty(t, stories[0].User.Email)

	w = a.do(http.MethodDelete, "/api/stories/"+story.ID, alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func (a *app) storedPath(url string) string {
	return filepath.Join(a.uploadsDir, filepath.FromSlash(strings.TrimPrefix(url, "http://localhost:5000/uploads/")))
}

func TestPostImageUpdate(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)

	w := a.multipart(http.MethodPost, "/api/posts", alice.Token, map[string]string{"content": "First day"}, pngPixel)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode[models.Post](t, w)
	require.NotNil(t, post.Image)
	first := a.storedPath(*post.Image)

	w = a.multipart(http.MethodPut, "/api/posts/"+post.ID, alice.Token, map[string]string{"content": "Last day"}, pngPixel)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Post](t, w)
	assert.Equal(t, "Last day", updated.Content)
	require.NotNil(t, updated.Image)
	assert.NotEqual(t, *post.Image, *updated.Image)
	assert.True(t, strings.HasPrefix(*updated.Image, "http://localhost:5000/uploads/"+PostUploadFolder+"/"))

	_, err := os.Stat(a.storedPath(*updated.Image))
	require.NoError(t, err)
	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err), "replaced image should be removed")

	// Re-sending the current URL is not a change
	w = a.do(http.MethodPut, "/api/posts/"+post.ID, alice.Token, map[string]any{"image": *updated.Image})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, err = os.Stat(a.storedPath(*updated.Image))
	assert.NoError(t, err)
}

func TestStoredImagesBelongToTheirRecord(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)
	bob := a.register("Bob", "bob@example.com", models.RoleAlumni)

	w := a.multipart(http.MethodPost, "/api/posts", alice.Token, map[string]string{"content": "Graduation"}, pngPixel)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	alicePost := decode[models.Post](t, w)
	require.NotNil(t, alicePost.Image)
	aliceFile := a.storedPath(*alicePost.Image)

	story := map[string]any{
		"name": "Bob", "role": "Engineer", "company": "Globex", "content": "My path", "image": *alicePost.Image,
	}
	w = a.do(http.MethodPost, "/api/stories", bob.Token, story)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Image must be uploaded as a file", message(t, w))

	delete(story, "image")
	w = a.do(http.MethodPost, "/api/stories", bob.Token, story)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bobStory := decode[models.SuccessStory](t, w)

	w = a.do(http.MethodPut, "/api/stories/"+bobStory.ID, bob.Token, map[string]any{"image": *alicePost.Image})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/posts", bob.Token, map[string]any{"content": "Hi"})
	require.Equal(t, http.StatusCreated, w.Code)
	bobPost := decode[models.Post](t, w)
	w = a.do(http.MethodPut, "/api/posts/"+bobPost.ID, bob.Token, map[string]any{"image": *alicePost.Image})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// External links are still accepted
	w = a.do(http.MethodPut, "/api/stories/"+bobStory.ID, bob.Token, map[string]any{"image": "https://cdn.example.com/bob.png"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Equal(t, http.StatusOK, a.do(http.MethodDelete, "/api/stories/"+bobStory.ID, bob.Token, nil).Code)
	require.Equal(t, http.StatusOK, a.do(http.MethodDelete, "/api/posts/"+bobPost.ID, bob.Token, nil).Code)

	_, err := os.Stat(aliceFile)
	assert.NoError(t, err)
}

func TestEventOwnership(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)
	bob := a.register("Bob", "bob@example.com", models.RoleStudent)
	admin := a.admin()

	w := a.do(http.MethodPost, "/api/events", alice.Token, map[string]any{
		"title": "Reunion", "description": "Class of 2015", "date": "2025-06-01",
		"time": "18:30", "location": "Campus", "type": "Reunion",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decode[models.Event](t, w)

	w = a.do(http.MethodPut, "/api/events/"+event.ID, bob.Token, map[string]any{"location": "Elsewhere"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodGet, "/api/events/"+event.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Campus", decode[models.Event](t, w).Location)

	w = a.do(http.MethodPut, "/api/events/"+event.ID, admin.Token, map[string]any{"location": "Online"})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Event](t, w)
	assert.Equal(t, "Online", got.Location)
	require.NotNil(t, got.Organizer)
	assert.Equal(t, "Alice", got.Organizer.Name)

	w = a.do(http.MethodGet, "/api/events?type=Webinar", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Event](t, w))
}

func TestInquiryWorkflow(t *testing.T) {
	a := newApp(t)
	alice := a.register("Alice", "alice@example.com", models.RoleAlumni)
	admin := a.admin()

	w := a.do(http.MethodPost, "/api/inquiries", "", map[string]any{"name": "Visitor", "email": "v@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide all fields", message(t, w))

	w = a.do(http.MethodPost, "/api/inquiries", "", map[string]any{
		"name": "Visitor", "email": "not-an-email", "subject": "Mentoring", "message": "Hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email must be a valid email address", message(t, w))

	w = a.do(http.MethodPost, "/api/inquiries", "", map[string]any{
		"name": "Visitor", "email": "v@example.com", "subject": "Mentoring", "message": "Hi",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	inquiry := decode[models.Inquiry](t, w)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)

	w = a.do(http.MethodGet, "/api/inquiries", alice.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized as an admin", message(t, w))

	w = a.do(http.MethodGet, "/api/inquiries", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Inquiry](t, w), 1)

	path := "/api/inquiries/" + inquiry.ID + "/status"
	w = a.do(http.MethodPatch, path, admin.Token, map[string]any{"status": "read"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.InquiryStatusRead, decode[models.Inquiry](t, w).Status)

	w = a.do(http.MethodPatch, path, admin.Token, map[string]any{"status": "new"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/inquiries/"+inquiry.ID, admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InquiryStatusRead, decode[models.Inquiry](t, w).Status)
}

func TestHealth(t *testing.T) {
	a := newApp(t)
	w := a.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"memory"}`, w.Body.String())
}
