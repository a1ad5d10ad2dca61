package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/memory"
	mongorepo "github.com/yigit/alumnihub/internal/app/repositories/mongo"
	"github.com/yigit/alumnihub/internal/app/repositories/postgres"
	"go.mongodb.org/mongo-driver/mongo"
)

// Every implementation returns apperrors.ErrResourceNotFound from GetByID, Update
// and Delete when the id is unknown or malformed, and lists newest first.

// UserRepository defines user persistence
type UserRepository interface {
	// Create stores the user and fills ID and timestamps.
	// A taken email yields apperrors.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// GetSummaries resolves user references in one round trip. Unknown ids are omitted.
	GetSummaries(ctx context.Context, ids []string) (map[string]models.UserSummary, error)
}

// JobRepository defines job posting persistence
type JobRepository interface {
	List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

// StoryRepository defines success story persistence
type StoryRepository interface {
	// List returns stories with the given status, or all of them when status is empty
	List(ctx context.Context, status models.StoryStatus) ([]*models.SuccessStory, error)
	GetByID(ctx context.Context, id string) (*models.SuccessStory, error)
	Create(ctx context.Context, story *models.SuccessStory) error
	Update(ctx context.Context, story *models.SuccessStory) error
	Delete(ctx context.Context, id string) error
}

// PostRepository defines feed post persistence
type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	// Update persists content and image. Likes are only changed through ToggleLike.
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	// ToggleLike adds userID to the post's likes or removes it when present,
	// returning the resulting likes.
	ToggleLike(ctx context.Context, postID, userID string) ([]string, error)
}

// EventRepository defines event persistence
type EventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// InquiryRepository defines contact inquiry persistence
type InquiryRepository interface {
	List(ctx context.Context) ([]*models.Inquiry, error)
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	Create(ctx context.Context, inquiry *models.Inquiry) error
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    UserRepository
	JobRepository     JobRepository
	StoryRepository   StoryRepository
	PostRepository    PostRepository
	EventRepository   EventRepository
	InquiryRepository InquiryRepository
}

// NewPostgresRepositories initializes all repositories on a pgx pool
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    postgres.NewUserRepository(db),
		JobRepository:     postgres.NewJobRepository(db),
		StoryRepository:   postgres.NewStoryRepository(db),
		PostRepository:    postgres.NewPostRepository(db),
		EventRepository:   postgres.NewEventRepository(db),
		InquiryRepository: postgres.NewInquiryRepository(db),
	}
}

// NewMongoRepositories initializes all repositories on a mongo database
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:    mongorepo.NewUserRepository(db),
		JobRepository:     mongorepo.NewJobRepository(db),
		StoryRepository:   mongorepo.NewStoryRepository(db),
		PostRepository:    mongorepo.NewPostRepository(db),
		EventRepository:   mongorepo.NewEventRepository(db),
		InquiryRepository: mongorepo.NewInquiryRepository(db),
	}
}

// NewMemoryRepositories initializes process-local repositories
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		UserRepository:    memory.NewUserRepository(),
		JobRepository:     memory.NewJobRepository(),
		StoryRepository:   memory.NewStoryRepository(),
		PostRepository:    memory.NewPostRepository(),
		EventRepository:   memory.NewEventRepository(),
		InquiryRepository: memory.NewInquiryRepository(),
	}
}
