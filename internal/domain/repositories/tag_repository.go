package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// FindOrCreate resolves a tag by exact name, creating the row if absent.
	// The created flag reports whether a new row was inserted. Concurrent
	// calls for the same new name must yield one row.
	FindOrCreate(ctx context.Context, name string, aiSuggested bool) (tag *entities.Tag, created bool, err error)

	// Link associates a tag with a meeting carrying a confidence score.
	// Duplicate links are no-ops; the return value reports whether a new
	// association was made.
	Link(ctx context.Context, meetingID, tagID uuid.UUID, confidence float64) (bool, error)

	// IncrementUsage bumps the tag usage counter by one
	IncrementUsage(ctx context.Context, tagID uuid.UUID) error

	// ListNames returns all tag names
	ListNames(ctx context.Context) ([]string, error)

	// Create persists a user-created tag
	Create(ctx context.Context, tag *entities.Tag) error

	// FindByID retrieves a tag by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error)

	// List returns all tags ordered by usage count descending, then name
	List(ctx context.Context) ([]*entities.Tag, error)

	// Update applies the given column updates to a tag
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Delete removes a tag and its meeting links
	Delete(ctx context.Context, id uuid.UUID) error
}
