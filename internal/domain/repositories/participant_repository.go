package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// FindOrCreate resolves a participant by exact name, creating the row if
	// absent. Concurrent calls for the same new name must yield one row.
	FindOrCreate(ctx context.Context, name string) (*entities.Participant, error)

	// Link associates a participant with a meeting. Duplicate links are
	// no-ops; the return value reports whether a new association was made.
	Link(ctx context.Context, meetingID, participantID uuid.UUID) (bool, error)

	// FindByID retrieves a participant by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error)

	// List returns all participants ordered by name
	List(ctx context.Context) ([]*entities.Participant, error)
}
