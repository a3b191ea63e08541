package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// MeetingFilters holds list filters and pagination for meetings
type MeetingFilters struct {
	Search        string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        string
	ParticipantID *uuid.UUID
	TagID         *uuid.UUID
	Page          int
	PageSize      int
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create persists a new meeting record
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with participants, tags and action items
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves meetings matching the filters plus the total count
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// Update applies the given column updates to a meeting
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Delete removes a meeting and its dependent rows
	Delete(ctx context.Context, id uuid.UUID) error

	// FindMostRecent returns the most recently dated meeting, or nil if none
	FindMostRecent(ctx context.Context) (*entities.Meeting, error)

	// ListCorpus returns all meetings ordered by date descending, without
	// association preloads, for search and Q&A
	ListCorpus(ctx context.Context) ([]*entities.Meeting, error)
}
