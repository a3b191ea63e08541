package meeting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// CreateMeetingInput represents input for ingesting a meeting
type CreateMeetingInput struct {
	Title        string
	Date         time.Time
	StartTime    *string
	EndTime      *string
	Location     *string
	MeetingType  *string
	TemplateID   *uuid.UUID
	Content      string
	Participants []string
}

// UpdateMeetingInput represents input for updating a meeting. Nil fields
// are left unchanged; RawContent is immutable and cannot be updated.
type UpdateMeetingInput struct {
	Title         *string
	Date          *time.Time
	StartTime     *string
	EndTime       *string
	Location      *string
	MeetingType   *string
	Status        *string
	Summary       *string
	ChangeSummary string
}

// Service defines the interface for the meeting ingestion pipeline and the
// version ledger
type Service interface {
	// CreateMeeting runs the full ingestion pipeline: summarize, parse
	// sections, persist, then best-effort enrichment (participants, action
	// items, tags). Returns the hydrated meeting.
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// GetMeeting retrieves a meeting with its associations
	GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// ListMeetings retrieves meetings matching the filters
	ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)

	// UpdateMeeting snapshots the current state into the version ledger and
	// then applies the update. Changing Summary recomputes the four section
	// fields.
	UpdateMeeting(ctx context.Context, id uuid.UUID, input UpdateMeetingInput) (*entities.Meeting, error)

	// DeleteMeeting removes a meeting with its versions, links and action
	// items
	DeleteMeeting(ctx context.Context, id uuid.UUID) error

	// GetVersionHistory returns all versions of a meeting, newest first
	GetVersionHistory(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingVersion, error)

	// RestoreVersion re-applies a snapshot as a normal update, producing a
	// new version on top of the history. History is never truncated.
	RestoreVersion(ctx context.Context, meetingID uuid.UUID, versionNumber int) (*entities.Meeting, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
