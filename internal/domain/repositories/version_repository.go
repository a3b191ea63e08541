package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// VersionRepository defines the interface for the append-only version ledger
type VersionRepository interface {
	// Append inserts an immutable version snapshot, assigning the next
	// version number for the meeting (1 if none exist). The assignment is
	// atomic under concurrent appends: the unique (meeting_id,
	// version_number) constraint plus retry guarantees gaplessness.
	Append(ctx context.Context, version *entities.MeetingVersion) error

	// ListByMeeting returns all versions for a meeting, newest first
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingVersion, error)

	// FindByNumber retrieves one version of a meeting
	FindByNumber(ctx context.Context, meetingID uuid.UUID, versionNumber int) (*entities.MeetingVersion, error)
}
