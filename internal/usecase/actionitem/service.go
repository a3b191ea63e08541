package actionitem

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// CreateActionItemInput represents input for creating an action item.
// MeetingID is optional: items without one are attached to the most
// recently dated meeting.
type CreateActionItemInput struct {
	MeetingID   *uuid.UUID
	Description string
	Assignee    *string
	Priority    string
	DueDate     *time.Time
	Notes       *string
}

// UpdateActionItemInput represents input for updating an action item. Nil
// fields are left unchanged.
type UpdateActionItemInput struct {
	Description *string
	Assignee    *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
	Notes       *string
}

// Service defines the interface for the action item lifecycle
type Service interface {
	// CreateActionItem creates an action item, resolving the assignee name
	// and falling back to the latest meeting when none is referenced
	CreateActionItem(ctx context.Context, input CreateActionItemInput) (*entities.ActionItem, error)

	// GetActionItem retrieves an action item by ID
	GetActionItem(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)

	// ListActionItems retrieves action items matching the filters
	ListActionItems(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error)

	// UpdateActionItem applies a partial update. A transition to completed
	// sets the completion date; no other transition touches it.
	UpdateActionItem(ctx context.Context, id uuid.UUID, input UpdateActionItemInput) (*entities.ActionItem, error)

	// DeleteActionItem removes an action item
	DeleteActionItem(ctx context.Context, id uuid.UUID) error

	// GetSummary returns counts by status plus the overdue count
	GetSummary(ctx context.Context) (*repositories.ActionItemSummary, error)
}

// Ensure ActionItemService implements Service interface
var _ Service = (*ActionItemService)(nil)
