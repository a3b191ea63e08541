package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// ActionItemFilters holds list filters for action items
type ActionItemFilters struct {
	Status      string
	AssigneeID  *uuid.UUID
	Priority    string
	MeetingID   *uuid.UUID
	OverdueOnly bool
}

// ActionItemSummary holds aggregate counts for action items
type ActionItemSummary struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Overdue    int64 `json:"overdue"`
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// Create persists a new action item
	Create(ctx context.Context, item *entities.ActionItem) error

	// FindByID retrieves an action item with its assignee and meeting
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)

	// List retrieves action items matching the filters, ordered by due date
	// ascending then priority
	List(ctx context.Context, filters ActionItemFilters) ([]*entities.ActionItem, error)

	// Update applies the given column updates to an action item
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Delete removes an action item
	Delete(ctx context.Context, id uuid.UUID) error

	// Summarize returns counts by status plus the overdue count relative to
	// the given day
	Summarize(ctx context.Context, today time.Time) (*ActionItemSummary, error)
}
