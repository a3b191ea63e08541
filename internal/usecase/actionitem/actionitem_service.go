package actionitem

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
	"github.com/meetinglog-app/meetinglog/internal/usecase/resolver"
)

// ActionItemService handles the action item lifecycle
type ActionItemService struct {
	actionItemRepo repositories.ActionItemRepository
	meetingRepo    repositories.MeetingRepository
	resolver       resolver.Service
	logger         *zap.Logger
}

// NewActionItemService creates a new action item service
func NewActionItemService(
	actionItemRepo repositories.ActionItemRepository,
	meetingRepo repositories.MeetingRepository,
	resolverService resolver.Service,
	logger *zap.Logger,
) *ActionItemService {
	return &ActionItemService{
		actionItemRepo: actionItemRepo,
		meetingRepo:    meetingRepo,
		resolver:       resolverService,
		logger:         logger,
	}
}

// CreateActionItem creates an action item. When no meeting is referenced
// the item is attached to the most recently dated meeting; if no meeting
// exists at all, a placeholder meeting is synthesized to hold it.
func (s *ActionItemService) CreateActionItem(ctx context.Context, input CreateActionItemInput) (*entities.ActionItem, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	if input.Priority != "" && !entities.IsValidActionItemPriority(input.Priority) {
		return nil, usecaseErrors.ErrInvalidPriority
	}

	meetingID, err := s.resolveMeetingID(ctx, input.MeetingID)
	if err != nil {
		return nil, err
	}

	item := entities.NewActionItem(meetingID, strings.TrimSpace(input.Description))
	if input.Priority != "" {
		item.Priority = input.Priority
	}
	if input.DueDate != nil {
		d := datatypes.Date(*input.DueDate)
		item.DueDate = &d
	}
	item.Notes = input.Notes

	if input.Assignee != nil && strings.TrimSpace(*input.Assignee) != "" {
		participant, err := s.resolver.ResolveParticipant(ctx, *input.Assignee)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assignee: %w", err)
		}
		item.AssigneeID = &participant.ID
	}

	if err := s.actionItemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}

	return s.GetActionItem(ctx, item.ID)
}

// resolveMeetingID returns the given meeting ID after verifying it exists,
// or falls back to the latest meeting, synthesizing one when the store is
// empty
func (s *ActionItemService) resolveMeetingID(ctx context.Context, meetingID *uuid.UUID) (uuid.UUID, error) {
	if meetingID != nil {
		if _, err := s.meetingRepo.FindByID(ctx, *meetingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, usecaseErrors.ErrMeetingNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to get meeting: %w", err)
		}
		return *meetingID, nil
	}

	latest, err := s.meetingRepo.FindMostRecent(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to find latest meeting: %w", err)
	}
	if latest != nil {
		return latest.ID, nil
	}

	placeholder := entities.NewMeeting("General action items", time.Now(), "Placeholder for action items created without a meeting")
	if err := s.meetingRepo.Create(ctx, placeholder); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create placeholder meeting: %w", err)
	}
	s.logger.Info("created placeholder meeting for orphan action item",
		zap.String("meeting_id", placeholder.ID.String()))
	return placeholder.ID, nil
}

// GetActionItem retrieves an action item by ID
func (s *ActionItemService) GetActionItem(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.actionItemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}
	return item, nil
}

// ListActionItems retrieves action items matching the filters
func (s *ActionItemService) ListActionItems(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	items, err := s.actionItemRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// UpdateActionItem applies a partial update. The completion date is set
// exactly when the status transitions into completed and cleared when it
// transitions back out.
func (s *ActionItemService) UpdateActionItem(ctx context.Context, id uuid.UUID, input UpdateActionItemInput) (*entities.ActionItem, error) {
	current, err := s.GetActionItem(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		fields["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		if !entities.IsValidActionItemPriority(*input.Priority) {
			return nil, usecaseErrors.ErrInvalidPriority
		}
		fields["priority"] = *input.Priority
	}
	if input.Status != nil {
		if !entities.IsValidActionItemStatus(*input.Status) {
			return nil, usecaseErrors.ErrInvalidStatus
		}
		fields["status"] = *input.Status
		if *input.Status == entities.ActionItemStatusCompleted && current.Status != entities.ActionItemStatusCompleted {
			fields["completion_date"] = time.Now()
		} else if *input.Status != entities.ActionItemStatusCompleted && current.Status == entities.ActionItemStatusCompleted {
			fields["completion_date"] = nil
		}
	}
	if input.DueDate != nil {
		fields["due_date"] = datatypes.Date(*input.DueDate)
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.Assignee != nil {
		if strings.TrimSpace(*input.Assignee) == "" {
			fields["assignee_id"] = nil
		} else {
			participant, err := s.resolver.ResolveParticipant(ctx, *input.Assignee)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve assignee: %w", err)
			}
			fields["assignee_id"] = participant.ID
		}
	}
	if len(fields) == 0 {
		return current, nil
	}

	if err := s.actionItemRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}

	return s.GetActionItem(ctx, id)
}

// DeleteActionItem removes an action item
func (s *ActionItemService) DeleteActionItem(ctx context.Context, id uuid.UUID) error {
	if err := s.actionItemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrActionItemNotFound
		}
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	return nil
}

// GetSummary returns counts by status plus the overdue count
func (s *ActionItemService) GetSummary(ctx context.Context) (*repositories.ActionItemSummary, error) {
	summary, err := s.actionItemRepo.Summarize(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to summarize action items: %w", err)
	}
	return summary, nil
}
