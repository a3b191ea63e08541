package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create persists a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Omit("Meeting", "Assignee").Create(item).Error
}

// FindByID retrieves an action item with its assignee and meeting
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Meeting").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves action items matching the filters
func (r *actionItemRepository) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	query := r.db.WithContext(ctx).Model(&entities.ActionItem{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filters.AssigneeID)
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}
	if filters.OverdueOnly {
		query = query.Where("due_date < CURRENT_DATE AND status != ?", entities.ActionItemStatusCompleted)
	}

	var items []*entities.ActionItem
	err := query.
		Preload("Assignee").
		Preload("Meeting").
		Order("due_date ASC NULLS LAST, priority DESC").
		Find(&items).Error
	return items, err
}

// Update applies the given column updates to an action item
func (r *actionItemRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an action item
func (r *actionItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ActionItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Summarize returns counts by status plus the overdue count
func (r *actionItemRepository) Summarize(ctx context.Context, today time.Time) (*repositories.ActionItemSummary, error) {
	summary := &repositories.ActionItemSummary{}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		summary.Total += c.Count
		switch c.Status {
		case entities.ActionItemStatusPending:
			summary.Pending = c.Count
		case entities.ActionItemStatusInProgress:
			summary.InProgress = c.Count
		case entities.ActionItemStatusCompleted:
			summary.Completed = c.Count
		case entities.ActionItemStatusCancelled:
			summary.Cancelled = c.Count
		}
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("due_date < ? AND status != ?", today.Format("2006-01-02"), entities.ActionItemStatusCompleted).
		Count(&summary.Overdue).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
