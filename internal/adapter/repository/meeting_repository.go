package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create persists a new meeting record
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Omit("Participants", "Tags", "ActionItems").Create(meeting).Error
}

// FindByID retrieves a meeting with participants, tags and action items
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("Tags.Tag").
		Preload("ActionItems.Assignee").
		Where("id = ?", id).
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings matching the filters plus the total count
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR raw_content ILIKE ? OR summary ILIKE ?", pattern, pattern, pattern)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.ParticipantID != nil {
		query = query.Where("id IN (SELECT meeting_id FROM meeting_participants WHERE participant_id = ?)", *filters.ParticipantID)
	}
	if filters.TagID != nil {
		query = query.Where("id IN (SELECT meeting_id FROM meeting_tags WHERE tag_id = ?)", *filters.TagID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var meetings []*entities.Meeting
	err := query.
		Preload("Participants").
		Preload("Tags.Tag").
		Order("date DESC, created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&meetings).Error
	return meetings, total, err
}

// Update applies the given column updates to a meeting
func (r *meetingRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
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

// Delete removes a meeting and its dependent rows
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.MeetingParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.MeetingTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.MeetingVersion{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.Meeting{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FindMostRecent returns the most recently dated meeting, or nil if none
func (r *meetingRepository) FindMostRecent(ctx context.Context) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// ListCorpus returns all meetings ordered by date descending
func (r *meetingRepository) ListCorpus(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&meetings).Error
	return meetings, err
}
