package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// templateRepository implements the TemplateRepository interface
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) repositories.TemplateRepository {
	return &templateRepository{db: db}
}

// Create persists a new template
func (r *templateRepository) Create(ctx context.Context, template *entities.MeetingTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

// FindByID retrieves a template by ID
func (r *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error) {
	var template entities.MeetingTemplate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// List returns all templates, defaults first then by name
func (r *templateRepository) List(ctx context.Context) ([]*entities.MeetingTemplate, error) {
	var templates []*entities.MeetingTemplate
	err := r.db.WithContext(ctx).
		Order("is_default DESC, name ASC").
		Find(&templates).Error
	return templates, err
}

// Update applies the given column updates to a template
func (r *templateRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.MeetingTemplate{}).
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

// Delete removes a template
func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MeetingTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
