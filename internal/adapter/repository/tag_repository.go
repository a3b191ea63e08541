package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// tagRepository implements the TagRepository interface
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreate resolves a tag by exact name, creating the row if absent.
// Same ON CONFLICT DO NOTHING scheme as the participant repository.
func (r *tagRepository) FindOrCreate(ctx context.Context, name string, aiSuggested bool) (*entities.Tag, bool, error) {
	tag := entities.NewTag(name, aiSuggested)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(tag)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		var existing entities.Tag
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}
	return tag, true, nil
}

// Link associates a tag with a meeting; duplicate links are no-ops
func (r *tagRepository) Link(ctx context.Context, meetingID, tagID uuid.UUID, confidence float64) (bool, error) {
	link := &entities.MeetingTag{
		MeetingID:  meetingID,
		TagID:      tagID,
		Confidence: confidence,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementUsage bumps the tag usage counter by one
func (r *tagRepository) IncrementUsage(ctx context.Context, tagID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Where("id = ?", tagID).
		Update("usage_count", gorm.Expr("usage_count + 1")).
		Error
}

// ListNames returns all tag names
func (r *tagRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}

// Create persists a user-created tag
func (r *tagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// FindByID retrieves a tag by ID
func (r *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// List returns all tags ordered by usage count descending, then name
func (r *tagRepository) List(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	err := r.db.WithContext(ctx).
		Order("usage_count DESC, name ASC").
		Find(&tags).Error
	return tags, err
}

// Update applies the given column updates to a tag
func (r *tagRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
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

// Delete removes a tag and its meeting links
func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&entities.MeetingTag{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.Tag{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
