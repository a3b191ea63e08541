package tag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
)

// CreateTagInput represents input for creating a tag manually
type CreateTagInput struct {
	Name        string
	Color       *string
	Description *string
}

// UpdateTagInput represents input for updating a tag. Nil fields are left
// unchanged; the name is immutable once created.
type UpdateTagInput struct {
	Color       *string
	Description *string
}

// Service defines the interface for tag management
type Service interface {
	// CreateTag creates a user-defined tag
	CreateTag(ctx context.Context, input CreateTagInput) (*entities.Tag, error)

	// GetTag retrieves a tag by ID
	GetTag(ctx context.Context, id uuid.UUID) (*entities.Tag, error)

	// ListTags returns all tags, most used first
	ListTags(ctx context.Context) ([]*entities.Tag, error)

	// UpdateTag applies a partial update
	UpdateTag(ctx context.Context, id uuid.UUID, input UpdateTagInput) (*entities.Tag, error)

	// DeleteTag removes a tag and its meeting links
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

// Ensure TagService implements Service interface
var _ Service = (*TagService)(nil)

// TagService handles tag management
type TagService struct {
	tagRepo repositories.TagRepository
}

// NewTagService creates a new tag service
func NewTagService(tagRepo repositories.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// CreateTag creates a user-defined tag
func (s *TagService) CreateTag(ctx context.Context, input CreateTagInput) (*entities.Tag, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	tag := entities.NewTag(name, false)
	tag.Color = input.Color
	tag.Description = input.Description

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, usecaseErrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// GetTag retrieves a tag by ID
func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*entities.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

// ListTags returns all tags, most used first
func (s *TagService) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// UpdateTag applies a partial update
func (s *TagService) UpdateTag(ctx context.Context, id uuid.UUID, input UpdateTagInput) (*entities.Tag, error) {
	fields := map[string]interface{}{}
	if input.Color != nil {
		fields["color"] = *input.Color
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if len(fields) == 0 {
		return s.GetTag(ctx, id)
	}

	if err := s.tagRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return s.GetTag(ctx, id)
}

// DeleteTag removes a tag and its meeting links
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
