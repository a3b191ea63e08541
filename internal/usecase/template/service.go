package template

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

// CreateTemplateInput represents input for creating a meeting template
type CreateTemplateInput struct {
	Name            string
	Description     *string
	MeetingType     *string
	TemplateContent string
	IsDefault       bool
}

// UpdateTemplateInput represents input for updating a template. Nil fields
// are left unchanged.
type UpdateTemplateInput struct {
	Name            *string
	Description     *string
	MeetingType     *string
	TemplateContent *string
	IsDefault       *bool
}

// Service defines the interface for meeting template management
type Service interface {
	// CreateTemplate creates a new template
	CreateTemplate(ctx context.Context, input CreateTemplateInput) (*entities.MeetingTemplate, error)

	// GetTemplate retrieves a template by ID
	GetTemplate(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error)

	// ListTemplates returns all templates, defaults first
	ListTemplates(ctx context.Context) ([]*entities.MeetingTemplate, error)

	// UpdateTemplate applies a partial update
	UpdateTemplate(ctx context.Context, id uuid.UUID, input UpdateTemplateInput) (*entities.MeetingTemplate, error)

	// DeleteTemplate removes a template
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// Ensure TemplateService implements Service interface
var _ Service = (*TemplateService)(nil)

// TemplateService handles meeting template management
type TemplateService struct {
	templateRepo repositories.TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repositories.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// CreateTemplate creates a new template
func (s *TemplateService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*entities.MeetingTemplate, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.TemplateContent) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	template := entities.NewMeetingTemplate(strings.TrimSpace(input.Name), input.TemplateContent)
	template.Description = input.Description
	template.MeetingType = input.MeetingType
	template.IsDefault = input.IsDefault

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return template, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error) {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return template, nil
}

// ListTemplates returns all templates, defaults first
func (s *TemplateService) ListTemplates(ctx context.Context) ([]*entities.MeetingTemplate, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplate applies a partial update
func (s *TemplateService) UpdateTemplate(ctx context.Context, id uuid.UUID, input UpdateTemplateInput) (*entities.MeetingTemplate, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		fields["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.MeetingType != nil {
		fields["meeting_type"] = *input.MeetingType
	}
	if input.TemplateContent != nil {
		if strings.TrimSpace(*input.TemplateContent) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		fields["template_content"] = *input.TemplateContent
	}
	if input.IsDefault != nil {
		fields["is_default"] = *input.IsDefault
	}
	if len(fields) == 0 {
		return s.GetTemplate(ctx, id)
	}

	if err := s.templateRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return s.GetTemplate(ctx, id)
}

// DeleteTemplate removes a template
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
