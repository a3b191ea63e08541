package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// TemplateRepository defines the interface for meeting template data access
type TemplateRepository interface {
	// Create persists a new template
	Create(ctx context.Context, template *entities.MeetingTemplate) error

	// FindByID retrieves a template by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error)

	// List returns all templates, defaults first then by name
	List(ctx context.Context) ([]*entities.MeetingTemplate, error)

	// Update applies the given column updates to a template
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Delete removes a template
	Delete(ctx context.Context, id uuid.UUID) error
}
