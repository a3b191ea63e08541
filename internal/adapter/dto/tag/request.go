package tag

import "time"

// CreateTagRequest represents the request body for creating a tag
type CreateTagRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Color       *string `json:"color,omitempty" validate:"omitempty,max=20"`
	Description *string `json:"description,omitempty"`
}

// UpdateTagRequest represents the request body for updating a tag
type UpdateTagRequest struct {
	Color       *string `json:"color,omitempty" validate:"omitempty,max=20"`
	Description *string `json:"description,omitempty"`
}

// TagResponse is a tag in API responses
type TagResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Color         *string   `json:"color,omitempty"`
	Description   *string   `json:"description,omitempty"`
	UsageCount    int       `json:"usage_count"`
	IsAISuggested bool      `json:"is_ai_suggested"`
	CreatedAt     time.Time `json:"created_at"`
}
