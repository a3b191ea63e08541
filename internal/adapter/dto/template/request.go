package template

import "time"

// CreateTemplateRequest represents the request body for creating a template
type CreateTemplateRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Description     *string `json:"description,omitempty"`
	MeetingType     *string `json:"meeting_type,omitempty" validate:"omitempty,max=50"`
	TemplateContent string  `json:"template_content" validate:"required"`
	IsDefault       bool    `json:"is_default"`
}

// UpdateTemplateRequest represents the request body for updating a template
type UpdateTemplateRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description     *string `json:"description,omitempty"`
	MeetingType     *string `json:"meeting_type,omitempty" validate:"omitempty,max=50"`
	TemplateContent *string `json:"template_content,omitempty"`
	IsDefault       *bool   `json:"is_default,omitempty"`
}

// TemplateResponse is a template in API responses
type TemplateResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	MeetingType     *string   `json:"meeting_type,omitempty"`
	TemplateContent string    `json:"template_content"`
	IsDefault       bool      `json:"is_default"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
