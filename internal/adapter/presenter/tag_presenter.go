package presenter

import (
	"github.com/meetinglog-app/meetinglog/internal/adapter/dto/tag"
	"github.com/meetinglog-app/meetinglog/internal/adapter/dto/template"
	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// ToTagResponse converts a Tag entity to its DTO
func ToTagResponse(t *entities.Tag) *tag.TagResponse {
	if t == nil {
		return nil
	}
	return &tag.TagResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		Color:         t.Color,
		Description:   t.Description,
		UsageCount:    t.UsageCount,
		IsAISuggested: t.IsAISuggested,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTagListResponse converts a slice of Tag entities to DTOs
func ToTagListResponse(tags []*entities.Tag) []tag.TagResponse {
	responses := make([]tag.TagResponse, 0, len(tags))
	for _, t := range tags {
		if tr := ToTagResponse(t); tr != nil {
			responses = append(responses, *tr)
		}
	}
	return responses
}

// ToTemplateResponse converts a MeetingTemplate entity to its DTO
func ToTemplateResponse(t *entities.MeetingTemplate) *template.TemplateResponse {
	if t == nil {
		return nil
	}
	return &template.TemplateResponse{
		ID:              t.ID.String(),
		Name:            t.Name,
		Description:     t.Description,
		MeetingType:     t.MeetingType,
		TemplateContent: t.TemplateContent,
		IsDefault:       t.IsDefault,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTemplateListResponse converts a slice of MeetingTemplate entities to
// DTOs
func ToTemplateListResponse(templates []*entities.MeetingTemplate) []template.TemplateResponse {
	responses := make([]template.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		if tr := ToTemplateResponse(t); tr != nil {
			responses = append(responses, *tr)
		}
	}
	return responses
}
