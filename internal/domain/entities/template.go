package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingTemplate is a reusable outline passed to the summarize step as
// generation context.
type MeetingTemplate struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null"`
	Description     *string   `json:"description,omitempty" gorm:"type:text"`
	MeetingType     *string   `json:"meeting_type,omitempty" gorm:"type:varchar(50)"`
	TemplateContent string    `json:"template_content" gorm:"type:text;not null"`
	IsDefault       bool      `json:"is_default" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for MeetingTemplate
func (MeetingTemplate) TableName() string {
	return "meeting_templates"
}

// NewMeetingTemplate creates a new MeetingTemplate entity
func NewMeetingTemplate(name, content string) *MeetingTemplate {
	return &MeetingTemplate{
		ID:              uuid.New(),
		Name:            name,
		TemplateContent: content,
	}
}
