package entities

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a topical label attached to meetings. UsageCount tracks the number
// of distinct meetings linked to the tag; it is incremented exactly once per
// successful (non-duplicate) link and never decremented.
type Tag struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Color         *string   `json:"color,omitempty" gorm:"type:varchar(20)"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	UsageCount    int       `json:"usage_count" gorm:"not null;default:0"`
	IsAISuggested bool      `json:"is_ai_suggested" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// NewTag creates a new Tag entity
func NewTag(name string, aiSuggested bool) *Tag {
	return &Tag{
		ID:            uuid.New(),
		Name:          name,
		IsAISuggested: aiSuggested,
	}
}
