package entities

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a named person that can be linked to meetings and assigned
// action items. Resolution is keyed on exact-match name; rows are created
// lazily by the entity resolver and never deleted by the pipeline.
type Participant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// NewParticipant creates a new Participant entity
func NewParticipant(name string) *Participant {
	return &Participant{
		ID:   uuid.New(),
		Name: name,
	}
}
