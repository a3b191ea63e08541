package entities

import (
	"github.com/google/uuid"
)

// MeetingParticipant is the meeting↔participant association row. Duplicate
// link attempts are no-ops, enforced by the unique pair constraint.
type MeetingParticipant struct {
	MeetingID     uuid.UUID `json:"meeting_id" gorm:"type:uuid;primaryKey"`
	ParticipantID uuid.UUID `json:"participant_id" gorm:"type:uuid;primaryKey"`
}

// TableName specifies the table name for MeetingParticipant
func (MeetingParticipant) TableName() string {
	return "meeting_participants"
}

// MeetingTag is the meeting↔tag association row. Confidence is the
// generation capability's reported score in [0,1]; user-attached tags carry
// 1.0.
type MeetingTag struct {
	MeetingID  uuid.UUID `json:"meeting_id" gorm:"type:uuid;primaryKey"`
	TagID      uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey"`
	Tag        *Tag      `json:"tag,omitempty" gorm:"foreignKey:TagID"`
	Confidence float64   `json:"confidence" gorm:"not null;default:1.0"`
}

// TableName specifies the table name for MeetingTag
func (MeetingTag) TableName() string {
	return "meeting_tags"
}
