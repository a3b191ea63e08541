package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingStatus represents the lifecycle status of a meeting record
type MeetingStatus string

const (
	MeetingStatusActive   MeetingStatus = "active"
	MeetingStatusArchived MeetingStatus = "archived"
)

// Meeting is the persisted structured representation of one meeting.
//
// RawContent is the verbatim user input and is written once at creation.
// Summary holds the full generated narrative; the four section fields are
// always derived from Summary via the section parser and are only ever
// recomputed together.
type Meeting struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"type:varchar(500);not null"`
	Date        datatypes.Date `json:"date" gorm:"not null;index"`
	StartTime   *string        `json:"start_time,omitempty" gorm:"type:varchar(10)"`
	EndTime     *string        `json:"end_time,omitempty" gorm:"type:varchar(10)"`
	Location    *string        `json:"location,omitempty" gorm:"type:varchar(255)"`
	MeetingType *string        `json:"meeting_type,omitempty" gorm:"type:varchar(50)"`
	TemplateID  *uuid.UUID     `json:"template_id,omitempty" gorm:"type:uuid"`
	RawContent  string         `json:"raw_content" gorm:"type:text;not null"`
	Summary     string         `json:"summary" gorm:"type:text"`
	Overview    string         `json:"overview" gorm:"type:text"`
	Discussion  string         `json:"discussion" gorm:"type:text"`
	Decisions   string         `json:"decisions" gorm:"type:text"`
	NextSteps   string         `json:"next_steps" gorm:"type:text"`
	Status      MeetingStatus  `json:"status" gorm:"type:varchar(20);default:'active';index"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	Participants []*Participant `json:"participants,omitempty" gorm:"many2many:meeting_participants;"`
	Tags         []MeetingTag   `json:"tags,omitempty" gorm:"foreignKey:MeetingID"`
	ActionItems  []ActionItem   `json:"action_items,omitempty" gorm:"foreignKey:MeetingID"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new Meeting entity
func NewMeeting(title string, date time.Time, rawContent string) *Meeting {
	return &Meeting{
		ID:         uuid.New(),
		Title:      title,
		Date:       datatypes.Date(date),
		RawContent: rawContent,
		Status:     MeetingStatusActive,
	}
}
