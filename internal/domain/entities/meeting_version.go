package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingVersion is an immutable snapshot of a meeting's editable fields,
// taken just before an update is applied. Version numbers are gapless and
// strictly increasing per meeting, starting at 1.
type MeetingVersion struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID     uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex:idx_meeting_version,priority:1"`
	VersionNumber int       `json:"version_number" gorm:"not null;uniqueIndex:idx_meeting_version,priority:2"`
	Title         string    `json:"title" gorm:"type:varchar(500);not null"`
	RawContent    string    `json:"raw_content" gorm:"type:text"`
	Summary       string    `json:"summary" gorm:"type:text"`
	Overview      string    `json:"overview" gorm:"type:text"`
	Discussion    string    `json:"discussion" gorm:"type:text"`
	Decisions     string    `json:"decisions" gorm:"type:text"`
	NextSteps     string    `json:"next_steps" gorm:"type:text"`
	ChangeSummary string    `json:"change_summary" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for MeetingVersion
func (MeetingVersion) TableName() string {
	return "meeting_versions"
}

// NewMeetingVersion snapshots the current state of a meeting. The version
// number is assigned by the version repository at insert time.
func NewMeetingVersion(m *Meeting, changeSummary string) *MeetingVersion {
	return &MeetingVersion{
		ID:            uuid.New(),
		MeetingID:     m.ID,
		Title:         m.Title,
		RawContent:    m.RawContent,
		Summary:       m.Summary,
		Overview:      m.Overview,
		Discussion:    m.Discussion,
		Decisions:     m.Decisions,
		NextSteps:     m.NextSteps,
		ChangeSummary: changeSummary,
	}
}
