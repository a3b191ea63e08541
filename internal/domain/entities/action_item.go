package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionItemPriority constants
const (
	ActionItemPriorityHigh   = "high"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityLow    = "low"
)

// ActionItemStatus constants
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in_progress"
	ActionItemStatusCompleted  = "completed"
	ActionItemStatusCancelled  = "cancelled"
)

// ActionItem is a task derived from a meeting or created directly. Every
// item belongs to exactly one meeting; CompletionDate is set exactly when
// the status transitions to completed.
type ActionItem struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID      uuid.UUID       `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Meeting        *Meeting        `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
	Description    string          `json:"description" gorm:"type:text;not null"`
	AssigneeID     *uuid.UUID      `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	Assignee       *Participant    `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Priority       string          `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	Status         string          `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	DueDate        *datatypes.Date `json:"due_date,omitempty"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Notes          *string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a new ActionItem entity
func NewActionItem(meetingID uuid.UUID, description string) *ActionItem {
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Priority:    ActionItemPriorityMedium,
		Status:      ActionItemStatusPending,
	}
}

// IsValidActionItemStatus reports whether s is a known status
func IsValidActionItemStatus(s string) bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted, ActionItemStatusCancelled:
		return true
	}
	return false
}

// IsValidActionItemPriority reports whether p is a known priority
func IsValidActionItemPriority(p string) bool {
	switch p {
	case ActionItemPriorityHigh, ActionItemPriorityMedium, ActionItemPriorityLow:
		return true
	}
	return false
}

// IsOverdue reports whether the item is past its due date and not completed
func (a *ActionItem) IsOverdue(today time.Time) bool {
	if a.DueDate == nil || a.Status == ActionItemStatusCompleted {
		return false
	}
	due := time.Time(*a.DueDate)
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return due.Before(midnight)
}
