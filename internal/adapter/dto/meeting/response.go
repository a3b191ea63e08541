package meeting

import "time"

// ParticipantResponse is a participant in API responses
type ParticipantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagResponse is a tag attached to a meeting in API responses
type TagResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Color         *string  `json:"color,omitempty"`
	Confidence    *float64 `json:"confidence,omitempty"`
	IsAISuggested bool     `json:"is_ai_suggested"`
}

// ActionItemResponse is an action item in API responses
type ActionItemResponse struct {
	ID             string               `json:"id"`
	MeetingID      string               `json:"meeting_id"`
	Description    string               `json:"description"`
	Assignee       *ParticipantResponse `json:"assignee,omitempty"`
	Priority       string               `json:"priority"`
	Status         string               `json:"status"`
	DueDate        *string              `json:"due_date,omitempty"`
	CompletionDate *time.Time           `json:"completion_date,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// MeetingResponse is a fully hydrated meeting in API responses
type MeetingResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Date         string                `json:"date"`
	StartTime    *string               `json:"start_time,omitempty"`
	EndTime      *string               `json:"end_time,omitempty"`
	Location     *string               `json:"location,omitempty"`
	MeetingType  *string               `json:"meeting_type,omitempty"`
	TemplateID   *string               `json:"template_id,omitempty"`
	RawContent   string                `json:"raw_content"`
	Summary      string                `json:"summary"`
	Overview     string                `json:"overview"`
	Discussion   string                `json:"discussion"`
	Decisions    string                `json:"decisions"`
	NextSteps    string                `json:"next_steps"`
	Status       string                `json:"status"`
	Participants []ParticipantResponse `json:"participants"`
	Tags         []TagResponse         `json:"tags"`
	ActionItems  []ActionItemResponse  `json:"action_items"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ListMeetingsResponse wraps a page of meetings
type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// VersionResponse is one entry of a meeting's version history
type VersionResponse struct {
	ID            string    `json:"id"`
	MeetingID     string    `json:"meeting_id"`
	VersionNumber int       `json:"version_number"`
	Title         string    `json:"title"`
	RawContent    string    `json:"raw_content"`
	Summary       string    `json:"summary"`
	Overview      string    `json:"overview"`
	Discussion    string    `json:"discussion"`
	Decisions     string    `json:"decisions"`
	NextSteps     string    `json:"next_steps"`
	ChangeSummary string    `json:"change_summary"`
	CreatedAt     time.Time `json:"created_at"`
}
