package meeting

// CreateMeetingRequest represents the request body for creating a meeting
type CreateMeetingRequest struct {
	Title        string   `json:"title" validate:"required,max=500"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    *string  `json:"start_time,omitempty" validate:"omitempty,max=10"`
	EndTime      *string  `json:"end_time,omitempty" validate:"omitempty,max=10"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	MeetingType  *string  `json:"meeting_type,omitempty" validate:"omitempty,max=50"`
	TemplateID   *string  `json:"template_id,omitempty" validate:"omitempty,uuid"`
	Content      string   `json:"content" validate:"required"`
	Participants []string `json:"participants,omitempty" validate:"omitempty,dive,max=255"`
}

// UpdateMeetingRequest represents the request body for updating a meeting.
// Omitted fields are left unchanged; raw content cannot be updated.
type UpdateMeetingRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=500"`
	Date          *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"start_time,omitempty" validate:"omitempty,max=10"`
	EndTime       *string `json:"end_time,omitempty" validate:"omitempty,max=10"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=255"`
	MeetingType   *string `json:"meeting_type,omitempty" validate:"omitempty,max=50"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	Summary       *string `json:"summary,omitempty"`
	ChangeSummary string  `json:"change_summary,omitempty" validate:"omitempty,max=500"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Search        string `query:"search"`
	StartDate     string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status        string `query:"status" validate:"omitempty,oneof=active archived"`
	ParticipantID string `query:"participant_id" validate:"omitempty,uuid"`
	TagID         string `query:"tag_id" validate:"omitempty,uuid"`
	Page          int    `query:"page" validate:"omitempty,min=1"`
	PageSize      int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// RestoreVersionRequest represents the request body for restoring a version
type RestoreVersionRequest struct {
	VersionNumber int `json:"version_number" validate:"required,min=1"`
}

// LinkParticipantRequest represents the request body for attaching a named
// participant to a meeting
type LinkParticipantRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// LinkTagRequest represents the request body for attaching a named tag to a
// meeting
type LinkTagRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
}
