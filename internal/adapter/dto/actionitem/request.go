package actionitem

// CreateActionItemRequest represents the request body for creating an
// action item. meeting_id is optional; items without one are attached to
// the latest meeting.
type CreateActionItemRequest struct {
	MeetingID   *string `json:"meeting_id,omitempty" validate:"omitempty,uuid"`
	Description string  `json:"description" validate:"required"`
	Assignee    *string `json:"assignee,omitempty" validate:"omitempty,max=255"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateActionItemRequest represents the request body for updating an
// action item. Omitted fields are left unchanged.
type UpdateActionItemRequest struct {
	Description *string `json:"description,omitempty"`
	Assignee    *string `json:"assignee,omitempty" validate:"omitempty,max=255"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty"`
}

// ListActionItemsRequest represents query parameters for listing action
// items
type ListActionItemsRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	AssigneeID string `query:"assignee_id" validate:"omitempty,uuid"`
	Priority   string `query:"priority" validate:"omitempty,oneof=high medium low"`
	MeetingID  string `query:"meeting_id" validate:"omitempty,uuid"`
	Overdue    bool   `query:"overdue"`
}

// SummaryResponse reports action item counts by status plus overdue
type SummaryResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Overdue    int64 `json:"overdue"`
}
