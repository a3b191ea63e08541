package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	meetingDTO "github.com/meetinglog-app/meetinglog/internal/adapter/dto/meeting"
	"github.com/meetinglog-app/meetinglog/internal/adapter/presenter"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	meetingUsecase "github.com/meetinglog-app/meetinglog/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service) *Meeting {
	return &Meeting{
		meetingService: meetingService,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Ingest a meeting
// @Description  Summarizes the raw content, parses sections, persists the meeting and enriches it with action items and tags
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  meeting.MeetingResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      502      {object}  map[string]interface{}  "Summarization failed"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return respondBindError(c, err)
	}
	templateID, err := parseOptionalUUID(derefOrEmpty(req.TemplateID))
	if err != nil {
		return respondBindError(c, err)
	}

	input := meetingUsecase.CreateMeetingInput{
		Title:        req.Title,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		MeetingType:  req.MeetingType,
		TemplateID:   templateID,
		Content:      req.Content,
		Participants: req.Participants,
	}

	created, err := h.meetingService.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToMeetingResponse(created))
}

// GetMeeting handles GET /meetings/:id
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	meeting, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(meeting))
}

// ListMeetings handles GET /meetings
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return respondBindError(c, err)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return respondBindError(c, err)
	}
	participantID, err := parseOptionalUUID(req.ParticipantID)
	if err != nil {
		return respondBindError(c, err)
	}
	tagID, err := parseOptionalUUID(req.TagID)
	if err != nil {
		return respondBindError(c, err)
	}

	filters := repositories.MeetingFilters{
		Search:        req.Search,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        req.Status,
		ParticipantID: participantID,
		TagID:         tagID,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	meetings, total, err := h.meetingService.ListMeetings(c.Request().Context(), filters)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(meetings, total, req.Page, req.PageSize))
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary      Update a meeting
// @Description  Snapshots the current state into the version history and applies the update
// @Tags         Meetings
// @Router       /meetings/{id} [put]
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req meetingDTO.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	var date *time.Time
	if req.Date != nil {
		date, err = parseOptionalDate(*req.Date)
		if err != nil {
			return respondBindError(c, err)
		}
	}

	input := meetingUsecase.UpdateMeetingInput{
		Title:         req.Title,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		MeetingType:   req.MeetingType,
		Status:        req.Status,
		Summary:       req.Summary,
		ChangeSummary: req.ChangeSummary,
	}

	updated, err := h.meetingService.UpdateMeeting(c.Request().Context(), id, input)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(updated))
}

// DeleteMeeting handles DELETE /meetings/:id
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetVersionHistory handles GET /meetings/:id/versions
func (h *Meeting) GetVersionHistory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	versions, err := h.meetingService.GetVersionHistory(c.Request().Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"versions": presenter.ToVersionListResponse(versions),
	})
}

// RestoreVersion handles POST /meetings/:id/restore
// @Summary      Restore a version
// @Description  Re-applies a snapshot as a new version on top of the history
// @Tags         Meetings
// @Router       /meetings/{id}/restore [post]
func (h *Meeting) RestoreVersion(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req meetingDTO.RestoreVersionRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	restored, err := h.meetingService.RestoreVersion(c.Request().Context(), id, req.VersionNumber)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(restored))
}

// derefOrEmpty returns the pointed-to string or ""
func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
