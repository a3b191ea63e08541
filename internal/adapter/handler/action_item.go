package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	actionitemDTO "github.com/meetinglog-app/meetinglog/internal/adapter/dto/actionitem"
	"github.com/meetinglog-app/meetinglog/internal/adapter/presenter"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	actionitemUsecase "github.com/meetinglog-app/meetinglog/internal/usecase/actionitem"
)

// ActionItem handles action item HTTP requests
type ActionItem struct {
	actionItemService actionitemUsecase.Service
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(actionItemService actionitemUsecase.Service) *ActionItem {
	return &ActionItem{
		actionItemService: actionItemService,
	}
}

// CreateActionItem handles POST /action-items
func (h *ActionItem) CreateActionItem(c echo.Context) error {
	var req actionitemDTO.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	meetingID, err := parseOptionalUUID(derefOrEmpty(req.MeetingID))
	if err != nil {
		return respondBindError(c, err)
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		dueDate, err = parseOptionalDate(*req.DueDate)
		if err != nil {
			return respondBindError(c, err)
		}
	}

	input := actionitemUsecase.CreateActionItemInput{
		MeetingID:   meetingID,
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Notes:       req.Notes,
	}

	created, err := h.actionItemService.CreateActionItem(c.Request().Context(), input)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToActionItemResponse(created))
}

// GetActionItem handles GET /action-items/:id
func (h *ActionItem) GetActionItem(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	item, err := h.actionItemService.GetActionItem(c.Request().Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToActionItemResponse(item))
}

// ListActionItems handles GET /action-items
func (h *ActionItem) ListActionItems(c echo.Context) error {
	var req actionitemDTO.ListActionItemsRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	assigneeID, err := parseOptionalUUID(req.AssigneeID)
	if err != nil {
		return respondBindError(c, err)
	}
	meetingID, err := parseOptionalUUID(req.MeetingID)
	if err != nil {
		return respondBindError(c, err)
	}

	filters := repositories.ActionItemFilters{
		Status:      req.Status,
		AssigneeID:  assigneeID,
		Priority:    req.Priority,
		MeetingID:   meetingID,
		OverdueOnly: req.Overdue,
	}

	items, err := h.actionItemService.ListActionItems(c.Request().Context(), filters)
	if err != nil {
		return respondUsecaseError(c, err)
	}

	responses := make([]interface{}, 0, len(items))
	for _, item := range items {
		responses = append(responses, presenter.ToActionItemResponse(item))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"action_items": responses,
	})
}

// UpdateActionItem handles PUT /action-items/:id
func (h *ActionItem) UpdateActionItem(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req actionitemDTO.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		dueDate, err = parseOptionalDate(*req.DueDate)
		if err != nil {
			return respondBindError(c, err)
		}
	}

	input := actionitemUsecase.UpdateActionItemInput{
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     dueDate,
		Notes:       req.Notes,
	}

	updated, err := h.actionItemService.UpdateActionItem(c.Request().Context(), id, input)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToActionItemResponse(updated))
}

// DeleteActionItem handles DELETE /action-items/:id
func (h *ActionItem) DeleteActionItem(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	if err := h.actionItemService.DeleteActionItem(c.Request().Context(), id); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSummary handles GET /action-items/summary
func (h *ActionItem) GetSummary(c echo.Context) error {
	summary, err := h.actionItemService.GetSummary(c.Request().Context())
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, actionitemDTO.SummaryResponse{
		Total:      summary.Total,
		Pending:    summary.Pending,
		InProgress: summary.InProgress,
		Completed:  summary.Completed,
		Cancelled:  summary.Cancelled,
		Overdue:    summary.Overdue,
	})
}
