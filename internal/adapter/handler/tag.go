package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	tagDTO "github.com/meetinglog-app/meetinglog/internal/adapter/dto/tag"
	"github.com/meetinglog-app/meetinglog/internal/adapter/presenter"
	tagUsecase "github.com/meetinglog-app/meetinglog/internal/usecase/tag"
)

// Tag handles tag HTTP requests
type Tag struct {
	tagService tagUsecase.Service
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService tagUsecase.Service) *Tag {
	return &Tag{
		tagService: tagService,
	}
}

// CreateTag handles POST /tags
func (h *Tag) CreateTag(c echo.Context) error {
	var req tagDTO.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	created, err := h.tagService.CreateTag(c.Request().Context(), tagUsecase.CreateTagInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToTagResponse(created))
}

// GetTag handles GET /tags/:id
func (h *Tag) GetTag(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	tag, err := h.tagService.GetTag(c.Request().Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTagResponse(tag))
}

// ListTags handles GET /tags
func (h *Tag) ListTags(c echo.Context) error {
	tags, err := h.tagService.ListTags(c.Request().Context())
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tags": presenter.ToTagListResponse(tags),
	})
}

// UpdateTag handles PUT /tags/:id
func (h *Tag) UpdateTag(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req tagDTO.UpdateTagRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	updated, err := h.tagService.UpdateTag(c.Request().Context(), id, tagUsecase.UpdateTagInput{
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTagResponse(updated))
}

// DeleteTag handles DELETE /tags/:id
func (h *Tag) DeleteTag(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	if err := h.tagService.DeleteTag(c.Request().Context(), id); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
