package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	templateDTO "github.com/meetinglog-app/meetinglog/internal/adapter/dto/template"
	"github.com/meetinglog-app/meetinglog/internal/adapter/presenter"
	templateUsecase "github.com/meetinglog-app/meetinglog/internal/usecase/template"
)

// Template handles meeting template HTTP requests
type Template struct {
	templateService templateUsecase.Service
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService templateUsecase.Service) *Template {
	return &Template{
		templateService: templateService,
	}
}

// CreateTemplate handles POST /templates
func (h *Template) CreateTemplate(c echo.Context) error {
	var req templateDTO.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	created, err := h.templateService.CreateTemplate(c.Request().Context(), templateUsecase.CreateTemplateInput{
		Name:            req.Name,
		Description:     req.Description,
		MeetingType:     req.MeetingType,
		TemplateContent: req.TemplateContent,
		IsDefault:       req.IsDefault,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToTemplateResponse(created))
}

// GetTemplate handles GET /templates/:id
func (h *Template) GetTemplate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	template, err := h.templateService.GetTemplate(c.Request().Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTemplateResponse(template))
}

// ListTemplates handles GET /templates
func (h *Template) ListTemplates(c echo.Context) error {
	templates, err := h.templateService.ListTemplates(c.Request().Context())
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"templates": presenter.ToTemplateListResponse(templates),
	})
}

// UpdateTemplate handles PUT /templates/:id
func (h *Template) UpdateTemplate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req templateDTO.UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	updated, err := h.templateService.UpdateTemplate(c.Request().Context(), id, templateUsecase.UpdateTemplateInput{
		Name:            req.Name,
		Description:     req.Description,
		MeetingType:     req.MeetingType,
		TemplateContent: req.TemplateContent,
		IsDefault:       req.IsDefault,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTemplateResponse(updated))
}

// DeleteTemplate handles DELETE /templates/:id
func (h *Template) DeleteTemplate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	if err := h.templateService.DeleteTemplate(c.Request().Context(), id); err != nil {
		return respondUsecaseError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
