package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	searchDTO "github.com/meetinglog-app/meetinglog/internal/adapter/dto/search"
	searchUsecase "github.com/meetinglog-app/meetinglog/internal/usecase/search"
)

// Search handles natural-language search HTTP requests
type Search struct {
	searchService searchUsecase.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService searchUsecase.Service) *Search {
	return &Search{
		searchService: searchService,
	}
}

// Search handles POST /search
// @Summary      Ask a question over the meeting corpus
// @Tags         Search
// @Router       /search [post]
func (h *Search) Search(c echo.Context) error {
	var req searchDTO.SearchRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	result, err := h.searchService.Search(c.Request().Context(), req.Question)
	if err != nil {
		return respondUsecaseError(c, err)
	}

	related := make([]searchDTO.RelatedMeetingResponse, 0, len(result.RelatedMeetings))
	for _, m := range result.RelatedMeetings {
		related = append(related, searchDTO.RelatedMeetingResponse{
			ID:    m.ID.String(),
			Title: m.Title,
			Date:  time.Time(m.Date).Format("2006-01-02"),
		})
	}
	return c.JSON(http.StatusOK, searchDTO.SearchResponse{
		Answer:          result.Answer,
		RelatedMeetings: related,
	})
}
