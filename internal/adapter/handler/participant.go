package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	meetingDTO "github.com/meetinglog-app/meetinglog/internal/adapter/dto/meeting"
	"github.com/meetinglog-app/meetinglog/internal/adapter/presenter"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	"github.com/meetinglog-app/meetinglog/internal/usecase/resolver"
)

// Participant handles participant listing and the resolve-and-link
// endpoints for meetings
type Participant struct {
	resolverService resolver.Service
	participantRepo repositories.ParticipantRepository
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(resolverService resolver.Service, participantRepo repositories.ParticipantRepository) *Participant {
	return &Participant{
		resolverService: resolverService,
		participantRepo: participantRepo,
	}
}

// ListParticipants handles GET /participants
func (h *Participant) ListParticipants(c echo.Context) error {
	participants, err := h.participantRepo.List(c.Request().Context())
	if err != nil {
		return respondUsecaseError(c, err)
	}

	responses := make([]meetingDTO.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		if pr := presenter.ToParticipantResponse(p); pr != nil {
			responses = append(responses, *pr)
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"participants": responses,
	})
}

// LinkParticipant handles POST /meetings/:id/participants
func (h *Participant) LinkParticipant(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req meetingDTO.LinkParticipantRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	participant, err := h.resolverService.LinkParticipant(c.Request().Context(), meetingID, req.Name)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToParticipantResponse(participant))
}

// LinkTag handles POST /meetings/:id/tags
func (h *Participant) LinkTag(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return respondBindError(c, err)
	}

	var req meetingDTO.LinkTagRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationError(c, err)
	}

	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	tag, err := h.resolverService.LinkTag(c.Request().Context(), meetingID, req.Name, confidence, false)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTagResponse(tag))
}
