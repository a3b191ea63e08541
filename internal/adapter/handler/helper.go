package handler

import (
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/meetinglog-app/meetinglog/errors"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
)

// respondAppError sends an AppError with its HTTP status, stamping the
// response time
func respondAppError(c echo.Context, appErr errors.AppError) error {
	appErr.Timestamp = time.Now()
	return c.JSON(appErr.HTTPCode, appErr)
}

// respondUsecaseError maps usecase errors onto HTTP responses
func respondUsecaseError(c echo.Context, err error) error {
	var genErr *usecaseErrors.GenerationError
	if stdErrors.As(err, &genErr) {
		return respondAppError(c, errors.ErrGenerationFailed(genErr.Step, genErr.Err))
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, usecaseErrors.ErrInvalidStatus),
		stdErrors.Is(err, usecaseErrors.ErrInvalidPriority):
		return respondAppError(c, errors.ErrValidation(err.Error()))
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return respondAppError(c, errors.ErrNotFound("meeting"))
	case stdErrors.Is(err, usecaseErrors.ErrVersionNotFound):
		return respondAppError(c, errors.ErrNotFound("version"))
	case stdErrors.Is(err, usecaseErrors.ErrParticipantNotFound):
		return respondAppError(c, errors.ErrNotFound("participant"))
	case stdErrors.Is(err, usecaseErrors.ErrTagNotFound):
		return respondAppError(c, errors.ErrNotFound("tag"))
	case stdErrors.Is(err, usecaseErrors.ErrTemplateNotFound):
		return respondAppError(c, errors.ErrNotFound("template"))
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return respondAppError(c, errors.ErrNotFound("action item"))
	case stdErrors.Is(err, usecaseErrors.ErrConflict):
		return respondAppError(c, errors.ErrConflict("resource", err))
	}
	return respondAppError(c, errors.ErrInternal(err))
}

// respondBindError reports a malformed request body or parameter
func respondBindError(c echo.Context, err error) error {
	return respondAppError(c, errors.ErrValidation(err.Error()))
}

// respondValidationError reports a failed request validation
func respondValidationError(c echo.Context, err error) error {
	return respondAppError(c, errors.ErrValidation(err.Error()))
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// parseOptionalUUID parses a UUID string, returning nil for empty input
func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseOptionalDate parses a YYYY-MM-DD string, returning nil for empty
// input
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
