package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors for the navigation domain. Services return these (wrapped
// with context where useful); the error handler middleware maps them to HTTP
// status codes so controllers can simply return them.
var (
	ErrEmptyQuery       = errors.New("query text is empty and no files are attached")
	ErrQueryInFlight    = errors.New("a query is already pending for this session")
	ErrNoPendingMessage = errors.New("no pending message to resolve")
	ErrSessionNotFound  = errors.New("chat session not found")
	ErrMessageNotFound  = errors.New("chat message not found in session")
	ErrEvidenceNotFound = errors.New("evidence item not found in catalog")
	ErrSaveConflict     = errors.New("a destination with this id is already saved")
	ErrQueryTimeout     = errors.New("answer backend did not respond in time")
	ErrQueryFailed      = errors.New("answer backend failed to produce a response")
)

var statusByError = map[error]int{
	ErrEmptyQuery:       fiber.StatusUnprocessableEntity,
	ErrQueryInFlight:    fiber.StatusConflict,
	ErrNoPendingMessage: fiber.StatusConflict,
	ErrSessionNotFound:  fiber.StatusNotFound,
	ErrMessageNotFound:  fiber.StatusNotFound,
	ErrEvidenceNotFound: fiber.StatusNotFound,
	ErrSaveConflict:     fiber.StatusConflict,
	ErrQueryTimeout:     fiber.StatusGatewayTimeout,
	ErrQueryFailed:      fiber.StatusBadGateway,
}

// StatusForError resolves the HTTP status for a domain error, defaulting to
// 500 for anything unrecognized.
func StatusForError(err error) int {
	for sentinel, status := range statusByError {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return fiber.StatusInternalServerError
}

// ValidationError carries field-level failures from request validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request validation failed on %d field(s)", len(e.Fields))
}
