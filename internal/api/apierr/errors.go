package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gungle/gungle/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
	CodeFirearmNotFound      = "FIREARM_NOT_FOUND"
	CodeFirearmExists        = "FIREARM_EXISTS"
	CodeGameAlreadyCompleted = "GAME_ALREADY_COMPLETED"
	CodeMaxGuessesReached    = "MAX_GUESSES_REACHED"
	CodeGameNotCompleted     = "GAME_NOT_COMPLETED"
	CodeEmptyCatalog         = "EMPTY_CATALOG"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Game session not found"}}
	case errors.Is(err, model.ErrFirearmNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeFirearmNotFound, "Firearm not found"}}
	case errors.Is(err, model.ErrFirearmExists):
		return &httpError{http.StatusConflict, APIError{CodeFirearmExists, "Firearm already exists"}}
	case errors.Is(err, model.ErrGameAlreadyCompleted):
		return &httpError{http.StatusBadRequest, APIError{CodeGameAlreadyCompleted, "Game already completed"}}
	case errors.Is(err, model.ErrMaxGuessesReached):
		return &httpError{http.StatusBadRequest, APIError{CodeMaxGuessesReached, "Maximum guesses reached"}}
	case errors.Is(err, model.ErrGameNotCompleted):
		return &httpError{http.StatusBadRequest, APIError{CodeGameNotCompleted, "Game not yet completed"}}
	case errors.Is(err, model.ErrEmptyCatalog):
		return &httpError{http.StatusInternalServerError, APIError{CodeEmptyCatalog, "No firearms available for game"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
