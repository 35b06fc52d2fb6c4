package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the wire shape of every failed request: an HTTP status code
// plus a JSON body carrying a success flag and a human-readable message.
// Messages are user-facing and may be localized (the web client renders
// them verbatim).
type APIError struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

func newAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Success: false, Message: message}
}

// Common error constructors

func NewBadRequestError(message string) *APIError {
	return newAPIError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *APIError {
	return newAPIError(http.StatusForbidden, message)
}

func NewNotFoundError(message string) *APIError {
	return newAPIError(http.StatusNotFound, message)
}

func NewConflictError(message string) *APIError {
	return newAPIError(http.StatusConflict, message)
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "Si è verificato un errore interno"
	}
	return newAPIError(http.StatusInternalServerError, message)
}

func NewServiceUnavailableError(message string) *APIError {
	return newAPIError(http.StatusServiceUnavailable, message)
}

func NewRateLimitError(retryAfter int) *APIError {
	return newAPIError(http.StatusTooManyRequests,
		fmt.Sprintf("Troppe richieste. Riprova tra %d secondi", retryAfter))
}
