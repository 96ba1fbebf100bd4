package server

import (
	"fmt"
	"net/http"
)

// Client-facing messages
const (
	MessageInternal         = "Internal server error"
	MessageInvalidJSON      = "Request body must be valid JSON"
	MessageTextNotString    = "Text must be a string"
	MessageInvalidHistoryID = "Invalid history id"
	MessageHistoryNotFound  = "History item not found"
	MessageHistoryDeleted   = "History item deleted"
	MessageRouteNotFound    = "Route not found"
	MessageCORSDenied       = "Not allowed by CORS"
)

// HTTPError is an error with a status code and a message safe to show clients.
type HTTPError struct {
	Status  int
	Message string
	Cause   error
}

func (e *HTTPError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

func badRequest(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if e, ok := err.(*HTTPError); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}
