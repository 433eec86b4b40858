package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation: the caller supplied empty or malformed arguments.
func Validation(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// Conflict: a state precondition does not hold (election open/closed etc).
func Conflict(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

// NotFound: a lookup matched no rows.
func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Server: storage-layer failure not attributable to caller input.
func Server(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusInternalServerError}
}

// StatusCode extracts the http status carried by err, defaulting to 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsValidation(err error) bool { return StatusCode(err) == http.StatusBadRequest }
func IsConflict(err error) bool   { return StatusCode(err) == http.StatusConflict }
func IsNotFound(err error) bool   { return StatusCode(err) == http.StatusNotFound }
func IsServer(err error) bool     { return StatusCode(err) == http.StatusInternalServerError }
