// Package apperr carries the error taxonomy shared by services and HTTP
// handlers. Every error that reaches a handler is resolved to an AppError
// before it is written to the client.
package apperr

import (
	"errors"
	"net/http"
)

// AppError pairs a client-safe message with its HTTP status. Cause is for
// server-side logs only and is never serialised.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Validation is a 400 for missing or malformed input.
func Validation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, HTTPStatus: http.StatusBadRequest}
}

// Conflict is a 409 for uniqueness violations.
func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, HTTPStatus: http.StatusConflict}
}

// InvalidCredentials is a 401 that does not reveal which half of the credential was wrong.
func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid credentials", HTTPStatus: http.StatusUnauthorized}
}

// MissingToken is a 401 for requests without a bearer token.
func MissingToken() *AppError {
	return &AppError{Code: "MISSING_TOKEN", Message: "access denied, token not found", HTTPStatus: http.StatusUnauthorized}
}

// InvalidToken is a 403 for tokens that fail signature, structure or expiry checks.
func InvalidToken(cause error) *AppError {
	return &AppError{Code: "INVALID_TOKEN", Message: "invalid or expired token", HTTPStatus: http.StatusForbidden, Cause: cause}
}

// Forbidden is a 403 for authenticated callers lacking the required role.
func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, HTTPStatus: http.StatusForbidden}
}

// NotFound is a 404 for a named resource.
func NotFound(resource string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// RouteNotFound is the 404 for paths no handler serves.
func RouteNotFound() *AppError {
	return &AppError{Code: "NOT_FOUND", Message: "Route not found", HTTPStatus: http.StatusNotFound}
}

// MethodNotAllowed is a 405.
func MethodNotAllowed() *AppError {
	return &AppError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed", HTTPStatus: http.StatusMethodNotAllowed}
}

// RateLimited is a 429.
func RateLimited() *AppError {
	return &AppError{Code: "RATE_LIMITED", Message: "too many requests", HTTPStatus: http.StatusTooManyRequests}
}

// Internal is a 500 with a generic message; cause is kept for logging.
func Internal(cause error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: "internal server error", HTTPStatus: http.StatusInternalServerError, Cause: cause}
}

// As extracts the AppError from err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// From resolves any error to an AppError, escalating unknown ones to Internal.
func From(err error) *AppError {
	if ae := As(err); ae != nil {
		return ae
	}
	return Internal(err)
}
