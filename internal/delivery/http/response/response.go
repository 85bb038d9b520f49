// Package response defines the unified API response envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// FieldError names a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DataResponse is the envelope for single-record responses.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ListResponse is the envelope for collection responses.
type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope for single-error responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationResponse is the envelope for field-level validation failures.
type ValidationResponse struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}

// Success writes a single-record success response.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataResponse{
		Success: true,
		Data:    data,
	})
}

// List writes a collection success response with its count.
func List(c echo.Context, count int, data any) error {
	return c.JSON(http.StatusOK, ListResponse{
		Success: true,
		Count:   count,
		Data:    data,
	})
}

// Error writes a single-error response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// ValidationFailed writes the full list of field violations. Nothing was
// persisted when this response is produced.
func ValidationFailed(c echo.Context, violations []FieldError) error {
	return c.JSON(http.StatusBadRequest, ValidationResponse{
		Success: false,
		Errors:  violations,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
