// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"net/http"

	"wholesale/internal/delivery/http/middleware"
	"wholesale/internal/delivery/http/response"
	httpvalidator "wholesale/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// recordedBy pulls the authenticated identity the auth middleware attached
// to the request context.
func recordedBy(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// respondValidation writes the collected violations when err came from the
// rule set, and passes anything else through to the error middleware.
func respondValidation(c echo.Context, err error) error {
	var validationErr *httpvalidator.ValidationError
	if errors.As(err, &validationErr) {
		return response.ValidationFailed(c, validationErr.Violations)
	}

	return errors.WithStack(err)
}

// respondBindError shapes malformed request bodies. Type mismatches (a
// fractional tonnage, a string where a number belongs) are reported as a
// field violation so clients see them alongside rule violations.
func respondBindError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(httpErr.Internal, &typeErr) && typeErr.Field != "" {
			return response.ValidationFailed(c, []response.FieldError{{
				Field:   typeErr.Field,
				Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
			}})
		}
	}

	return response.BadRequest(c, "invalid request body")
}
