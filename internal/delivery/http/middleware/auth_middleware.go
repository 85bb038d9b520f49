// Package middleware contains the HTTP middleware chain: authentication,
// authorization and error shaping.
package middleware

import (
	"strings"

	"wholesale/internal/delivery/http/response"
	"wholesale/internal/domain/entity"
	"wholesale/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is attached for
// downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches the resolved identity
// to the request context. It runs before any validation: a request without a
// valid credential never reaches the rule set.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "invalid token format, must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "invalid or expired token")
		}

		// Attach identity for handlers to use as recordedBy.
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role against
// an allow-list. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "permission denied: role information missing")
			}

			if !entity.Roles(allowed).Contains(role) {
				return response.Forbidden(c, "permission denied: role '"+role.String()+"' may not perform this operation")
			}

			return next(c)
		}
	}
}
