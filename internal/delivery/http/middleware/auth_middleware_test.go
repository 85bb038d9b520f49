package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wholesale/internal/domain/entity"
	"wholesale/internal/domain/service"
	mockService "wholesale/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached
}

func TestAuthenticate_Success(t *testing.T) {
	userID := uuid.New()
	tokenSvc := new(mockService.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "valid-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleManager, Type: "access"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		assert.Equal(t, userID, c.Get(ContextKeyUserID))
		assert.Equal(t, entity.RoleManager, c.Get(ContextKeyRole))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)

	rec, reached := runAuthenticated(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "authorization header is missing")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)

	rec, reached := runAuthenticated(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	tokenSvc.AssertNotCalled(t, "ValidateAccessToken", mock.Anything)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "bad-token").Return(nil, errors.New("token expired"))

	rec, reached := runAuthenticated(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestRequireRole_Allowed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRole, entity.RoleManager)

	m := NewAuthMiddleware(new(mockService.MockTokenService))
	handler := m.RequireRole(entity.RoleManager)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Denied(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRole, entity.RoleSalesAgent)

	m := NewAuthMiddleware(new(mockService.MockTokenService))
	handler := m.RequireRole(entity.RoleManager)(func(c echo.Context) error {
		t.Fatal("handler must not be reached")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "SalesAgent")
}

func TestRequireRole_MissingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(new(mockService.MockTokenService))
	handler := m.RequireRole(entity.RoleManager)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
