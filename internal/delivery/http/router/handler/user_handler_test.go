package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"wholesale/internal/domain/entity"
	"wholesale/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(uc usecase.UserUsecase) *UserHandler {
	return NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUserHandler_Register_Success(t *testing.T) {
	var got *usecase.RegisterUserInput

	h := newTestUserHandler(&stubUserUsecase{
		register: func(_ context.Context, input *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
			got = input

			return &usecase.UserOutput{
				ID:    uuid.New(),
				Name:  input.Name,
				Email: input.Email,
				Role:  input.Role,
			}, nil
		},
	})

	body := `{
		"name": "Alice Nansubuga",
		"email": "alice@example.com",
		"password": "secret123",
		"role": "Manager"
	}`

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, entity.RoleManager, got.Role)

	respBody := decodeBody(t, rec)
	assert.Equal(t, true, respBody["success"])
	data, ok := respBody["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "passwordHash")
}

func TestUserHandler_Register_InvalidRole(t *testing.T) {
	h := newTestUserHandler(&stubUserUsecase{
		register: func(context.Context, *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
			t.Fatal("usecase must not be reached on validation failure")

			return nil, nil
		},
	})

	body := `{
		"name": "Alice Nansubuga",
		"email": "alice@example.com",
		"password": "secret123",
		"role": "Admin"
	}`

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fields := violationFieldSet(t, rec)
	assert.True(t, fields["role"])
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	h := newTestUserHandler(&stubUserUsecase{
		register: func(context.Context, *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
			t.Fatal("usecase must not be reached on validation failure")

			return nil, nil
		},
	})

	body := `{
		"name": "Alice Nansubuga",
		"email": "alice@example.com",
		"password": "abc",
		"role": "Manager"
	}`

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fields := violationFieldSet(t, rec)
	assert.True(t, fields["password"])
}

func TestUserHandler_Login_Success(t *testing.T) {
	h := newTestUserHandler(&stubUserUsecase{
		login: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "alice@example.com", input.Email)

			return &usecase.LoginOutput{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				User:         &usecase.UserOutput{ID: uuid.New(), Email: input.Email, Role: entity.RoleManager},
			}, nil
		},
	})

	body := `{"email": "alice@example.com", "password": "secret123"}`

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	respBody := decodeBody(t, rec)
	assert.Equal(t, true, respBody["success"])
	data, ok := respBody["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "access-token", data["accessToken"])
	assert.Equal(t, "refresh-token", data["refreshToken"])
}

func TestUserHandler_Login_MissingFields(t *testing.T) {
	h := newTestUserHandler(&stubUserUsecase{
		login: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
			t.Fatal("usecase must not be reached on validation failure")

			return nil, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fields := violationFieldSet(t, rec)
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}
