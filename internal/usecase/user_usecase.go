// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a staff account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UserOutput is the client-facing projection of a staff account. The
// credential hash never leaves the usecase layer.
type UserOutput struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// LoginOutput returns the issued tokens after a successful login.
type LoginOutput struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         *UserOutput `json:"user"`
}

// UserUsecase defines the contract the delivery layer depends on for
// account registration and login.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*UserOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
