// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// RepeatedPassword must match Password exactly; the check happens server-side
// so that API clients get the same guarantee as interactive ones.
type RegisterInput struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
	Role             entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed access token together with the account's
// public identity after a successful registration or login.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
