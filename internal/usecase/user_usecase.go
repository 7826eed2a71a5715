// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"cinelog/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in. Login is
// form-encoded on the wire, OAuth2 password-flow style.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's identity. The password hash
// never appears here.
type SignupOutput struct {
	User entity.Identity
}

// LoginOutput returns the minted bearer token after a successful login.
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserID      uuid.UUID `json:"user_id"`
}

// UserUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new user with a freshly hashed password.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Login exchanges credentials for a bearer token. Unknown username and
	// wrong password are indistinguishable in the returned error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Resolve recovers the caller's identity from a bearer token. It is the
	// precondition gate for every protected operation.
	Resolve(ctx context.Context, token string) (entity.Identity, error)
}
