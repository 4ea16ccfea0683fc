// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a credential.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required to verify a credential.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the registered username.
type RegisterOutput struct {
	Username string `json:"username"`
}

// LoginOutput is returned when the password verified.
type LoginOutput struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// AuthUsecase defines credential registration and verification.
// Unknown usernames and wrong passwords fail identically with ErrInvalidCredentials.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
