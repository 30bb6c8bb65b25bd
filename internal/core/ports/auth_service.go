package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email         string
	Username      string
	Password      string
	FirstName     string
	LastName      string
	Role          string
	InstitutionID string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed access token. Unknown
	// username and wrong password fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
