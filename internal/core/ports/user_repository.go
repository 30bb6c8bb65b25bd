package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

// UserRepository is the credential store consumed by the auth core. Uniqueness
// of email and username is enforced by the store (unique indexes); Insert
// surfaces violations as domain.ErrEmailTaken / domain.ErrUsernameTaken.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
