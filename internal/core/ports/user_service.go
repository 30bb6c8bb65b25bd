package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

// UserUpdateInput is an explicit partial-update shape: nil fields are left
// untouched, non-nil fields overwrite the stored value.
type UserUpdateInput struct {
	Email         *string
	FirstName     *string
	LastName      *string
	IsActive      *bool
	InstitutionID *string
}

type UserService interface {
	List(ctx context.Context, caller *domain.Caller, skip, limit int) ([]*domain.User, error)
	Get(ctx context.Context, caller *domain.Caller, id string) (*domain.User, error)
	Update(ctx context.Context, caller *domain.Caller, id string, in UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.Caller, id string) error
}
