package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type StudentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	// List returns students ordered by creation time. institutionID is an
	// optional filter; empty means all institutions.
	List(ctx context.Context, skip, limit int, institutionID string) ([]*domain.Student, error)
	Insert(ctx context.Context, st *domain.Student) (*domain.Student, error)
	Update(ctx context.Context, st *domain.Student) error
	Delete(ctx context.Context, id string) error
}
