package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type StudentCreateInput struct {
	UserID         string
	InstitutionID  string
	Grade          string
	EnrollmentYear int
	GraduationYear int
}

type StudentUpdateInput struct {
	Grade          *string
	EnrollmentYear *int
	GraduationYear *int
}

type StudentService interface {
	Create(ctx context.Context, caller *domain.Caller, in StudentCreateInput) (*domain.Student, error)
	List(ctx context.Context, skip, limit int, institutionID string) ([]*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, caller *domain.Caller, id string, in StudentUpdateInput) (*domain.Student, error)
	Delete(ctx context.Context, caller *domain.Caller, id string) error
}
