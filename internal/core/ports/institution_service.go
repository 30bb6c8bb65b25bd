package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type InstitutionCreateInput struct {
	Name    string
	Address string
	City    string
	State   string
	Country string
	ZipCode string
	Phone   string
	Website string
}

type InstitutionUpdateInput struct {
	Name    *string
	Address *string
	City    *string
	State   *string
	Country *string
	ZipCode *string
	Phone   *string
	Website *string
}

type InstitutionService interface {
	Create(ctx context.Context, caller *domain.Caller, in InstitutionCreateInput) (*domain.Institution, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Institution, error)
	Get(ctx context.Context, id string) (*domain.Institution, error)
	Update(ctx context.Context, caller *domain.Caller, id string, in InstitutionUpdateInput) (*domain.Institution, error)
	Delete(ctx context.Context, caller *domain.Caller, id string) error
}
