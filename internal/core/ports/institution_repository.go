package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type InstitutionRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Institution, error)
	FindByName(ctx context.Context, name string) (*domain.Institution, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Institution, error)
	Insert(ctx context.Context, inst *domain.Institution) (*domain.Institution, error)
	Update(ctx context.Context, inst *domain.Institution) error
	Delete(ctx context.Context, id string) error
}
