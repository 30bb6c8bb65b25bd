package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type ScoreRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Score, error)
	// List returns scores, optionally filtered by student id.
	List(ctx context.Context, skip, limit int, studentID string) ([]*domain.Score, error)
	Insert(ctx context.Context, sc *domain.Score) (*domain.Score, error)
	Update(ctx context.Context, sc *domain.Score) error
	Delete(ctx context.Context, id string) error
}
