package ports

import (
	"context"
	"time"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type ScoreCreateInput struct {
	StudentID string
	Subject   string
	Value     float64
	MaxScore  float64
	Type      string
	Date      time.Time
	TeacherID string
	Comments  string
}

type ScoreUpdateInput struct {
	Value    *float64
	MaxScore *float64
	Comments *string
}

type ScoreService interface {
	Create(ctx context.Context, caller *domain.Caller, in ScoreCreateInput) (*domain.Score, error)
	List(ctx context.Context, caller *domain.Caller, skip, limit int, studentID string) ([]*domain.Score, error)
	Get(ctx context.Context, caller *domain.Caller, id string) (*domain.Score, error)
	Update(ctx context.Context, caller *domain.Caller, id string, in ScoreUpdateInput) (*domain.Score, error)
	Delete(ctx context.Context, caller *domain.Caller, id string) error
}
