package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// ScoreService implements assessment score CRUD. Reads require an
// authenticated caller; mutations follow the student gates.
type ScoreService struct {
	repo ports.ScoreRepository
	log  zerolog.Logger
}

func NewScoreService(repo ports.ScoreRepository, log zerolog.Logger) *ScoreService {
	return &ScoreService{repo: repo, log: log}
}

func (s *ScoreService) Create(ctx context.Context, caller *domain.Caller, in ports.ScoreCreateInput) (*domain.Score, error) {
	if err := domain.Decide(caller, domain.ResourceScore, domain.ActionCreate, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sc := &domain.Score{
		StudentID: in.StudentID,
		Subject:   in.Subject,
		Value:     in.Value,
		MaxScore:  in.MaxScore,
		Type:      domain.ScoreType(in.Type),
		Date:      in.Date,
		TeacherID: in.TeacherID,
		Comments:  in.Comments,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, sc)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("score_id", created.ID).Str("student_id", created.StudentID).Msg("score recorded")
	return created, nil
}

func (s *ScoreService) List(ctx context.Context, caller *domain.Caller, skip, limit int, studentID string) ([]*domain.Score, error) {
	if err := domain.Decide(caller, domain.ResourceScore, domain.ActionList, ""); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, skip, limit, studentID)
}

func (s *ScoreService) Get(ctx context.Context, caller *domain.Caller, id string) (*domain.Score, error) {
	if err := domain.Decide(caller, domain.ResourceScore, domain.ActionRead, ""); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ScoreService) Update(ctx context.Context, caller *domain.Caller, id string, in ports.ScoreUpdateInput) (*domain.Score, error) {
	if err := domain.Decide(caller, domain.ResourceScore, domain.ActionUpdate, ""); err != nil {
		return nil, err
	}

	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Value != nil {
		sc.Value = *in.Value
	}
	if in.MaxScore != nil {
		sc.MaxScore = *in.MaxScore
	}
	if in.Comments != nil {
		sc.Comments = *in.Comments
	}
	sc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *ScoreService) Delete(ctx context.Context, caller *domain.Caller, id string) error {
	if err := domain.Decide(caller, domain.ResourceScore, domain.ActionDelete, ""); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
