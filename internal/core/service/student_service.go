package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// StudentService implements student enrollment CRUD. Reads are public;
// create/update require teacher or admin, delete requires admin.
type StudentService struct {
	repo  ports.StudentRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, audit ports.AuditRecorder, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, audit: audit, log: log}
}

func (s *StudentService) Create(ctx context.Context, caller *domain.Caller, in ports.StudentCreateInput) (*domain.Student, error) {
	if err := domain.Decide(caller, domain.ResourceStudent, domain.ActionCreate, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	st := &domain.Student{
		UserID:         in.UserID,
		InstitutionID:  in.InstitutionID,
		Grade:          in.Grade,
		EnrollmentYear: in.EnrollmentYear,
		GraduationYear: in.GraduationYear,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Insert(ctx, st)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("student_id", created.ID).Str("by", caller.Username).Msg("student created")
	return created, nil
}

func (s *StudentService) List(ctx context.Context, skip, limit int, institutionID string) ([]*domain.Student, error) {
	return s.repo.List(ctx, skip, limit, institutionID)
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, caller *domain.Caller, id string, in ports.StudentUpdateInput) (*domain.Student, error) {
	if err := domain.Decide(caller, domain.ResourceStudent, domain.ActionUpdate, ""); err != nil {
		return nil, err
	}

	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Grade != nil {
		st.Grade = *in.Grade
	}
	if in.EnrollmentYear != nil {
		st.EnrollmentYear = *in.EnrollmentYear
	}
	if in.GraduationYear != nil {
		st.GraduationYear = *in.GraduationYear
	}
	st.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudentService) Delete(ctx context.Context, caller *domain.Caller, id string) error {
	if err := domain.Decide(caller, domain.ResourceStudent, domain.ActionDelete, ""); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(domain.AuditEntry{
		Actor:    caller.Username,
		Action:   string(domain.ActionDelete),
		Resource: string(domain.ResourceStudent),
		TargetID: id,
		Outcome:  "ok",
	})
	return nil
}
