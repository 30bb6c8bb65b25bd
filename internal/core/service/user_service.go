package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// UserService implements user CRUD behind the authorization policy.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, log: log}
}

func (s *UserService) List(ctx context.Context, caller *domain.Caller, skip, limit int) ([]*domain.User, error) {
	if err := domain.Decide(caller, domain.ResourceUser, domain.ActionList, ""); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, caller *domain.Caller, id string) (*domain.User, error) {
	if err := domain.Decide(caller, domain.ResourceUser, domain.ActionRead, id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Update merges in field by field onto the stored user. An email change is
// re-checked for uniqueness against the registration index.
func (s *UserService) Update(ctx context.Context, caller *domain.Caller, id string, in ports.UserUpdateInput) (*domain.User, error) {
	if err := domain.Decide(caller, domain.ResourceUser, domain.ActionUpdate, id); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(*in.Email)
		if email != user.Email {
			if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
				return nil, domain.ErrEmailTaken
			} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.InstitutionID != nil {
		user.InstitutionID = *in.InstitutionID
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, caller *domain.Caller, id string) error {
	if err := domain.Decide(caller, domain.ResourceUser, domain.ActionDelete, ""); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("by", caller.Username).Msg("user deleted")
	s.audit.Record(domain.AuditEntry{
		Actor:    caller.Username,
		Action:   string(domain.ActionDelete),
		Resource: string(domain.ResourceUser),
		TargetID: id,
		Outcome:  "ok",
	})
	return nil
}
