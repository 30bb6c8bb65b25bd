package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// InstitutionService implements institution CRUD. Reads are public; all
// mutations are admin-gated through the policy table.
type InstitutionService struct {
	repo ports.InstitutionRepository
	log  zerolog.Logger
}

func NewInstitutionService(repo ports.InstitutionRepository, log zerolog.Logger) *InstitutionService {
	return &InstitutionService{repo: repo, log: log}
}

func (s *InstitutionService) Create(ctx context.Context, caller *domain.Caller, in ports.InstitutionCreateInput) (*domain.Institution, error) {
	if err := domain.Decide(caller, domain.ResourceInstitution, domain.ActionCreate, ""); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, in.Name); err == nil {
		return nil, domain.ErrInstitutionExists
	} else if !errors.Is(err, domain.ErrInstitutionNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	inst := &domain.Institution{
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		ZipCode:   in.ZipCode,
		Phone:     in.Phone,
		Website:   in.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, inst)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("institution", created.Name).Str("by", caller.Username).Msg("institution created")
	return created, nil
}

func (s *InstitutionService) List(ctx context.Context, skip, limit int) ([]*domain.Institution, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *InstitutionService) Get(ctx context.Context, id string) (*domain.Institution, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InstitutionService) Update(ctx context.Context, caller *domain.Caller, id string, in ports.InstitutionUpdateInput) (*domain.Institution, error) {
	if err := domain.Decide(caller, domain.ResourceInstitution, domain.ActionUpdate, ""); err != nil {
		return nil, err
	}

	inst, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		inst.Name = *in.Name
	}
	if in.Address != nil {
		inst.Address = *in.Address
	}
	if in.City != nil {
		inst.City = *in.City
	}
	if in.State != nil {
		inst.State = *in.State
	}
	if in.Country != nil {
		inst.Country = *in.Country
	}
	if in.ZipCode != nil {
		inst.ZipCode = *in.ZipCode
	}
	if in.Phone != nil {
		inst.Phone = *in.Phone
	}
	if in.Website != nil {
		inst.Website = *in.Website
	}
	inst.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

func (s *InstitutionService) Delete(ctx context.Context, caller *domain.Caller, id string) error {
	if err := domain.Decide(caller, domain.ResourceInstitution, domain.ActionDelete, ""); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("institution_id", id).Str("by", caller.Username).Msg("institution deleted")
	return nil
}
