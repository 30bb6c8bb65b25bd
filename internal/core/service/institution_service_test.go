package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

type stubInstitutionRepo struct {
	insts  map[string]*domain.Institution
	nextID int
}

func newStubInstitutionRepo() *stubInstitutionRepo {
	return &stubInstitutionRepo{insts: make(map[string]*domain.Institution)}
}

func cloneInstitution(i *domain.Institution) *domain.Institution {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (r *stubInstitutionRepo) FindByID(_ context.Context, id string) (*domain.Institution, error) {
	if i, ok := r.insts[id]; ok {
		return cloneInstitution(i), nil
	}
	return nil, domain.ErrInstitutionNotFound
}

func (r *stubInstitutionRepo) FindByName(_ context.Context, name string) (*domain.Institution, error) {
	for _, i := range r.insts {
		if i.Name == name {
			return cloneInstitution(i), nil
		}
	}
	return nil, domain.ErrInstitutionNotFound
}

func (r *stubInstitutionRepo) List(_ context.Context, skip, limit int) ([]*domain.Institution, error) {
	out := make([]*domain.Institution, 0, len(r.insts))
	for _, i := range r.insts {
		out = append(out, cloneInstitution(i))
	}
	return out, nil
}

func (r *stubInstitutionRepo) Insert(_ context.Context, inst *domain.Institution) (*domain.Institution, error) {
	r.nextID++
	created := cloneInstitution(inst)
	created.ID = strconv.Itoa(r.nextID)
	r.insts[created.ID] = cloneInstitution(created)
	return created, nil
}

func (r *stubInstitutionRepo) Update(_ context.Context, inst *domain.Institution) error {
	if _, ok := r.insts[inst.ID]; !ok {
		return domain.ErrInstitutionNotFound
	}
	r.insts[inst.ID] = cloneInstitution(inst)
	return nil
}

func (r *stubInstitutionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.insts[id]; !ok {
		return domain.ErrInstitutionNotFound
	}
	delete(r.insts, id)
	return nil
}

func adminCaller() *domain.Caller {
	return &domain.Caller{UserID: "0", Username: "root", Role: domain.RoleAdmin}
}

func TestInstitutionService_Create_AdminOnly(t *testing.T) {
	svc := NewInstitutionService(newStubInstitutionRepo(), zerolog.Nop())

	in := ports.InstitutionCreateInput{Name: "Springfield High", City: "Springfield"}

	created, err := svc.Create(context.Background(), adminCaller(), in)
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if created.ID == "" || created.Name != "Springfield High" {
		t.Fatalf("unexpected institution: %+v", created)
	}

	teacher := &domain.Caller{UserID: "1", Username: "t", Role: domain.RoleTeacher}
	if _, err := svc.Create(context.Background(), teacher, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Create(context.Background(), nil, in); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestInstitutionService_Create_DuplicateName(t *testing.T) {
	svc := NewInstitutionService(newStubInstitutionRepo(), zerolog.Nop())

	in := ports.InstitutionCreateInput{Name: "Shelbyville Elementary"}
	if _, err := svc.Create(context.Background(), adminCaller(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), adminCaller(), in); !errors.Is(err, domain.ErrInstitutionExists) {
		t.Fatalf("expected ErrInstitutionExists, got %v", err)
	}
}

func TestInstitutionService_PublicReads(t *testing.T) {
	repo := newStubInstitutionRepo()
	svc := NewInstitutionService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminCaller(), ports.InstitutionCreateInput{Name: "Ogden Middle"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Reads take no caller at all.
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	all, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 institution, got %d", len(all))
	}
}

func TestInstitutionService_Update_PartialMerge(t *testing.T) {
	svc := NewInstitutionService(newStubInstitutionRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), adminCaller(), ports.InstitutionCreateInput{
		Name: "North Academy",
		City: "Portland",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	phone := "555-0100"
	updated, err := svc.Update(context.Background(), adminCaller(), created.ID, ports.InstitutionUpdateInput{
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != "555-0100" {
		t.Fatalf("phone not updated: %s", updated.Phone)
	}
	if updated.Name != "North Academy" || updated.City != "Portland" {
		t.Fatalf("unset fields should be untouched: %+v", updated)
	}
}

func TestInstitutionService_Delete_NotFound(t *testing.T) {
	svc := NewInstitutionService(newStubInstitutionRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), adminCaller(), "missing"); !errors.Is(err, domain.ErrInstitutionNotFound) {
		t.Fatalf("expected ErrInstitutionNotFound, got %v", err)
	}
}
