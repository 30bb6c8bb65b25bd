package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, repo *stubUserRepo, username, email, role string) *domain.User {
	t.Helper()
	created, err := repo.Insert(context.Background(), &domain.User{
		Email:    email,
		Username: username,
		Role:     role,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_List_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubRecorder{}, zerolog.Nop())
	seedUser(t, repo, "alice", "alice@example.com", domain.RoleStudent)

	admin := &domain.Caller{UserID: "99", Username: "root", Role: domain.RoleAdmin}
	if _, err := svc.List(context.Background(), admin, 0, 10); err != nil {
		t.Fatalf("admin list failed: %v", err)
	}

	student := &domain.Caller{UserID: "1", Username: "alice", Role: domain.RoleStudent}
	if _, err := svc.List(context.Background(), student, 0, 10); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.List(context.Background(), nil, 0, 10); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserService_Get_SelfAccess(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubRecorder{}, zerolog.Nop())
	u := seedUser(t, repo, "bob", "bob@example.com", domain.RoleStudent)
	other := seedUser(t, repo, "carla", "carla@example.com", domain.RoleStudent)

	self := &domain.Caller{UserID: u.ID, Username: u.Username, Role: u.Role}
	got, err := svc.Get(context.Background(), self, u.ID)
	if err != nil {
		t.Fatalf("self get failed: %v", err)
	}
	if got.Username != "bob" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.Get(context.Background(), self, other.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other record, got %v", err)
	}
}

func TestUserService_Update_PartialMerge(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubRecorder{}, zerolog.Nop())
	u := seedUser(t, repo, "dora", "dora@example.com", domain.RoleTeacher)
	u.FirstName = "Dora"
	u.LastName = "Smith"
	if err := repo.Update(context.Background(), u); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	self := &domain.Caller{UserID: u.ID, Username: u.Username, Role: u.Role}
	updated, err := svc.Update(context.Background(), self, u.ID, ports.UserUpdateInput{
		FirstName: strPtr("Dorothea"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Dorothea" {
		t.Fatalf("first name not updated: %s", updated.FirstName)
	}
	if updated.LastName != "Smith" {
		t.Fatalf("unset field should be untouched, got %s", updated.LastName)
	}
	if updated.Email != "dora@example.com" {
		t.Fatalf("unset email should be untouched, got %s", updated.Email)
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubRecorder{}, zerolog.Nop())
	u := seedUser(t, repo, "ed", "ed@example.com", domain.RoleTeacher)
	seedUser(t, repo, "fay", "fay@example.com", domain.RoleTeacher)

	self := &domain.Caller{UserID: u.ID, Username: u.Username, Role: u.Role}
	_, err := svc.Update(context.Background(), self, u.ID, ports.UserUpdateInput{
		Email: strPtr("FAY@example.com"),
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Re-submitting one's own email is not a conflict.
	if _, err := svc.Update(context.Background(), self, u.ID, ports.UserUpdateInput{
		Email: strPtr("ed@example.com"),
	}); err != nil {
		t.Fatalf("own email should not conflict: %v", err)
	}
}

func TestUserService_Delete_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubRecorder{}, zerolog.Nop())
	u := seedUser(t, repo, "gus", "gus@example.com", domain.RoleStudent)

	self := &domain.Caller{UserID: u.ID, Username: u.Username, Role: u.Role}
	if err := svc.Delete(context.Background(), self, u.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self delete should be forbidden, got %v", err)
	}

	admin := &domain.Caller{UserID: "99", Username: "root", Role: domain.RoleAdmin}
	if err := svc.Delete(context.Background(), admin, u.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user should be gone, got %v", err)
	}
}
