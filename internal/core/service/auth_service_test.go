package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, skip, limit int) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRecorder struct {
	entries []domain.AuditEntry
}

func (r *stubRecorder) Record(entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, NewPasswordHasher(), NewTokenService("secret", time.Hour), &stubRecorder{}, zerolog.Nop())
}

func registerInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Username:  username,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Role:      domain.RoleTeacher,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), registerInput("alice", "Alice@Example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if !user.IsActive {
		t.Fatalf("new accounts should be active")
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	in := registerInput("bob", "bob@example.com")
	in.Role = "superuser"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailWinsOverUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("carol", "carol@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same email AND same username: the email check runs first.
	if _, err := svc.Register(context.Background(), registerInput("carol", "carol@example.com")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Fresh email, taken username.
	if _, err := svc.Register(context.Background(), registerInput("carol", "other@example.com")); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("dave", "dave@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "dave", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "dave" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != domain.RoleTeacher {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("erin", "erin@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	_, unknownErr := svc.Login(context.Background(), "ghost", "password123")
	_, wrongErr := svc.Login(context.Background(), "erin", "wrong-password")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_RecordsAudit(t *testing.T) {
	repo := newStubUserRepo()
	rec := &stubRecorder{}
	svc := NewAuthService(repo, NewPasswordHasher(), NewTokenService("secret", time.Hour), rec, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput("frank", "frank@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "frank", "bad"); err == nil {
		t.Fatalf("expected login failure")
	}

	var denied bool
	for _, e := range rec.entries {
		if e.Action == "login" && e.Outcome == "denied" {
			denied = true
		}
	}
	if !denied {
		t.Fatalf("expected a denied login audit entry, got %+v", rec.entries)
	}
}
