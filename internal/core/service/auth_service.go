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

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit, log: log}
}

// Register creates a new user account. Email uniqueness is checked before
// username so duplicate submissions fail with a deterministic message.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	email := strings.ToLower(in.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:         email,
		Username:      in.Username,
		PasswordHash:  hash,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Role:          in.Role,
		InstitutionID: in.InstitutionID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	s.audit.Record(domain.AuditEntry{
		Actor:    created.Username,
		Action:   "register",
		Resource: string(domain.ResourceUser),
		TargetID: created.ID,
		Outcome:  "ok",
	})
	return created, nil
}

// Login verifies credentials and returns a signed access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordLogin(username, "denied")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		s.recordLogin(username, "denied")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.recordLogin(user.Username, "ok")
	return token, nil
}

func (s *AuthService) recordLogin(username, outcome string) {
	s.audit.Record(domain.AuditEntry{
		Actor:    username,
		Action:   "login",
		Resource: string(domain.ResourceUser),
		Outcome:  outcome,
	})
}
