package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HS256-signed access tokens. The signing
// secret is set once at construction and never rotated in-process.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the user's identity claims, valid for the
// configured TTL. Issuance consults no revocation state: the token stays
// valid until expiry regardless of later account changes.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Expiry yields
// domain.ErrTokenExpired; a bad signature, malformed structure, or missing
// claim yields domain.ErrTokenInvalid. There is no partial acceptance.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	exp, _ := claims["exp"].(float64)
	if sub == "" || userID == "" || role == "" || exp == 0 {
		return nil, domain.ErrTokenInvalid
	}

	tc := &domain.TokenClaims{
		Subject:   sub,
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Unix(int64(exp), 0).UTC(),
	}
	if iat, ok := claims["iat"].(float64); ok {
		tc.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	return tc, nil
}
