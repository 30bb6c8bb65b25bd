package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// ValidRole reports whether s is one of the fixed role values.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleTeacher || s == RoleStudent
}

// User models an authenticated actor in the platform.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	InstitutionID string    `json:"institution_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TokenClaims is the identity payload carried inside an access token.
// Produced at login, reconstructed on every verified request, never persisted.
type TokenClaims struct {
	Subject   string // username
	UserID    string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
