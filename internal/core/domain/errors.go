package domain

import "errors"

// Authentication and token errors.
var (
	// ErrInvalidCredentials covers both "user not found" and "wrong password"
	// at login so the response cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrHashFormat         = errors.New("malformed password hash")
)

// Authorization errors.
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("not enough permissions")
)

// Resource errors.
var (
	ErrInvalidRole         = errors.New("role must be admin, teacher or student")
	ErrEmailTaken          = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrInstitutionExists   = errors.New("institution with this name already exists")
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrStudentExists       = errors.New("student already enrolled")
	ErrStudentNotFound     = errors.New("student not found")
	ErrScoreNotFound       = errors.New("score not found")
)

// ErrGenerationFailed wraps upstream content-generation failures so the API
// layer can surface them as a gateway error rather than a server fault.
var ErrGenerationFailed = errors.New("content generation failed")
