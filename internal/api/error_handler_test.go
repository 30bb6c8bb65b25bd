package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/api/middleware"
	"github.com/techvantage/edu-platform/internal/core/domain"
)

type captureRecorder struct {
	entries []domain.AuditEntry
}

func (r *captureRecorder) Record(entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	rec, _ := renderWith(t, err, http.MethodGet, "/", nil)
	return rec
}

func renderWith(t *testing.T, err error, method, path string, caller *domain.Caller) (*httptest.ResponseRecorder, *captureRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	if caller != nil {
		c.Set(middleware.CallerKey, caller)
	}

	audit := &captureRecorder{}
	NewHTTPErrorHandler(zerolog.Nop(), audit)(err, c)
	return rec, audit
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"score not found", domain.ErrScoreNotFound, http.StatusNotFound},
		{"generation failed", domain.ErrGenerationFailed, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render(t, tt.err)
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}

func TestErrorHandler_ChallengeOn401(t *testing.T) {
	rec := render(t, domain.ErrInvalidCredentials)
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Fatalf("expected WWW-Authenticate challenge, got %q", got)
	}

	rec = render(t, domain.ErrForbidden)
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "" {
		t.Fatalf("403 must not carry a challenge, got %q", got)
	}
}

func TestErrorHandler_RecordsForbiddenDecision(t *testing.T) {
	student := &domain.Caller{UserID: "42", Username: "sam", Role: domain.RoleStudent}
	_, audit := renderWith(t, domain.ErrForbidden, http.MethodDelete, "/v1/users/:id", student)

	if len(audit.entries) != 1 {
		t.Fatalf("expected one denied audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Outcome != "denied" {
		t.Fatalf("unexpected outcome: %s", entry.Outcome)
	}
	if entry.Actor != "sam" {
		t.Fatalf("unexpected actor: %s", entry.Actor)
	}
	if entry.Action != "delete" {
		t.Fatalf("unexpected action: %s", entry.Action)
	}
	if entry.Resource != "/v1/users/:id" {
		t.Fatalf("unexpected resource: %s", entry.Resource)
	}
}

func TestErrorHandler_RecordsAnonymousDenial(t *testing.T) {
	_, audit := renderWith(t, domain.ErrUnauthorized, http.MethodPost, "/v1/institutions", nil)

	if len(audit.entries) != 1 {
		t.Fatalf("expected one denied audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Outcome != "denied" {
		t.Fatalf("unexpected outcome: %s", entry.Outcome)
	}
	if entry.Actor != "" {
		t.Fatalf("anonymous denial should carry no actor, got %s", entry.Actor)
	}
}

func TestErrorHandler_NoAuditForOtherErrors(t *testing.T) {
	for _, err := range []error{domain.ErrUserNotFound, domain.ErrEmailTaken, errors.New("boom")} {
		_, audit := renderWith(t, err, http.MethodGet, "/", nil)
		if len(audit.entries) != 0 {
			t.Fatalf("%v should not be audited, got %+v", err, audit.entries)
		}
	}
}

func TestErrorHandler_HidesInternalDetail(t *testing.T) {
	rec := render(t, errors.New("mongo: connection reset by host 10.0.0.3"))
	if body := rec.Body.String(); body != `{"error":"internal server error"}`+"\n" {
		t.Fatalf("internal detail leaked: %s", body)
	}
}

func TestErrorHandler_WrappedGenerationError(t *testing.T) {
	wrapped := errors.Join(domain.ErrGenerationFailed, errors.New("status 429"))
	rec := render(t, wrapped)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
