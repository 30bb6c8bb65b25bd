package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/service"
)

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue(&domain.User{ID: "user-1", Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(tokens)(func(c echo.Context) error {
		called = true
		caller, ok := c.Get(CallerKey).(*domain.Caller)
		if !ok {
			t.Fatalf("caller not set")
		}
		if caller.Username != "alice" {
			t.Fatalf("unexpected username: %s", caller.Username)
		}
		if caller.UserID != "user-1" {
			t.Fatalf("unexpected user id: %s", caller.UserID)
		}
		if caller.Role != domain.RoleAdmin {
			t.Fatalf("unexpected role: %s", caller.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthenticate_BadScheme(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthorize_RoleCheck(t *testing.T) {
	e := echo.New()

	newCtx := func(caller *domain.Caller) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if caller != nil {
			c.Set(CallerKey, caller)
		}
		return c
	}

	mw := Authorize(domain.ResourceAudit, domain.ActionList)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	if err := mw(next)(newCtx(&domain.Caller{UserID: "1", Role: domain.RoleAdmin})); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
	if err := mw(next)(newCtx(&domain.Caller{UserID: "2", Role: domain.RoleTeacher})); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := mw(next)(newCtx(nil)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
