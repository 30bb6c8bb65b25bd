package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/api/metrics"
	"github.com/techvantage/edu-platform/internal/api/middleware"
	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Emits a WWW-Authenticate challenge on 401 responses.
//   - Records every policy denial on the audit trail.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, audit ports.AuditRecorder) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, audit, c)
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, audit ports.AuditRecorder, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		metrics.PolicyDenialsTotal.WithLabelValues("unauthorized").Inc()
		recordDenial(audit, c)
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		metrics.PolicyDenialsTotal.WithLabelValues("forbidden").Inc()
		recordDenial(audit, c)
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrInstitutionExists),
		errors.Is(err, domain.ErrStudentExists):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInstitutionNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrScoreNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, domain.ErrGenerationFailed.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// recordDenial writes one denied-outcome audit entry for a request the policy
// rejected. The route identifies the attempted operation; the dispatcher fills
// in "anonymous" when no caller was resolved.
func recordDenial(audit ports.AuditRecorder, c echo.Context) {
	entry := domain.AuditEntry{
		Action:   strings.ToLower(c.Request().Method),
		Resource: c.Path(),
		Outcome:  "denied",
	}
	if caller, ok := c.Get(middleware.CallerKey).(*domain.Caller); ok && caller != nil {
		entry.Actor = caller.Username
	}
	audit.Record(entry)
}
