package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/api/metrics"
	"github.com/techvantage/edu-platform/internal/core/domain"
)

// CallerKey is the echo context key under which the resolved caller is stored.
const CallerKey = "caller"

// TokenVerifier verifies a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}

// Authenticate extracts and verifies the bearer token, resolving it into a
// domain.Caller stored in the request context. A missing header, a malformed
// header, or a failed verification all short-circuit with 401; the error
// handler attaches the WWW-Authenticate challenge.
func Authenticate(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrTokenInvalid
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set(CallerKey, &domain.Caller{
				UserID:   claims.UserID,
				Username: claims.Subject,
				Role:     claims.Role,
			})

			return next(c)
		}
	}
}
