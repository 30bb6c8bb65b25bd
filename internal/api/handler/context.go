package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/api/middleware"
	"github.com/techvantage/edu-platform/internal/core/domain"
)

// ctxCaller extracts the caller resolved by the Authenticate middleware.
// It fails with ErrUnauthorized when the middleware did not run or the
// claims were incomplete: role and user id must both be present before any
// service call.
func ctxCaller(c echo.Context) (*domain.Caller, error) {
	caller, _ := c.Get(middleware.CallerKey).(*domain.Caller)
	if caller == nil || caller.Role == "" || caller.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return caller, nil
}
