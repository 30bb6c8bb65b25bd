package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

// Authorize gates a route on the declarative policy table. It covers
// role-only rules; self-access decisions need the target record and are made
// by the services instead.
func Authorize(resource domain.Resource, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(CallerKey).(*domain.Caller)
			if err := domain.Decide(caller, resource, action, ""); err != nil {
				return err
			}
			return next(c)
		}
	}
}
