package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// pagination parses the skip/limit query parameters, clamping to sane bounds.
func pagination(c echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	if skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return skip, limit
}
