package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// AuditHandler serves the audit trail. Admin access is enforced by the
// Authorize middleware on the route, not here.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List handles GET /v1/audit — admin only.
//
// @Summary      List audit trail entries, newest first
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Entries to skip"
// @Param        limit  query     int  false  "Max entries to return"
// @Success      200    {array}   domain.AuditEntry
// @Failure      403    {object}  map[string]string
// @Router       /v1/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	skip, limit := pagination(c)

	entries, err := h.repo.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
