package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

type InstitutionHandler struct {
	service ports.InstitutionService
}

func NewInstitutionHandler(service ports.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{service: service}
}

type institutionCreateRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Website string `json:"website,omitempty"`
}

type institutionUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Website *string `json:"website,omitempty"`
}

// Create handles POST /v1/institutions — admin only.
//
// @Summary      Create an institution
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      institutionCreateRequest  true  "Institution details"
// @Success      201   {object}  domain.Institution
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/institutions [post]
func (h *InstitutionHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req institutionCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	inst, err := h.service.Create(c.Request().Context(), caller, ports.InstitutionCreateInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		ZipCode: req.ZipCode,
		Phone:   req.Phone,
		Website: req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inst)
}

// List handles GET /v1/institutions — public.
//
// @Summary      List institutions
// @Tags         institutions
// @Produce      json
// @Param        skip   query  int  false  "Pagination offset"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {array}  domain.Institution
// @Router       /v1/institutions [get]
func (h *InstitutionHandler) List(c echo.Context) error {
	skip, limit := pagination(c)

	insts, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	if insts == nil {
		insts = []*domain.Institution{}
	}
	return c.JSON(http.StatusOK, insts)
}

// Get handles GET /v1/institutions/:id — public.
//
// @Summary      Get an institution by id
// @Tags         institutions
// @Produce      json
// @Param        id  path  string  true  "Institution id"
// @Success      200  {object}  domain.Institution
// @Failure      404  {object}  map[string]string
// @Router       /v1/institutions/{id} [get]
func (h *InstitutionHandler) Get(c echo.Context) error {
	inst, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inst)
}

// Update handles PUT /v1/institutions/:id — admin only.
//
// @Summary      Update an institution
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "Institution id"
// @Param        body  body  institutionUpdateRequest  true  "Fields to update"
// @Success      200  {object}  domain.Institution
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/institutions/{id} [put]
func (h *InstitutionHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req institutionUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	inst, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.InstitutionUpdateInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		ZipCode: req.ZipCode,
		Phone:   req.Phone,
		Website: req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inst)
}

// Delete handles DELETE /v1/institutions/:id — admin only.
//
// @Summary      Delete an institution
// @Tags         institutions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Institution id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/institutions/{id} [delete]
func (h *InstitutionHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "institution deleted successfully"})
}
