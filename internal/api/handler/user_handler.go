package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userUpdateRequest struct {
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	InstitutionID *string `json:"institution_id,omitempty"`
}

// List handles GET /v1/users — admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "Pagination offset"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)

	users, err := h.service.List(c.Request().Context(), caller, skip, limit)
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /v1/users/:id — admins, or the user themself.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /v1/users/:id — admins, or the user themself. Fields
// absent from the body are left untouched.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "User id"
// @Param        body  body  userUpdateRequest  true  "Fields to update"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UserUpdateInput{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		IsActive:      req.IsActive,
		InstitutionID: req.InstitutionID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/users/:id — admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted successfully"})
}
