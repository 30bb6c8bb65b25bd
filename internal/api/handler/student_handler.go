package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type studentCreateRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	InstitutionID  string `json:"institution_id" validate:"required"`
	Grade          string `json:"grade" validate:"required"`
	EnrollmentYear int    `json:"enrollment_year" validate:"required,gt=1900"`
	GraduationYear int    `json:"graduation_year,omitempty"`
}

type studentUpdateRequest struct {
	Grade          *string `json:"grade,omitempty"`
	EnrollmentYear *int    `json:"enrollment_year,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
}

// Create handles POST /v1/students — admin or teacher.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studentCreateRequest  true  "Student details"
// @Success      201   {object}  domain.Student
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req studentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	st, err := h.service.Create(c.Request().Context(), caller, ports.StudentCreateInput{
		UserID:         req.UserID,
		InstitutionID:  req.InstitutionID,
		Grade:          req.Grade,
		EnrollmentYear: req.EnrollmentYear,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, st)
}

// List handles GET /v1/students — public, optional institution filter.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        skip            query  int     false  "Pagination offset"
// @Param        limit           query  int     false  "Page size (max 100)"
// @Param        institution_id  query  string  false  "Filter by institution"
// @Success      200  {array}  domain.Student
// @Router       /v1/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	skip, limit := pagination(c)

	students, err := h.service.List(c.Request().Context(), skip, limit, c.QueryParam("institution_id"))
	if err != nil {
		return err
	}
	if students == nil {
		students = []*domain.Student{}
	}
	return c.JSON(http.StatusOK, students)
}

// Get handles GET /v1/students/:id — public.
//
// @Summary      Get a student by id
// @Tags         students
// @Produce      json
// @Param        id  path  string  true  "Student id"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  map[string]string
// @Router       /v1/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	st, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Update handles PUT /v1/students/:id — admin or teacher.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Student id"
// @Param        body  body  studentUpdateRequest  true  "Fields to update"
// @Success      200  {object}  domain.Student
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req studentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	st, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.StudentUpdateInput{
		Grade:          req.Grade,
		EnrollmentYear: req.EnrollmentYear,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Delete handles DELETE /v1/students/:id — admin only.
//
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Student id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "student deleted successfully"})
}
