package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

type ScoreHandler struct {
	service ports.ScoreService
}

func NewScoreHandler(service ports.ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

type scoreCreateRequest struct {
	StudentID string    `json:"student_id" validate:"required"`
	Subject   string    `json:"subject" validate:"required"`
	Value     float64   `json:"score_value" validate:"gte=0"`
	MaxScore  float64   `json:"max_score" validate:"gt=0"`
	Type      string    `json:"score_type" validate:"required,oneof=exam quiz assignment project"`
	Date      time.Time `json:"date" validate:"required"`
	TeacherID string    `json:"teacher_id" validate:"required"`
	Comments  string    `json:"comments,omitempty"`
}

type scoreUpdateRequest struct {
	Value    *float64 `json:"score_value,omitempty" validate:"omitempty,gte=0"`
	MaxScore *float64 `json:"max_score,omitempty" validate:"omitempty,gt=0"`
	Comments *string  `json:"comments,omitempty"`
}

// Create handles POST /v1/scores — admin or teacher.
//
// @Summary      Record a score
// @Tags         scores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scoreCreateRequest  true  "Score details"
// @Success      201   {object}  domain.Score
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/scores [post]
func (h *ScoreHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req scoreCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sc, err := h.service.Create(c.Request().Context(), caller, ports.ScoreCreateInput{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Value:     req.Value,
		MaxScore:  req.MaxScore,
		Type:      req.Type,
		Date:      req.Date,
		TeacherID: req.TeacherID,
		Comments:  req.Comments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sc)
}

// List handles GET /v1/scores — any authenticated caller, optional student filter.
//
// @Summary      List scores
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Param        skip        query  int     false  "Pagination offset"
// @Param        limit       query  int     false  "Page size (max 100)"
// @Param        student_id  query  string  false  "Filter by student"
// @Success      200  {array}   domain.Score
// @Failure      401  {object}  map[string]string
// @Router       /v1/scores [get]
func (h *ScoreHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)

	scores, err := h.service.List(c.Request().Context(), caller, skip, limit, c.QueryParam("student_id"))
	if err != nil {
		return err
	}
	if scores == nil {
		scores = []*domain.Score{}
	}
	return c.JSON(http.StatusOK, scores)
}

// Get handles GET /v1/scores/:id — any authenticated caller.
//
// @Summary      Get a score by id
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Score id"
// @Success      200  {object}  domain.Score
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/scores/{id} [get]
func (h *ScoreHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	sc, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sc)
}

// Update handles PUT /v1/scores/:id — admin or teacher.
//
// @Summary      Update a score
// @Tags         scores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "Score id"
// @Param        body  body  scoreUpdateRequest  true  "Fields to update"
// @Success      200  {object}  domain.Score
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/scores/{id} [put]
func (h *ScoreHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req scoreUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sc, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.ScoreUpdateInput{
		Value:    req.Value,
		MaxScore: req.MaxScore,
		Comments: req.Comments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sc)
}

// Delete handles DELETE /v1/scores/:id — admin only.
//
// @Summary      Delete a score
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Score id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/scores/{id} [delete]
func (h *ScoreHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "score deleted successfully"})
}
