package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techvantage/edu-platform/internal/api/metrics"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// AIHandler exposes the content-generation pass-through endpoints.
type AIHandler struct {
	service ports.AIService
}

func NewAIHandler(service ports.AIService) *AIHandler {
	return &AIHandler{service: service}
}

type lessonPlanRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Grade    string `json:"grade" validate:"required"`
	Topic    string `json:"topic" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"`
}

type lessonPlanResponse struct {
	LessonPlan string `json:"lesson_plan"`
	Subject    string `json:"subject"`
	Grade      string `json:"grade"`
	Topic      string `json:"topic"`
	Duration   int    `json:"duration"`
}

type quizRequest struct {
	Subject      string `json:"subject" validate:"required"`
	Grade        string `json:"grade" validate:"required"`
	Topic        string `json:"topic" validate:"required"`
	NumQuestions int    `json:"num_questions" validate:"required,gt=0"`
}

type quizResponse struct {
	QuizQuestions string `json:"quiz_questions"`
	Subject       string `json:"subject"`
	Grade         string `json:"grade"`
	Topic         string `json:"topic"`
	NumQuestions  int    `json:"num_questions"`
}

type scoreSampleRequest struct {
	Value          float64 `json:"value" validate:"gte=0"`
	MaxValue       float64 `json:"max_value" validate:"gt=0"`
	AssessmentType string  `json:"assessment_type" validate:"required"`
}

type performanceRequest struct {
	Subject string               `json:"subject" validate:"required"`
	Scores  []scoreSampleRequest `json:"scores"`
}

type performanceResponse struct {
	Analysis          string `json:"analysis"`
	Subject           string `json:"subject"`
	NumScoresAnalyzed int    `json:"num_scores_analyzed"`
}

type feedbackRequest struct {
	StudentName    string   `json:"student_name" validate:"required"`
	Subject        string   `json:"subject" validate:"required"`
	Performance    string   `json:"performance" validate:"required"`
	AreasToImprove []string `json:"areas_to_improve"`
}

type feedbackResponse struct {
	Feedback    string `json:"feedback"`
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
}

// LessonPlan handles POST /v1/ai/lesson-plan — teacher or admin.
//
// @Summary      Generate a lesson plan
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      lessonPlanRequest  true  "Lesson plan parameters"
// @Success      200   {object}  lessonPlanResponse
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/ai/lesson-plan [post]
func (h *AIHandler) LessonPlan(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req lessonPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.observe("lesson_plan", func() (*ports.GenerationResult, error) {
		return h.service.LessonPlan(c.Request().Context(), caller, ports.LessonPlanInput{
			Subject:  req.Subject,
			Grade:    req.Grade,
			Topic:    req.Topic,
			Duration: req.Duration,
		})
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lessonPlanResponse{
		LessonPlan: result.Content,
		Subject:    req.Subject,
		Grade:      req.Grade,
		Topic:      req.Topic,
		Duration:   req.Duration,
	})
}

// Quiz handles POST /v1/ai/quiz — teacher or admin.
//
// @Summary      Generate quiz questions
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      quizRequest  true  "Quiz parameters"
// @Success      200   {object}  quizResponse
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/ai/quiz [post]
func (h *AIHandler) Quiz(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req quizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.observe("quiz", func() (*ports.GenerationResult, error) {
		return h.service.Quiz(c.Request().Context(), caller, ports.QuizInput{
			Subject:      req.Subject,
			Grade:        req.Grade,
			Topic:        req.Topic,
			NumQuestions: req.NumQuestions,
		})
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quizResponse{
		QuizQuestions: result.Content,
		Subject:       req.Subject,
		Grade:         req.Grade,
		Topic:         req.Topic,
		NumQuestions:  req.NumQuestions,
	})
}

// AnalyzePerformance handles POST /v1/ai/analyze-performance — teacher or admin.
//
// @Summary      Analyze student performance data
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      performanceRequest  true  "Score samples"
// @Success      200   {object}  performanceResponse
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/ai/analyze-performance [post]
func (h *AIHandler) AnalyzePerformance(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req performanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if len(req.Scores) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "scores cannot be empty")
	}
	for i, sc := range req.Scores {
		if err := c.Validate(&sc); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("scores[%d]: %s", i, err.Error()))
		}
	}

	samples := make([]ports.ScoreSample, 0, len(req.Scores))
	for _, sc := range req.Scores {
		samples = append(samples, ports.ScoreSample{
			Value:          sc.Value,
			MaxValue:       sc.MaxValue,
			AssessmentType: sc.AssessmentType,
		})
	}

	result, err := h.observe("performance_analysis", func() (*ports.GenerationResult, error) {
		return h.service.AnalyzePerformance(c.Request().Context(), caller, ports.PerformanceInput{
			Subject: req.Subject,
			Scores:  samples,
		})
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, performanceResponse{
		Analysis:          result.Content,
		Subject:           req.Subject,
		NumScoresAnalyzed: len(samples),
	})
}

// Feedback handles POST /v1/ai/feedback — teacher or admin.
//
// @Summary      Generate personalized student feedback
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      feedbackRequest  true  "Feedback parameters"
// @Success      200   {object}  feedbackResponse
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/ai/feedback [post]
func (h *AIHandler) Feedback(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.observe("feedback", func() (*ports.GenerationResult, error) {
		return h.service.Feedback(c.Request().Context(), caller, ports.FeedbackInput{
			StudentName:    req.StudentName,
			Subject:        req.Subject,
			Performance:    req.Performance,
			AreasToImprove: req.AreasToImprove,
		})
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feedbackResponse{
		Feedback:    result.Content,
		StudentName: req.StudentName,
		Subject:     req.Subject,
	})
}

// observe wraps a generation call with metrics.
func (h *AIHandler) observe(kind string, fn func() (*ports.GenerationResult, error)) (*ports.GenerationResult, error) {
	start := time.Now()
	result, err := fn()
	metrics.AIGenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.AIGenerationsTotal.WithLabelValues(kind, "error").Inc()
	case result.Cached:
		metrics.AIGenerationsTotal.WithLabelValues(kind, "cache_hit").Inc()
	default:
		metrics.AIGenerationsTotal.WithLabelValues(kind, "success").Inc()
	}
	return result, err
}
