package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

// LessonPlanInput describes the class a lesson plan is generated for.
type LessonPlanInput struct {
	Subject  string
	Grade    string
	Topic    string
	Duration int // minutes
}

type QuizInput struct {
	Subject      string
	Grade        string
	Topic        string
	NumQuestions int
}

// ScoreSample is one anonymised data point for performance analysis.
type ScoreSample struct {
	Value          float64
	MaxValue       float64
	AssessmentType string
}

type PerformanceInput struct {
	Subject string
	Scores  []ScoreSample
}

type FeedbackInput struct {
	StudentName    string
	Subject        string
	Performance    string
	AreasToImprove []string
}

// GenerationResult carries the model output plus the echo of the request
// parameters, matching the upstream response shape.
type GenerationResult struct {
	Content string
	Cached  bool
}

// AIService is the pass-through to the text-generation backend. All methods
// require a teacher or admin caller.
type AIService interface {
	LessonPlan(ctx context.Context, caller *domain.Caller, in LessonPlanInput) (*GenerationResult, error)
	Quiz(ctx context.Context, caller *domain.Caller, in QuizInput) (*GenerationResult, error)
	AnalyzePerformance(ctx context.Context, caller *domain.Caller, in PerformanceInput) (*GenerationResult, error)
	Feedback(ctx context.Context, caller *domain.Caller, in FeedbackInput) (*GenerationResult, error)
}
