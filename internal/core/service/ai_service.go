package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

// ChatCompleter abstracts the text-generation backend (OpenAI-compatible).
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GenerationCache abstracts the response cache (Redis). A cache failure is
// never fatal: misses fall through to a live call.
type GenerationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, content string) error
}

// AIService gates and executes content-generation requests. The core never
// inspects the generated text; it only authorizes, caches, and forwards.
type AIService struct {
	llm   ChatCompleter
	cache GenerationCache
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAIService(llm ChatCompleter, cache GenerationCache, audit ports.AuditRecorder, log zerolog.Logger) *AIService {
	return &AIService{llm: llm, cache: cache, audit: audit, log: log}
}

func (s *AIService) LessonPlan(ctx context.Context, caller *domain.Caller, in ports.LessonPlanInput) (*ports.GenerationResult, error) {
	prompt := fmt.Sprintf(`Create a detailed lesson plan for a %d-minute class on %s for %s grade %s students.
Include the following sections:
1. Learning Objectives
2. Materials Needed
3. Introduction/Warm-up (5-10 minutes)
4. Main Activities (step by step)
5. Assessment/Evaluation
6. Conclusion
7. Homework/Extension Activities

Make the lesson engaging, interactive, and aligned with educational standards.`,
		in.Duration, in.Topic, in.Grade, in.Subject)

	return s.generate(ctx, caller, "lesson_plan",
		"You are an expert educational consultant specializing in curriculum development.", prompt)
}

func (s *AIService) Quiz(ctx context.Context, caller *domain.Caller, in ports.QuizInput) (*ports.GenerationResult, error) {
	prompt := fmt.Sprintf(`Create %d quiz questions for %s grade %s students on the topic of %s.
For each question, provide:
1. The question
2. Four multiple-choice options (A, B, C, D)
3. The correct answer
4. A brief explanation of why that answer is correct

Make the questions varied in difficulty and aligned with educational standards.`,
		in.NumQuestions, in.Grade, in.Subject, in.Topic)

	return s.generate(ctx, caller, "quiz",
		"You are an expert educational assessment specialist.", prompt)
}

func (s *AIService) AnalyzePerformance(ctx context.Context, caller *domain.Caller, in ports.PerformanceInput) (*ports.GenerationResult, error) {
	lines := make([]string, 0, len(in.Scores))
	for i, sc := range in.Scores {
		lines = append(lines, fmt.Sprintf("Student %d: %g/%g on %s", i+1, sc.Value, sc.MaxValue, sc.AssessmentType))
	}

	prompt := fmt.Sprintf(`Analyze the following student performance data for %s:

%s

Please provide:
1. Statistical analysis (average, median, range)
2. Strengths and weaknesses identified
3. Recommendations for improvement
4. Suggested differentiation strategies for struggling and advanced students`,
		in.Subject, strings.Join(lines, "\n"))

	return s.generate(ctx, caller, "performance_analysis",
		"You are an expert educational data analyst specializing in student performance.", prompt)
}

func (s *AIService) Feedback(ctx context.Context, caller *domain.Caller, in ports.FeedbackInput) (*ports.GenerationResult, error) {
	prompt := fmt.Sprintf(`Write personalized feedback for %s regarding their %s performance, which has been %s.
Areas to improve: %s.

The feedback should be constructive, encouraging, and specific, with concrete suggestions for each area of improvement.`,
		in.StudentName, in.Subject, in.Performance, strings.Join(in.AreasToImprove, ", "))

	return s.generate(ctx, caller, "feedback",
		"You are an experienced, empathetic teacher writing student feedback.", prompt)
}

func (s *AIService) generate(ctx context.Context, caller *domain.Caller, kind, system, prompt string) (*ports.GenerationResult, error) {
	if err := domain.Decide(caller, domain.ResourceAI, domain.ActionGenerate, ""); err != nil {
		return nil, err
	}

	key := cacheKey(kind, prompt)
	if content, hit, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("generation cache read failed")
	} else if hit {
		return &ports.GenerationResult{Content: content, Cached: true}, nil
	}

	content, err := s.llm.Complete(ctx, system, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("kind", kind).Msg("generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	if err := s.cache.Set(ctx, key, content); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("generation cache write failed")
	}

	s.audit.Record(domain.AuditEntry{
		Actor:    caller.Username,
		Action:   string(domain.ActionGenerate),
		Resource: string(domain.ResourceAI),
		TargetID: kind,
		Outcome:  "ok",
	})
	return &ports.GenerationResult{Content: content}, nil
}

func cacheKey(kind, prompt string) string {
	sum := sha256.Sum256([]byte(kind + "\x00" + prompt))
	return "aigen:" + kind + ":" + hex.EncodeToString(sum[:])
}
