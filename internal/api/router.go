package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/techvantage/edu-platform/docs"
	"github.com/techvantage/edu-platform/internal/api/handler"
	"github.com/techvantage/edu-platform/internal/api/middleware"
	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
	"github.com/techvantage/edu-platform/internal/core/service"
	mongodb "github.com/techvantage/edu-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/techvantage/edu-platform/internal/infrastructure/db/redis"
	"github.com/techvantage/edu-platform/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, llm service.ChatCompleter, audit ports.AuditRecorder, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("eduplatform"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, audit)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	institutionRepo := mongodb.NewInstitutionRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	scoreRepo := mongodb.NewScoreRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	generationCache := redisdb.NewGenerationCache(rdb)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, audit, log)
	userService := service.NewUserService(userRepo, audit, log)
	institutionService := service.NewInstitutionService(institutionRepo, log)
	studentService := service.NewStudentService(studentRepo, audit, log)
	scoreService := service.NewScoreService(scoreRepo, log)
	aiService := service.NewAIService(llm, generationCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	institutionHandler := handler.NewInstitutionHandler(institutionService)
	studentHandler := handler.NewStudentHandler(studentService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	aiHandler := handler.NewAIHandler(aiService)
	auditHandler := handler.NewAuditHandler(auditRepo)

	authenticated := middleware.Authenticate(tokens)

	// --- Auth routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- User routes (all require a valid token) ---
	users := v1.Group("/users", authenticated)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Institution routes (reads are public, writes require a token) ---
	v1.GET("/institutions", institutionHandler.List)
	v1.GET("/institutions/:id", institutionHandler.Get)
	v1.POST("/institutions", institutionHandler.Create, authenticated)
	v1.PUT("/institutions/:id", institutionHandler.Update, authenticated)
	v1.DELETE("/institutions/:id", institutionHandler.Delete, authenticated)

	// --- Student routes (reads are public, writes require a token) ---
	v1.GET("/students", studentHandler.List)
	v1.GET("/students/:id", studentHandler.Get)
	v1.POST("/students", studentHandler.Create, authenticated)
	v1.PUT("/students/:id", studentHandler.Update, authenticated)
	v1.DELETE("/students/:id", studentHandler.Delete, authenticated)

	// --- Score routes (all require a valid token) ---
	scores := v1.Group("/scores", authenticated)
	scores.POST("", scoreHandler.Create)
	scores.GET("", scoreHandler.List)
	scores.GET("/:id", scoreHandler.Get)
	scores.PUT("/:id", scoreHandler.Update)
	scores.DELETE("/:id", scoreHandler.Delete)

	// --- AI content generation (teacher/admin, enforced in the service) ---
	ai := v1.Group("/ai", authenticated)
	ai.POST("/lesson-plan", aiHandler.LessonPlan)
	ai.POST("/quiz", aiHandler.Quiz)
	ai.POST("/analyze-performance", aiHandler.AnalyzePerformance)
	ai.POST("/feedback", aiHandler.Feedback)

	// --- Audit trail (admin only) ---
	v1.GET("/audit", auditHandler.List, authenticated,
		middleware.Authorize(domain.ResourceAudit, domain.ActionList))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
