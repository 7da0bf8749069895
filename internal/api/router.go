package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/job-board-api/internal/api/handler"
	"github.com/talentboard/job-board-api/internal/api/middleware"
	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/service"
	"github.com/talentboard/job-board-api/internal/infrastructure/config"
	mongodb "github.com/talentboard/job-board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/talentboard/job-board-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with the full pipeline wired. Stage
// order is fixed: recover → request id → logging → CORS → metrics → rate
// limit → auth → rbac → handler; rate limiting always runs before
// authentication so brute-force traffic never reaches password hashing.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("jobboard"))
	e.Use(echomiddleware.ContextTimeout(cfg.RequestTimeout))

	globalLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Class:   "global",
		Window:  cfg.RateLimit.Window,
		Max:     cfg.RateLimit.Max,
		Message: "Too many requests from this IP, please try again after 15 minutes",
	})
	e.Use(globalLimiter.Middleware())

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	companies := mongodb.NewCompanyRepository(db)
	jobs := mongodb.NewJobRepository(db)
	apps := mongodb.NewApplicationRepository(db)
	categories := mongodb.NewCategoryRepository(db)
	industries := mongodb.NewIndustryRepository(db)
	saved := mongodb.NewSavedJobRepository(db)
	cache := redisdb.NewStatsCache(rdb, cfg.StatsCacheTTL)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authSvc := service.NewAuthService(users, tokens)
	adminSvc := service.NewAdminService(users, jobs, apps, categories, industries, cache, log)
	recruiterSvc := service.NewRecruiterService(companies, jobs, apps, users, cache, log)
	seekerSvc := service.NewJobseekerService(users, jobs, apps, saved)

	authHandler := handler.NewAuthHandler(authSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)
	recruiterHandler := handler.NewRecruiterHandler(recruiterSvc)
	seekerHandler := handler.NewJobseekerHandler(seekerSvc)

	authGate := middleware.Auth(tokens, users)
	authLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Class:   "auth",
		Window:  cfg.RateLimit.Window,
		Max:     cfg.RateLimit.AuthMax,
		Message: "Too many login attempts, please try again after 15 minutes",
	})
	sensitiveLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Class:   "sensitive",
		Window:  cfg.RateLimit.Window,
		Max:     cfg.RateLimit.SensitiveMax,
		Message: "Too many sensitive operations, please try again after 15 minutes",
	})
	sensitive := sensitiveLimiter.Middleware()

	// --- Auth routes ---
	auth := e.Group("/api/auth", authLimiter.Middleware())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authGate)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authGate, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus, sensitive)
	admin.DELETE("/users/:id", adminHandler.DeleteUser, sensitive)
	admin.GET("/categories", adminHandler.ListCategories)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PUT("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
	admin.GET("/industries", adminHandler.ListIndustries)
	admin.POST("/industries", adminHandler.CreateIndustry)
	admin.PUT("/industries/:id", adminHandler.UpdateIndustry)
	admin.DELETE("/industries/:id", adminHandler.DeleteIndustry)
	admin.GET("/analytics", adminHandler.Analytics)

	// --- Recruiter routes ---
	recruiter := e.Group("/api/recruiter", authGate, middleware.RBAC(domain.RoleRecruiter))
	recruiter.GET("/dashboard", recruiterHandler.Dashboard)
	recruiter.GET("/company-profile", recruiterHandler.CompanyProfile)
	recruiter.PUT("/company-profile", recruiterHandler.UpdateCompanyProfile)
	recruiter.GET("/jobs", recruiterHandler.ListJobs)
	recruiter.POST("/jobs", recruiterHandler.CreateJob)
	recruiter.GET("/jobs/:id", recruiterHandler.GetJob)
	recruiter.PUT("/jobs/:id", recruiterHandler.UpdateJob)
	recruiter.DELETE("/jobs/:id", recruiterHandler.DeleteJob)
	recruiter.GET("/candidates", recruiterHandler.ListCandidates)
	recruiter.GET("/candidates/:id", recruiterHandler.GetCandidate)
	recruiter.PUT("/candidates/:id/status", recruiterHandler.UpdateCandidateStatus, sensitive)
	recruiter.GET("/analytics", recruiterHandler.Analytics)

	// --- Jobseeker routes ---
	seeker := e.Group("/api/jobseeker", authGate, middleware.RBAC(domain.RoleJobseeker))
	seeker.GET("/dashboard", seekerHandler.Dashboard)
	seeker.GET("/profile", seekerHandler.Profile)
	seeker.PUT("/profile", seekerHandler.UpdateProfile)
	seeker.GET("/jobs", seekerHandler.SearchJobs)
	seeker.POST("/jobs/:jobId/apply", seekerHandler.Apply)
	seeker.GET("/applications", seekerHandler.ListApplications)
	seeker.GET("/applications/:id", seekerHandler.GetApplication)
	seeker.GET("/saved-jobs", seekerHandler.ListSavedJobs)
	seeker.POST("/saved-jobs/:jobId", seekerHandler.SaveJob)
	seeker.DELETE("/saved-jobs/:jobId", seekerHandler.UnsaveJob)
	seeker.GET("/skills", seekerHandler.ListSkills)
	seeker.POST("/skills", seekerHandler.AddSkill)
	seeker.PUT("/skills/:name", seekerHandler.UpdateSkill)
	seeker.DELETE("/skills/:name", seekerHandler.RemoveSkill)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
