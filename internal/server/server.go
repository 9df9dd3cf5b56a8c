// Package server contains the HTTP handlers and wiring for the Help Hub API.
package server

import (
	"context"
	"errors"
	"time"

	_ "helphub/docs" // swagger docs
	"helphub/internal/auth"
	"helphub/internal/bootstrap"
	"helphub/internal/config"
	"helphub/internal/database"
	"helphub/internal/middleware"
	"helphub/internal/models"
	"helphub/internal/repository"
	"helphub/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config             *config.Config
	db                 *gorm.DB
	redis              *redis.Client
	app                *fiber.App
	promMiddleware     *fiberprometheus.FiberPrometheus
	tokens             *auth.TokenIssuer
	userRepo           repository.UserRepository
	authService        *service.AuthService
	userService        *service.UserService
	opportunityService *service.OpportunityService
	signupService      *service.SignupService
	resourceService    *service.ResourceService
	tipService         *service.TipService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, redisClient, err := bootstrap.InitRuntime(cfg, bootstrap.Options{
		SeedDefaultTips: cfg.SeedDefaultTips,
	})
	if err != nil {
		return nil, err
	}

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil || db == nil {
		return nil, errors.New("config and database are required")
	}

	userRepo := repository.NewUserRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	tipRepo := repository.NewTipRepository(db)

	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	return &Server{
		config:             cfg,
		db:                 db,
		redis:              redisClient,
		promMiddleware:     middleware.InitMetrics("helphub-api"),
		tokens:             tokens,
		userRepo:           userRepo,
		authService:        service.NewAuthService(userRepo, tokens),
		userService:        service.NewUserService(userRepo),
		opportunityService: service.NewOpportunityService(opportunityRepo),
		signupService:      service.NewSignupService(signupRepo, opportunityRepo),
		resourceService:    service.NewResourceService(resourceRepo),
		tipService:         service.NewTipService(tipRepo),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Propagate request and trace ids into the request context
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			middleware.RateLimited.WithLabelValues("global").Inc()
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				errors.New("Too many requests, please try again later."))
		},
	}))
}

func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.RootCheck)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Help Hub API Metrics Dashboard",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	guard := s.AuthRequired()

	authRoutes := api.Group("/auth")
	authRoutes.Post("/signup", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "signup"), s.Signup)
	authRoutes.Post("/signin", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "signin"), s.Signin)

	users := api.Group("/users")
	users.Get("/", guard, s.GetProfile)
	users.Put("/", guard, s.UpdateProfile)

	opportunities := api.Group("/opportunities")
	opportunities.Get("/", s.ListOpportunities)
	opportunities.Post("/", guard, s.CreateOpportunity)
	opportunities.Get("/signups", guard, s.ListMySignups)
	opportunities.Post("/signup", guard, s.SignUpForOpportunity)
	opportunities.Delete("/signup/:id", guard, s.CancelSignup)

	resources := api.Group("/resources")
	resources.Get("/", s.ListResources)
	resources.Get("/my-resources", guard, s.ListMyResources)
	resources.Post("/", guard, s.CreateResource)
	resources.Delete("/:id", guard, s.DeleteResource)

	tips := api.Group("/community-tips")
	tips.Get("/", s.ListTips)
	tips.Get("/random", s.RandomTip)
	tips.Post("/", guard, s.CreateTip)
	tips.Put("/:id/like", guard, s.LikeTip)
}

// AuthRequired returns the access guard bound to this server's token issuer.
func (s *Server) AuthRequired() fiber.Handler {
	return middleware.AuthRequired(s.tokens, s.userRepo)
}

// RootCheck handles GET /
func (s *Server) RootCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Help Hub API is running"})
}

func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports 503 when the database is unreachable or a
// configured Redis does not answer.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Help Hub API",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// errorHandler renders errors that escaped a handler in the standard body.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return models.RespondWithError(c, fe.Code, errors.New(fe.Message))
	}
	return respondServiceError(c, err)
}

// App builds the Fiber application with middleware and routes installed.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}
	app := fiber.New(fiber.Config{
		AppName:      "Help Hub API",
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("Server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
