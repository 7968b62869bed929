package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"nexus/internal/infrastructure/ai"
	"nexus/internal/infrastructure/auth"
	"nexus/internal/infrastructure/cache"
	"nexus/internal/infrastructure/config"
	"nexus/internal/infrastructure/email"
	"nexus/internal/infrastructure/github"
	"nexus/internal/infrastructure/ratelimit"
	"nexus/internal/infrastructure/storage"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/interfaces/http/routes"
	"nexus/internal/shared/db"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/services/markdown"
)

// Router wires repositories, use cases, and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	hdlrs          *allHandlers
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware // nil when disabled
}

func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	repos := newRepositories(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	aiClient := ai.NewClient(ai.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}, log)
	planStore := cache.NewRedisPlanStore(redisClient, time.Duration(cfg.AI.PlanTTLMinutes)*time.Minute)

	githubClient := github.NewClient(cfg.GitHub.APIBaseURL, log)

	blobStore, err := storage.NewLocalStore(cfg.Storage.AttachmentDir, cfg.Storage.MaxAttachmentSize)
	if err != nil {
		return nil, err
	}

	markdownSvc := markdown.NewService()

	deps := &useCaseDeps{
		repos:        repos,
		txManager:    txManager,
		hasher:       hasher,
		jwtSvc:       jwtSvc,
		planGen:      aiClient,
		planStore:    planStore,
		githubClient: githubClient,
		blobStore:    blobStore,
		markdownSvc:  markdownSvc,
		log:          log,
	}
	if cfg.Email.Enabled {
		deps.notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.Username,
			Password:    cfg.Email.Password,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}

	ucs := newUseCases(deps)
	hdlrs := newHandlers(ucs)

	r := &Router{
		engine:         engine,
		cfg:            cfg,
		log:            log,
		hdlrs:          hdlrs,
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
	}

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		r.rateLimit = middleware.NewRateLimitMiddleware(limiter, cfg.RateLimit.RequestsPerMinute)
	}

	return r, nil
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	if r.rateLimit != nil {
		r.engine.Use(r.rateLimit.Limit())
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupVerticalRoutes(r.engine, &routes.VerticalRouteConfig{
		VerticalHandler: r.hdlrs.verticalHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupProjectRoutes(r.engine, &routes.ProjectRouteConfig{
		ProjectHandler: r.hdlrs.projectHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupSprintRoutes(r.engine, &routes.SprintRouteConfig{
		SprintHandler:  r.hdlrs.sprintHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFeatureRoutes(r.engine, &routes.FeatureRouteConfig{
		FeatureHandler: r.hdlrs.featureHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTaskRoutes(r.engine, &routes.TaskRouteConfig{
		TaskHandler:    r.hdlrs.taskHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupPlannerRoutes(r.engine, &routes.PlannerRouteConfig{
		PlannerHandler: r.hdlrs.plannerHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
