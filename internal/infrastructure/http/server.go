package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/helioworks/payment-service/internal/adapter/handler/http"
	"github.com/helioworks/payment-service/internal/config"
	"github.com/helioworks/payment-service/internal/infrastructure/database"
	providerFactory "github.com/helioworks/payment-service/internal/infrastructure/provider"
	"github.com/helioworks/payment-service/internal/middleware/auth"
	"github.com/helioworks/payment-service/internal/usecase"
	"github.com/helioworks/payment-service/pkg/logger"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Recover())

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.Use(logger.NewEchoRequestLogger(s.logger))

	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Wire usecases and handlers
	providers := providerFactory.NewFactory(s.config, s.logger)
	planService := usecase.NewPlanService(s.repos.Plan, s.logger)
	subscriptionService := usecase.NewSubscriptionService(s.repos.Subscription, s.repos.Plan, s.logger)
	orderService := usecase.NewOrderService(
		s.repos.TxManager, s.repos.Plan, s.repos.Order, s.repos.Payment,
		providers, s.config.Service.ProviderTimeout, s.logger)
	settlementService := usecase.NewSettlementService(
		s.repos.TxManager, s.repos.Plan, s.repos.Order, s.repos.Payment,
		s.repos.Subscription, s.repos.WebhookEvent,
		providers, s.config.Service.ProviderTimeout, s.logger)

	plansHandler := handlers.NewPlansHandler(planService, s.logger)
	orderHandler := handlers.NewOrderHandler(orderService, s.logger)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, s.logger)
	webhookHandler := handlers.NewWebhookHandler(settlementService, s.logger)

	// Public routes stay outside the protected group, so no skip list is needed.
	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
	}

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Plans are public for browsing
	v1.GET("/plans", plansHandler.GetPlans)

	// Protected routes (require JWT authentication)
	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))
	protected.POST("/orders", orderHandler.CreateOrder)
	protected.GET("/orders", orderHandler.ListOrders)
	protected.GET("/orders/:id", orderHandler.GetOrder)
	protected.GET("/subscription", subscriptionHandler.GetCurrentSubscription)

	// Webhook route (outside API versioning, authenticated by signature)
	s.echo.POST("/webhook/:provider", webhookHandler.HandleWebhook)
}
