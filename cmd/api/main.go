package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-service/internal/api/http"
	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/ratelimit"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	articleRepo := repository.NewArticleRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	auditRecorder := service.NewAuditRecorder(auditRepo, logger)
	auditRecorder.RegisterHandlers(dispatcher)

	intakeClient := webhook.NewIntakeClient(cfg.Webhooks.IntakeURL, cfg.Webhooks.Timeout(), logger)
	statusClient := webhook.NewStatusClient(cfg.Webhooks.StatusURL, cfg.Webhooks.Timeout(), logger)

	intakeService := service.NewIntakeService(intakeClient, cfg.Uploads, logger)
	statusService := service.NewStatusService(statusClient, logger)
	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	articleService := service.NewArticleService(articleRepo, dispatcher)
	noticeService := service.NewNoticeService(noticeRepo, dispatcher)
	settingsService := service.NewSettingsService(settingsRepo, dispatcher)
	eventService := service.NewEventService(eventRepo, dispatcher)
	documentService := service.NewDocumentService(documentRepo, cfg.Uploads, dispatcher)
	statsService := service.NewStatsService(ticketRepo, articleRepo)
	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	var portalLimit fiber.Handler
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewLimiter(redis.Client, cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Window(), logger)
		portalLimit = httptransport.RateLimitMiddleware(limiter)
	}

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(pg, redis),
		Intake:          handlers.NewIntakeHandler(intakeService),
		Status:          handlers.NewStatusHandler(statusService),
		Knowledge:       handlers.NewKnowledgeHandler(articleService),
		Tickets:         handlers.NewTicketsHandler(ticketService),
		Audit:           handlers.NewAuditHandler(auditRecorder),
		Notices:         handlers.NewNoticesHandler(noticeService),
		Settings:        handlers.NewSettingsHandler(settingsService),
		Events:          handlers.NewEventsHandler(eventService),
		Documents:       handlers.NewDocumentsHandler(documentService),
		Stats:           handlers.NewStatsHandler(statsService),
		Users:           handlers.NewUsersHandler(authService),
		AuthMiddleware:  authMiddleware,
		PortalRateLimit: portalLimit,
		MaintenanceGate: httptransport.MaintenanceGate(settingsService, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
