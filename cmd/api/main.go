package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/job-board/internal/api/http"
	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/identifier"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
	"github.com/spec-kit/job-board/internal/service"
	"github.com/spec-kit/job-board/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)

	codec := auth.NewTokenCodec(cfg.Auth)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	ids := identifier.NewGenerator()
	cookies := auth.NewCookieWriter(cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL(), cfg.Auth.CookieSecure)
	gate := auth.NewGate(codec)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	userSessions := service.NewSessionService(service.PrincipalKind{
		Noun:   "User",
		Role:   domain.RoleUser,
		IDKind: identifier.KindUser,
		Store:  service.NewUserCredentialStore(userRepo),
	}, codec, hasher, ids)
	businessSessions := service.NewSessionService(service.PrincipalKind{
		Noun:   "Business",
		Role:   domain.RoleBusiness,
		IDKind: identifier.KindBusiness,
		Store:  service.NewCompanyCredentialStore(companyRepo),
	}, codec, hasher, ids)

	userAccounts := service.NewUserAccountService(userSessions, userRepo, dispatcher)
	businessAccounts := service.NewBusinessAccountService(businessSessions, companyRepo, dispatcher)

	jobCache := persistence.NewJobCache(redis, logger)
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
		IDs:         ids,
		Cache:       jobCache,
		Dispatcher:  dispatcher,
	})
	applicationService := service.NewApplicationService(service.ApplicationDependencies{
		ApplicationRepo: applicationRepo,
		JobRepo:         jobRepo,
		UserRepo:        userRepo,
		Dispatcher:      dispatcher,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:            handlers.NewAuthHandler(userAccounts, cookies),
		BusinessAuth:    handlers.NewBusinessAuthHandler(businessAccounts, cookies),
		Jobs:            handlers.NewJobsHandler(jobService),
		BusinessJobs:    handlers.NewBusinessJobsHandler(jobService, applicationService),
		Applications:    handlers.NewApplicationsHandler(applicationService),
		Profile:         handlers.NewProfileHandler(userAccounts),
		BusinessProfile: handlers.NewBusinessProfileHandler(businessAccounts),
		Gate:            gate,
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
