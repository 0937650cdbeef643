package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"studentapi/internal/config"
	"studentapi/internal/database"
	"studentapi/internal/database/migration"
	handlers "studentapi/internal/http/handler"
	"studentapi/internal/http/middleware"
	"studentapi/internal/logger"
	"studentapi/internal/otel"
	"studentapi/internal/repository"
	"studentapi/internal/repository/memory"
	"studentapi/internal/repository/postgres"
	"studentapi/internal/security"
	"studentapi/internal/service"
	"studentapi/internal/storage"
)

// @title Student API
// @version 1.0
// @description Student records and user tokens.
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(cfg.Env)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

type repositories struct {
	students repository.StudentRepository
	users    repository.UserRepository
	tokens   repository.TokenRepository
	db       handlers.Pinger
	close    func() error
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repos.close()

	hasher := security.NewArgon2Hasher(cfg.Security)
	deps := handlers.Dependencies{
		DB:       repos.db,
		Students: service.NewStudentService(repos.students, log),
		Users:    service.NewUserService(repos.users, repos.tokens, hasher, cfg.Security.TokenTTL, log),
	}

	if cfg.ScansEnabled() {
		store, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		deps.Scans = service.NewDocumentScanService(store, repos.students, cfg.Scans, log)
		log.Info("document scans enabled", zap.String("bucket", cfg.MinIO.Bucket))
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Scans.MaxBytes) + 1<<20,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", ":"+cfg.Port), zap.String("storage", cfg.StorageDriver))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func openRepositories(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*repositories, error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return &repositories{
			students: memory.NewStudentStore(),
			users:    memory.NewUserStore(),
			tokens:   memory.NewTokenStore(),
			close:    func() error { return nil },
		}, nil
	}

	pools, err := database.OpenPools(cfg.Database, cfg.ReadDatabase())
	if err != nil {
		return nil, err
	}
	if err := migration.EnsureMigrated(ctx, pools.RW.DB, log, cfg.Database.Host); err != nil {
		_ = pools.Close()
		return nil, err
	}

	return &repositories{
		students: postgres.NewStudentPostgres(pools.RW, pools.RO),
		users:    postgres.NewUserPostgres(pools.RW, pools.RO),
		tokens:   postgres.NewTokenPostgres(pools.RW),
		db:       pools,
		close:    pools.Close,
	}, nil
}
