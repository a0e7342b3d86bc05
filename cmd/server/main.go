package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/lifebot/backend/api/handler"
	"github.com/lifebot/backend/internal/config"
	"github.com/lifebot/backend/internal/infrastructure/buffer"
	"github.com/lifebot/backend/internal/infrastructure/monitor"
	pgInfra "github.com/lifebot/backend/internal/infrastructure/postgres"
	redisInfra "github.com/lifebot/backend/internal/infrastructure/redis"
	sqliteInfra "github.com/lifebot/backend/internal/infrastructure/sqlite"
	"github.com/lifebot/backend/internal/middleware"
	"github.com/lifebot/backend/internal/router"
	"github.com/lifebot/backend/internal/services"
	"github.com/lifebot/backend/internal/services/lifecycle"
	"github.com/lifebot/backend/pkg/httpcontext"
	"github.com/lifebot/backend/pkg/logger"
	"github.com/lifebot/backend/repository"
	boltRepo "github.com/lifebot/backend/repository/bolt"
	pgRepo "github.com/lifebot/backend/repository/postgres"
	redisRepo "github.com/lifebot/backend/repository/redis"
	sqliteRepo "github.com/lifebot/backend/repository/sqlite"
	"github.com/lifebot/backend/usecase"
	authUC "github.com/lifebot/backend/usecase/auth"
	journalUC "github.com/lifebot/backend/usecase/journal"
	mealUC "github.com/lifebot/backend/usecase/meal"
	profileUC "github.com/lifebot/backend/usecase/profile"
	taskUC "github.com/lifebot/backend/usecase/task"
)

// repos groups the storage adapters behind the repository interfaces so the
// rest of main does not care which backend was selected.
type repos struct {
	users    repository.UserRepository
	tasks    repository.TaskRepository
	history  repository.HistoryRepository
	journals repository.JournalRepository
	meals    repository.MealRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	var (
		r    repos
		mon  *monitor.Monitor
		bufn usecase.OperationBuffer
	)

	switch cfg.Storage {
	case config.BackendPostgres:
		if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
			zapLogger.Fatal("migrations failed", zap.Error(err))
		}

		pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
		if err != nil {
			zapLogger.Fatal("postgres connection failed", zap.Error(err))
		}
		manager.Register("postgres", func(ctx context.Context) error {
			pool.Close()
			return nil
		})

		r = repos{
			users:    pgRepo.NewUserRepository(pool),
			tasks:    pgRepo.NewTaskRepository(pool),
			history:  pgRepo.NewHistoryRepository(pool),
			journals: pgRepo.NewJournalRepository(pool),
			meals:    pgRepo.NewMealRepository(pool),
		}

		if cfg.Buffer.Enabled {
			bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
			if err != nil {
				zapLogger.Fatal("failed to open buffer store", zap.Error(err))
			}
			manager.Register("buffer", func(ctx context.Context) error {
				return bufferStore.Close()
			})

			mon = monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
			mon.Start()
			manager.Register("monitor", func(ctx context.Context) error {
				mon.Stop()
				return nil
			})

			processor := services.NewBufferProcessor(
				bufferStore,
				mon,
				r.tasks,
				r.journals,
				r.meals,
				zapLogger,
				services.ProcessorConfig{
					Interval:   cfg.Buffer.SyncInterval,
					BatchSize:  50,
					MaxRetries: cfg.Buffer.MaxRetry,
					Retention:  time.Duration(cfg.Buffer.RetentionHours) * time.Hour,
				},
			)
			processor.Start()
			manager.Register("buffer_processor", func(ctx context.Context) error {
				processor.Stop(ctx)
				return nil
			})

			bufn = services.NewBufferBridge(processor)
		}

	case config.BackendSQLite:
		db, err := sqliteInfra.Open(cfg.SQLite.Path, zapLogger, sqliteRepo.Models()...)
		if err != nil {
			zapLogger.Fatal("sqlite open failed", zap.Error(err))
		}
		manager.Register("sqlite", func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})

		r = repos{
			users:    sqliteRepo.NewUserRepository(db),
			tasks:    sqliteRepo.NewTaskRepository(db),
			history:  sqliteRepo.NewHistoryRepository(db),
			journals: sqliteRepo.NewJournalRepository(db),
			meals:    sqliteRepo.NewMealRepository(db),
		}

	case config.BackendBolt:
		store, err := boltRepo.Open(cfg.Bolt.Path)
		if err != nil {
			zapLogger.Fatal("bolt open failed", zap.Error(err))
		}
		manager.Register("bolt", func(ctx context.Context) error {
			return store.Close()
		})

		r = repos{
			users:    boltRepo.NewUserRepository(store),
			tasks:    boltRepo.NewTaskRepository(store),
			history:  boltRepo.NewHistoryRepository(store),
			journals: boltRepo.NewJournalRepository(store),
			meals:    boltRepo.NewMealRepository(store),
		}
	}

	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	authUseCase := authUC.New(r.users, sessionRepo, zapLogger, cfg.Session.TTL)
	taskUseCase := taskUC.New(r.tasks, bufn, zapLogger)
	profileUseCase := profileUC.New(r.tasks, r.history, zapLogger)
	journalUseCase := journalUC.New(r.journals, bufn, zapLogger)
	mealUseCase := mealUC.New(r.meals, bufn, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.JWT.Secret, cfg.JWT.Issuer),
		Task:    apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Profile: apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Journal: apiHandler.NewJournalHandler(journalUseCase, ctxAdapter, zapLogger),
		Meal:    apiHandler.NewMealHandler(mealUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	rt := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      rt.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("storage", string(cfg.Storage)),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
