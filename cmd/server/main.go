package main

import (
	"context"
	"log"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/masterplan/backend/api/handler"
	"github.com/masterplan/backend/internal/config"
	"github.com/masterplan/backend/internal/infrastructure/blob"
	"github.com/masterplan/backend/internal/infrastructure/monitor"
	redisInfra "github.com/masterplan/backend/internal/infrastructure/redis"
	"github.com/masterplan/backend/internal/middleware"
	"github.com/masterplan/backend/internal/router"
	"github.com/masterplan/backend/internal/services"
	"github.com/masterplan/backend/internal/services/lifecycle"
	"github.com/masterplan/backend/pkg/clock"
	"github.com/masterplan/backend/pkg/httpcontext"
	"github.com/masterplan/backend/pkg/logger"
	"github.com/masterplan/backend/repository"
	boltRepo "github.com/masterplan/backend/repository/bolt"
	memoryRepo "github.com/masterplan/backend/repository/memory"
	redisRepo "github.com/masterplan/backend/repository/redis"
	authUC "github.com/masterplan/backend/usecase/auth"
	goalUC "github.com/masterplan/backend/usecase/goal"
	shareUC "github.com/masterplan/backend/usecase/share"
	suggestUC "github.com/masterplan/backend/usecase/suggest"
)

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

	blobStore, err := blob.Open(cfg.Blob.Path, "goals", "users")
	if err != nil {
		zapLogger.Fatal("failed to open blob store", zap.Error(err))
	}
	manager.Register("blob", func(ctx context.Context) error {
		return blobStore.Close()
	})

	var redisClient *redislib.Client
	var shareRepo repository.ShareRepository
	if cfg.Share.Backend == config.ShareBackendRedis {
		redisClient, err = redisInfra.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("redis connection failed", zap.Error(err))
		}
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
		shareRepo = redisRepo.NewShareRepository(redisClient)
	} else {
		shareRepo = memoryRepo.NewShareRepository()
	}

	mon := monitor.New(blobStore, redisClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	goalRepo := boltRepo.NewGoalRepository(blobStore, zapLogger)
	userRepo := boltRepo.NewUserRepository(blobStore, zapLogger)

	clk := clock.New()

	goalUseCase := goalUC.New(goalRepo, clk, zapLogger, goalUC.Config{
		SeedDemoData: cfg.Goals.SeedDemoData,
	})
	authUseCase := authUC.New(userRepo, clk, zapLogger, authUC.Config{
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
		TokenTTL:  cfg.JWT.TokenTTL,
		Latency:   cfg.Auth.SimulatedLatency,
	})
	shareUseCase := shareUC.New(goalUseCase, shareRepo, clk, cfg.Share.PublicBaseURL, zapLogger)
	suggestUseCase := suggestUC.New(goalUseCase, clk, zapLogger)

	sweeper := services.NewStreakSweeper(goalUseCase, zapLogger, services.SweeperConfig{
		Schedule: cfg.Sweeper.Schedule,
	})
	sweeper.Start()
	manager.Register("streak_sweeper", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Profile:   apiHandler.NewProfileHandler(authUseCase, ctxAdapter, zapLogger),
		Goal:      apiHandler.NewGoalHandler(goalUseCase, ctxAdapter, zapLogger),
		Share:     apiHandler.NewShareHandler(shareUseCase, ctxAdapter, zapLogger),
		Dashboard: apiHandler.NewDashboardHandler(goalUseCase, suggestUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
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
