package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/household-pantry-service/config"
	pantryv1 "github.com/fekuna/household-pantry-service/internal/api/pantryv1"
	"github.com/fekuna/household-pantry-service/internal/consumption"
	"github.com/fekuna/household-pantry-service/internal/middleware"
	"github.com/fekuna/household-pantry-service/internal/pkg/broker"
	"github.com/fekuna/household-pantry-service/internal/pkg/cache"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/fekuna/household-pantry-service/internal/pkg/postgres"
	"github.com/fekuna/household-pantry-service/internal/pkg/search"

	invH "github.com/fekuna/household-pantry-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/household-pantry-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/household-pantry-service/internal/inventory/usecase"

	recipeH "github.com/fekuna/household-pantry-service/internal/recipe/handler"
	recipeListenerPkg "github.com/fekuna/household-pantry-service/internal/recipe/listener"
	recipeRepoPkg "github.com/fekuna/household-pantry-service/internal/recipe/repository"
	recipeUCPkg "github.com/fekuna/household-pantry-service/internal/recipe/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	recipeRepo := recipeRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 6. Initialize Elasticsearch
	var esClient *search.Client
	if cfg.Elastic.Enabled {
		esClient, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, usage logs will not be indexed", zap.Error(err))
			esClient = nil
		} else {
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Initialize Engine and UseCases
	engine := consumption.NewEngine(recipeRepo, invRepo, appLogger.With(zap.String("component", "consumption")))
	recipeUC := recipeUCPkg.NewRecipeUseCase(recipeRepo, engine, redisClient, recipeUCPkg.LockConfig{
		TTL:        cfg.Redis.LockTTL,
		Attempts:   cfg.Redis.LockAttempts,
		RetryDelay: cfg.Redis.LockRetryDelay,
	}, esClient, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)

	// 8. Initialize Handlers
	recipeHandler := recipeH.NewRecipeHandler(recipeUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)

	// 9. gRPC Server
	port := normalizePort(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RateLimitInterceptor(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
			middleware.ContextInterceptor(),
		),
	)
	pantryv1.RegisterRecipeServiceServer(grpcServer, recipeHandler)
	pantryv1.RegisterInventoryServiceServer(grpcServer, invHandler)

	// 10. Metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              normalizePort(cfg.Server.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting gRPC server", zap.String("port", port))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		appLogger.Info("Starting metrics server", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 11. Meal planner listener
	if cfg.Kafka.Enabled {
		kafkaConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer kafkaConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

		mealListener := recipeListenerPkg.NewMealListener(kafkaConsumer, recipeUC, appLogger)
		g.Go(func() error {
			mealListener.Start(gctx)
			return nil
		})
	}

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("server exited with error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
