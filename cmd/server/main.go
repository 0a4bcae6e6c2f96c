package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	feed_service "microblog-service/internal/application/service/feed"
	follow_service "microblog-service/internal/application/service/follow"
	post_service "microblog-service/internal/application/service/post"
	search_service "microblog-service/internal/application/service/search"
	user_service "microblog-service/internal/application/service/user"
	"microblog-service/internal/domain/ports/output/search"
	"microblog-service/internal/infrastructure/config"
	delivery_grpc "microblog-service/internal/infrastructure/inbound/grpc"
	delivery_http "microblog-service/internal/infrastructure/inbound/http"
	"microblog-service/internal/infrastructure/inbound/http/handler"
	metrics_server "microblog-service/internal/infrastructure/inbound/metrics"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/auth/bcrypt"
	"microblog-service/internal/infrastructure/outbound/auth/jwt"
	redis_cache "microblog-service/internal/infrastructure/outbound/cache/redis"
	"microblog-service/internal/infrastructure/outbound/clock"
	"microblog-service/internal/infrastructure/outbound/language/whatlang"
	prometheus_metrics "microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	follow_postgres "microblog-service/internal/infrastructure/outbound/repository/follow/postgres"
	post_postgres "microblog-service/internal/infrastructure/outbound/repository/post/postgres"
	"microblog-service/internal/infrastructure/outbound/repository/postgres"
	user_postgres "microblog-service/internal/infrastructure/outbound/repository/user/postgres"
	"microblog-service/internal/infrastructure/outbound/search/elasticsearch"
	"microblog-service/internal/infrastructure/outbound/search/noop"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	credentials := fmt.Sprintf("%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	if err := postgres.RunMigrations(cfg.Database.MigrationsPath, "pgx5://"+credentials, log); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig("postgresql://" + credentials)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	userCache := redis_cache.NewUserCache(redisClient, log)
	postCache := redis_cache.NewPostCache(redisClient, log)
	followCache := redis_cache.NewFollowCache(redisClient, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	followRepo := follow_postgres.NewFollowRepository(pool, log, metrics)

	systemClock := clock.New()
	tokens := jwt.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var index search.Index = noop.NewIndex()
	if cfg.Search.Enabled {
		esIndex, err := elasticsearch.NewIndex(cfg.Search, log)
		if err != nil {
			log.Error("Failed to create search index client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := esIndex.EnsureIndex(ctx); err != nil {
			log.Warn("Search index is not ready, posts will be indexed once it is", slog.String("error", err.Error()))
		}
		index = esIndex
	}

	searchService := search_service.NewSearchService(index, postRepo, userRepo, search_service.Settings{
		Timeout:       cfg.Search.Timeout,
		ProbeInterval: cfg.Search.ProbeInterval,
		BatchSize:     cfg.Search.ReindexBatchSize,
	}, systemClock, log, metrics)

	followService := follow_service.NewFollowServiceCacheDecorator(
		follow_service.NewFollowService(followRepo, userRepo, unitOfWork, log, metrics),
		followCache,
		log,
		metrics,
	)

	userService := user_service.NewUserServiceCacheDecorator(
		user_service.NewUserService(
			userRepo,
			unitOfWork,
			bcrypt.NewHasher(cfg.Auth.BcryptCost),
			tokens,
			followService,
			systemClock,
			log,
			metrics,
		),
		userCache,
		log,
		metrics,
	)

	postService := post_service.NewPostServiceCacheDecorator(
		post_service.NewPostService(
			postRepo,
			userRepo,
			unitOfWork,
			whatlang.NewDetector(cfg.Language.MinConfidence),
			searchService,
			systemClock,
			log,
			metrics,
		),
		userCache,
		postCache,
		log,
		metrics,
	)

	feedService := feed_service.NewFeedService(postRepo, userRepo, log, metrics)

	validate := validator.New()
	paginator := handler.NewPaginator(cfg.Feed)
	router := delivery_http.NewRouter(
		delivery_http.Handlers{
			Auth:   handler.NewAuthHandler(userService, validate, log),
			Posts:  handler.NewPostHandler(postService, feedService, paginator, validate, log),
			Users:  handler.NewUserHandler(userService, postService, followService, paginator, validate, log),
			Search: handler.NewSearchHandler(searchService, paginator),
		},
		delivery_http.Guards{
			Tokens:   tokens,
			LastSeen: userService,
			Index:    searchService,
		},
		log,
		metrics,
	)

	httpServer := delivery_http.NewServer(router, cfg.HTTPServer, log)
	grpcServer := delivery_grpc.NewServer(cfg.GRPCServer.Address, cfg.GRPCServer.Port, log, metrics)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	httpDone := make(chan bool, 1)
	grpcDone := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		httpDone <- true
	}()

	go func() {
		if err := grpcServer.Run(); err != nil {
			log.Error("gRPC server error", slog.String("error", err.Error()))
		}
		grpcDone <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Shutdown(); err != nil {
		log.Error("gRPC server shutdown error", slog.String("error", err.Error()))
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-httpDone
	<-grpcDone
	<-metricsDone

	log.Info("Server exited")
}
