package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo"

	"upaya-be/config"
	"upaya-be/logger"
	"upaya-be/middlewares"
	"upaya-be/reports"
	"upaya-be/routes"
	"upaya-be/seed"
	"upaya-be/store"
)

func main() {
	port := pflag.String("port", "", "HTTP port (overrides HTTP_PORT)")
	seedFile := pflag.String("seed-file", "", "YAML seed file (overrides SEED_FILE)")
	pflag.Parse()

	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.HTTPPort = *port
	}
	if *seedFile != "" {
		cfg.SeedFile = *seedFile
	}

	logger.Init(cfg.LogLevel, cfg.Env)
	if !dotenv {
		logger.Log.Debug("No .env file found")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, mongoClient, err := seedSource(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to prepare seed source")
	}
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	}

	issues, err := source.Load(ctx)
	if err != nil {
		logger.Log.WithError(err).WithField("source", source.Name()).Fatal("Failed to load issues")
	}
	issueStore, err := store.New(issues)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to build issue store")
	}
	logger.Log.WithField("source", source.Name()).Infof("Loaded %d issues", issueStore.Len())

	var limiter gin.HandlerFunc
	if cfg.RedisAddress != "" {
		var redisClient *redis.Client
		redisClient, err = config.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
		limiter = middlewares.ReportRateLimiter(middlewares.RedisCounter{Client: redisClient},
			cfg.ReportLimitPrefix, cfg.ReportLimit, cfg.ReportLimitWindow)
		logger.Log.Info("Connected to Redis, report rate limiting enabled")
	}

	r := routes.Setup(routes.Options{
		Store:          issueStore,
		Reports:        reports.NewService(cfg.ReportDelay),
		ReportLimiter:  limiter,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("Failed to stop server")
		}
	}()

	logger.Log.Infof("Server listening on :%s", cfg.HTTPPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("Failed to start server")
	}
}

// seedSource picks the seed file, then MongoDB, then the compiled-in dataset.
func seedSource(ctx context.Context, cfg *config.Config) (seed.Source, *mongo.Client, error) {
	switch {
	case cfg.SeedFile != "":
		return seed.File{Path: cfg.SeedFile}, nil, nil
	case cfg.MongoURI != "":
		client, err := config.ConnectDB(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		coll := config.GetCollection(client, cfg.MongoDatabase, cfg.MongoCollection)
		return seed.Mongo{Collection: coll}, client, nil
	default:
		return seed.Static{}, nil, nil
	}
}
