package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/adapters/primary/http/handlers"
	"mlops-hub-backend/internal/adapters/primary/http/middleware"
	"mlops-hub-backend/internal/adapters/secondary/inference"
	"mlops-hub-backend/internal/adapters/secondary/kserve"
	"mlops-hub-backend/internal/adapters/secondary/minio"
	"mlops-hub-backend/internal/adapters/secondary/mlflow"
	"mlops-hub-backend/internal/adapters/secondary/postgres"
	"mlops-hub-backend/internal/adapters/secondary/ray"
	"mlops-hub-backend/internal/config"
	ports "mlops-hub-backend/internal/core/ports/output"
	"mlops-hub-backend/internal/core/services"
	"mlops-hub-backend/internal/jobs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Object storage
	store, err := minio.NewObjectStore(context.Background(), &cfg.ObjectStorage)
	if err != nil {
		log.Fatalf("init object storage: %v", err)
	}
	log.Info("object storage connection established")

	// Repositories
	datasetRepo := postgres.NewDatasetRepository(pool)
	versionRepo := postgres.NewDatasetVersionRepository(pool)
	fileRepo := postgres.NewDatasetFileRepository(pool)
	serviceRepo := postgres.NewInferenceServiceRepository(pool)
	entrypointRepo := postgres.NewEntrypointRepository(pool)
	historyRepo := postgres.NewEntrypointHistoryRepository(pool)

	// Deployer (optional, based on config)
	var deployer ports.Deployer
	if cfg.Kubernetes.Enabled {
		d, err := kserve.NewDeployer(&cfg.Kubernetes)
		if err != nil {
			log.Warnf("deployer init failed (continuing without K8s integration): %v", err)
		} else {
			deployer = d
			log.Info("deployer initialized")
		}
	} else {
		log.Info("K8s integration disabled")
	}

	// Upstream clients
	inferenceClient := inference.NewClient(&cfg.Inference)
	tracker := mlflow.NewClient(&cfg.MLflow)
	cluster := ray.NewClient(&cfg.Ray)

	// Core services
	historySvc := services.NewHistoryService(historyRepo)
	datasetSvc := services.NewDatasetService(datasetRepo, versionRepo, fileRepo, store)
	versionSvc := services.NewDatasetVersionService(versionRepo, fileRepo, datasetRepo, store)
	serviceSvc := services.NewInferenceServiceService(serviceRepo, deployer)
	entrypointSvc := services.NewEntrypointService(entrypointRepo, serviceRepo, historySvc)
	gatewaySvc := services.NewGatewayService(entrypointRepo, serviceRepo, inferenceClient, historySvc)
	experimentSvc := services.NewExperimentService(tracker, cfg.MLflow.CacheTTL)
	clusterSvc := services.NewClusterService(cluster)

	// Background jobs
	if cfg.Jobs.HealthSyncEnabled {
		healthSync := jobs.NewHealthSync(serviceRepo, cfg.Jobs.HealthSyncSchedule)
		if err := healthSync.Start(); err != nil {
			log.Fatalf("start health sync job: %v", err)
		}
		defer healthSync.Stop()
	}

	// HTTP handlers
	h := handlers.New(datasetSvc, versionSvc, serviceSvc, entrypointSvc, gatewaySvc, historySvc, experimentSvc, clusterSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())

	api := router.Group("/api")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
