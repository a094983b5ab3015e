package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/outcome-stats-api/api/swagger"
	"github.com/noah-isme/outcome-stats-api/internal/handler"
	"github.com/noah-isme/outcome-stats-api/internal/middleware"
	"github.com/noah-isme/outcome-stats-api/internal/repository"
	"github.com/noah-isme/outcome-stats-api/internal/service"
	"github.com/noah-isme/outcome-stats-api/internal/stats"
	"github.com/noah-isme/outcome-stats-api/pkg/cache"
	"github.com/noah-isme/outcome-stats-api/pkg/config"
	"github.com/noah-isme/outcome-stats-api/pkg/database"
	"github.com/noah-isme/outcome-stats-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/outcome-stats-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/outcome-stats-api/pkg/middleware/requestid"
)

// @title Learning Outcome Statistics API
// @version 1.0.0
// @description Quiz and assignment rubric statistics classified into expectation bands and rolled up per learning objective.
// @BasePath /
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	engine, err := stats.NewEngine(stats.Thresholds{
		Exceeds: cfg.Expectation.ExceedsThreshold,
		Meets:   cfg.Expectation.MeetsThreshold,
		Below:   cfg.Expectation.BelowThreshold,
	})
	if err != nil {
		logr.Fatal("invalid expectation thresholds", zap.Error(err))
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Statistics.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, statistics cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	metricsSvc := service.NewMetricsService()
	var cacheRepo service.CacheRepository
	if redisClient != nil {
		repo := repository.NewCacheRepository(redisClient, logr)
		defer repo.Close() //nolint:errcheck
		cacheRepo = repo
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Statistics.CacheTTL, logr, cfg.Statistics.CacheEnabled)

	objectiveRepo := repository.NewCourseObjectiveRepository(db)
	matchRepo := repository.NewObjectiveMatchRepository(db)
	validate := validator.New()

	statisticsSvc := service.NewStatisticsService(engine, matchRepo, objectiveRepo, cacheSvc, metricsSvc, logr, cfg.Statistics.CacheTTL)
	objectiveSvc := service.NewObjectiveService(objectiveRepo, matchRepo, cacheSvc, metricsSvc, validate, logr)

	statisticsHandler := handler.NewStatisticsHandler(statisticsSvc, nil)
	if cfg.Exports.Enabled {
		statisticsHandler = handler.NewStatisticsHandler(statisticsSvc, service.NewExportService(logr, nil, nil))
	}
	objectiveHandler := handler.NewObjectiveHandler(objectiveSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, readinessChecks(db, redisClient))

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc, "/metrics", "/health"))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.GET("/metrics/snapshot", metricsHandler.Snapshot)

	statistics := api.Group("/statistics")
	statistics.POST("/quiz", statisticsHandler.Quiz)
	statistics.POST("/quiz/:courseId/:quizId", statisticsHandler.StoredQuiz)
	statistics.POST("/assignment-rubric", statisticsHandler.AssignmentRubric)
	statistics.POST("/assignment-rubric/:courseId/:assignmentId", statisticsHandler.StoredAssignmentRubric)
	if cfg.Exports.Enabled {
		statistics.POST("/quiz/export", statisticsHandler.ExportQuiz)
		statistics.POST("/assignment-rubric/export", statisticsHandler.ExportAssignmentRubric)
	}

	if cfg.Objectives.Enabled {
		objectives := api.Group("/objectives")
		objectives.GET("", objectiveHandler.List)
		objectives.POST("", objectiveHandler.Upsert)
		objectives.PUT("/:id", objectiveHandler.Replace)
		objectives.GET("/course/:courseId", objectiveHandler.ByCourse)
		objectives.GET("/department/:dept/:num", objectiveHandler.ByDepartment)
		objectives.GET("/matches/quiz/:courseId/:quizId", objectiveHandler.GetQuizMatch)
		objectives.PUT("/matches/quiz/:courseId/:quizId", objectiveHandler.PutQuizMatch)
		objectives.GET("/matches/assignment/:courseId/:assignmentId", objectiveHandler.GetAssignmentMatch)
		objectives.PUT("/matches/assignment/:courseId/:assignmentId", objectiveHandler.PutAssignmentMatch)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
}

func readinessChecks(db *sqlx.DB, redisClient *redis.Client) map[string]handler.ReadinessCheck {
	checks := map[string]handler.ReadinessCheck{
		"postgres": db.PingContext,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	return checks
}
