package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixmate/config"
	"fixmate/cron"
	"fixmate/database"
	bookingRepo "fixmate/database/repository/booking"
	categoryRepo "fixmate/database/repository/category"
	workerRepo "fixmate/database/repository/worker"
	"fixmate/handlers"
	"fixmate/middleware"
	"fixmate/routes"
	ai "fixmate/services/intelligence"
	"fixmate/services/matching"
	"fixmate/services/notification"
	"fixmate/services/tasks"
	"fixmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	database.InitDB()
	utils.InitCache()
	cache := utils.GetCacheClient()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	db := database.Database()
	workers := workerRepo.NewMongoWorkerRepo(db.Collection("workers"))
	bookings := bookingRepo.NewMongoBookingRepo(db.Collection("bookings"))
	categories := categoryRepo.NewCachedCategoryRepo(
		categoryRepo.NewMongoCategoryRepo(db.Collection("categories")),
		cache,
		time.Duration(cfg.CategoryCacheTTLMinutes)*time.Minute,
		logger,
	)
	if err := workers.EnsureIndexes(rootCtx); err != nil {
		logger.Warn("main: failed to ensure worker indexes", zap.Error(err))
	}
	if err := bookings.EnsureIndexes(rootCtx); err != nil {
		logger.Warn("main: failed to ensure booking indexes", zap.Error(err))
	}

	// text generation.
	gemini, err := ai.NewGeminiClient(rootCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("main: failed to initialize Gemini client", zap.Error(err))
	}
	defer gemini.Close()

	aiSettings := ai.Settings{
		Timeout:               cfg.AITimeout(),
		ClarifySkipConfidence: cfg.ClarifySkipConfidence,
	}
	extractor := ai.NewIntentExtractor(gemini.JSON(), aiSettings, logger.Named("extractor"))
	clarifier := ai.NewClarificationGenerator(gemini, aiSettings, logger.Named("clarifier"))

	// booking notifications.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()
	worker := cron.InitBookingWorker(notification.NewLogNotificationService(logger.Named("notification")), logger.Named("worker"))

	intakeService := matching.NewDefaultIntakeService(matching.Deps{
		Extractor:   extractor,
		Clarifier:   clarifier,
		Workers:     workers,
		Bookings:    bookings,
		Categories:  categories,
		Notifier:    tasks.NewQueueNotifier(queueClient),
		Idempotency: matching.NewRedisIdempotencyStore(cache, time.Duration(cfg.IdempotencyTTLMinutes)*time.Minute),
	}, matching.Settings{
		MinConfidence:  cfg.MinConfidence,
		CandidateLimit: cfg.CandidateLimit,
		RatingBand:     cfg.RankRatingBand,
		ReviewBand:     cfg.RankReviewBand,
		Currency:       cfg.Currency,
	}, logger.Named("intake"))

	intakeHandler := handlers.NewIntakeHandler(intakeService, logger)
	handlerBundle := &handlers.HandlerBundle{
		IntakeHandler:  intakeHandler.IntakeHandler,
		ConfirmHandler: intakeHandler.ConfirmHandler,
		HealthHandler:  handlers.HealthHandler,
	}

	utils.StartHealthMonitor(rootCtx, 60*time.Second, []*redis.Client{cache}, database.MongoClient)

	router := newRouter(logger, cfg.TrustedProxyList())
	routes.RegisterRoutes(router, handlerBundle, cfg.MaxRequestsPerMin, logger)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}
	_ = cache.Close()

	logger.Info("main: server stopped gracefully")
}

func newRouter(logger *zap.Logger, trustedProxies []string) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	return router
}
