// File: roadmate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadmate/config"
	"roadmate/database"
	"roadmate/handlers"
	"roadmate/middleware"
	"roadmate/routes"
	"roadmate/services/accessibility"
	"roadmate/services/archive"
	"roadmate/services/contextstore"
	"roadmate/services/dialogue"
	"roadmate/services/feedback"
	"roadmate/services/nlp"
	"roadmate/services/poi"
	"roadmate/services/route"
	"roadmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	cfg := &config.AppConfig
	logger := utils.GetLogger()

	contextClient, err := utils.NewContextRedisClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect context store: %v", err)
	}
	weightsClient, err := utils.NewWeightsRedisClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect weights store: %v", err)
	}

	// The transcript archive is optional. Without Mongo the assistant still
	// answers; turns are simply not archived.
	var mongoClient *mongo.Client
	var publisher archive.Publisher = archive.NopPublisher{}
	var worker *asynq.Server
	if cfg.MongoURI != "" {
		mongoClient, err = database.NewMongoClient(cfg.MongoURI)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to connect MongoDB: %v", err)
		}

		asynqPublisher := archive.NewAsynqPublisher(cfg.RedisAddr, cfg.RedisPassword, logger)
		defer asynqPublisher.Close()
		publisher = asynqPublisher

		worker = asynq.NewServer(
			asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword},
			asynq.Config{Concurrency: 2},
		)
		mux := asynq.NewServeMux()
		archive.NewArchiver(mongoClient, cfg.MongoDBName, logger).Register(mux)
		go func() {
			if err := worker.Run(mux); err != nil {
				logger.Sugar().Errorf("main: archive worker stopped: %v", err)
			}
		}()
	} else {
		logger.Info("MongoDB not configured, transcript archive disabled")
	}

	utils.StartHealthMonitor(contextClient, weightsClient, mongoClient)

	externalTimeout := time.Duration(cfg.ExternalTimeoutSec) * time.Second

	contexts := contextstore.NewRedisStore(contextClient, time.Duration(cfg.ContextTTLMin)*time.Minute, logger)
	feedbackSvc := feedback.NewRedisService(weightsClient, logger)
	analyzer := nlp.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	access := accessibility.New(cfg.ElevatorDataPath, cfg.EscalatorDataPath, logger)

	tmapClient := route.NewTmapClient(cfg.TmapAPIKey, cfg.TmapRouteURL, externalTimeout, logger)
	routeSvc := route.NewDefaultService(tmapClient, access, contexts, feedbackSvc, logger)
	poiSvc := poi.NewTmapService(cfg.TmapAPIKey, cfg.TmapPOIURL, externalTimeout, logger)
	dialogueSvc := dialogue.NewDefaultService(contexts, analyzer, feedbackSvc, publisher, logger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := &routes.HandlerBundle{
		Dialogue: handlers.NewDialogueHandler(dialogueSvc),
		Route:    handlers.NewRouteHandler(routeSvc),
		POI:      handlers.NewPOIHandler(poiSvc),
		Feedback: handlers.NewFeedbackHandler(feedbackSvc),
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	if worker != nil {
		worker.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
