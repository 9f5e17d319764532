// File: classcal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"classcal/config"
	"classcal/database"
	eventsRepo "classcal/database/repository/events"
	teachersRepo "classcal/database/repository/teachers"
	"classcal/handlers"
	"classcal/middleware"
	"classcal/routes"
	"classcal/services/meet"
	"classcal/services/schedule"
	"classcal/services/teacher"
	"classcal/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.InitLogger(cfg.IsProduction())
	defer logger.Sync()

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to record service: %v", err)
	}

	cacheClient, err := utils.NewCacheClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to cache: %v", err)
	}
	authCacheClient, err := utils.NewAuthCacheClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to auth cache: %v", err)
	}

	utils.StartHealthMonitor(mongoClient, cacheClient, authCacheClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	eventRepo := eventsRepo.NewMongoEventRepo(mongoClient, cfg.DatabaseName)
	teacherRepo := teachersRepo.NewMongoTeacherRepo(mongoClient, cfg.DatabaseName)

	// services.
	eventStore := &schedule.DefaultEventStore{
		Repo:    eventRepo,
		Cache:   schedule.NewRedisEventCache(cacheClient, logger),
		Logger:  logger,
		Timeout: cfg.RemoteCallTimeout(),
	}

	teacherDirectory := &teacher.DefaultTeacherDirectory{
		Repo:    teacherRepo,
		Cache:   teacher.NewRedisTeacherCache(cacheClient, logger),
		Logger:  logger,
		Timeout: cfg.RemoteCallTimeout(),
	}

	meetProvider := meet.NewLinkProvider(
		meet.NewRedisTokenSource(authCacheClient),
		cfg.MeetAPIBaseURL,
		logger,
	)

	eventHandler := handlers.NewEventHandler(eventStore, meetProvider, logger)
	calendarHandler := handlers.NewCalendarHandler(eventStore, logger)
	teacherHandler := handlers.NewTeacherHandler(teacherDirectory, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListEventsHandler:  eventHandler.ListEventsHandler,
		CreateEventHandler: eventHandler.CreateEventHandler,
		UpdateEventHandler: eventHandler.UpdateEventHandler,
		DeleteEventHandler: eventHandler.DeleteEventHandler,

		GetCalendarHandler: calendarHandler.GetCalendarHandler,

		ListTeachersHandler:      teacherHandler.ListTeachersHandler,
		GetTeacherByEmailHandler: teacherHandler.GetTeacherByEmailHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: error disconnecting record service client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
