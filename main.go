package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	"concierge/cron"
	"concierge/database"
	bookingsRepo "concierge/database/repository/bookings"
	"concierge/handlers"
	"concierge/routes"
	"concierge/services/booking"
	"concierge/services/engine"
	"concierge/services/notification"
	"concierge/services/tasks"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingsRepo.NewMongoBookingRepo()

	// services.
	resolutionEngine := engine.NewDefaultResolutionEngine(engine.ConfigFromApp())
	sessionStore := booking.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	reminderScheduler := tasks.NewScheduler()
	defer reminderScheduler.Close()

	sessionService := &booking.DefaultSessionService{
		Engine:    resolutionEngine,
		Repo:      bookingRepo,
		Store:     sessionStore,
		Reminders: reminderScheduler,
		Horizon:   config.AppConfig.BookingHorizonDays,
	}

	assistantHandler := handlers.NewAssistantHandler(sessionService)
	bookingsHandler := handlers.NewBookingsHandler(sessionService)

	routes.RegisterRoutes(router, assistantHandler, bookingsHandler)

	// Start the reminder worker.
	notificationService := notification.NewDefaultNotificationService()
	cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
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

	logger.Sugar().Info("main: server stopped gracefully")
}
