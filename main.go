// File: telecare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecare/config"
	"telecare/cron"
	"telecare/database"
	appointmentRepo "telecare/database/repository/appointment"
	availabilityRepo "telecare/database/repository/availability"
	"telecare/handlers"
	"telecare/middleware"
	"telecare/routes"
	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := appointmentRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	cancel()

	// services.
	expiryScheduler := cron.NewExpiryScheduler()
	schedulingService := &scheduling.DefaultSchedulingService{
		Availability:  availRepo,
		Appointments:  apptRepo,
		Locks:         utils.NewSlotLock(),
		Cache:         utils.NewSlotGridCache(time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second),
		Expiry:        expiryScheduler,
		BookingBuffer: time.Duration(config.AppConfig.BookingBufferMinutes) * time.Minute,
	}

	cron.InitExpiryWorker(apptRepo)

	availabilityHandler := handlers.NewAvailabilityHandler(schedulingService)
	appointmentHandler := handlers.NewAppointmentHandler(schedulingService)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, availabilityHandler, appointmentHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockCacheClient()},
		database.MongoClient,
	)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
