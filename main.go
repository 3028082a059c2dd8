// File: laundrybook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundrybook/config"
	"laundrybook/handlers"
	"laundrybook/middleware"
	"laundrybook/routes"
	"laundrybook/services/geo"
	"laundrybook/services/notification"
	"laundrybook/services/payment"
	"laundrybook/services/wizard"
	"laundrybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// services.
	geoClient := geo.NewClient(config.AppConfig.PostcodesBaseURL)
	origin := geo.Point{
		Lat: config.AppConfig.ServiceOriginLat,
		Lng: config.AppConfig.ServiceOriginLng,
	}
	geoService := geo.NewGeoService(geoClient, origin, config.AppConfig.ServiceRadiusMiles, logger)

	sessionStore := wizard.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	wizardService := wizard.NewWizardService(sessionStore, logger)

	paymentService := payment.NewStripePaymentService(logger)

	notificationService := notification.NewEmailConfirmationService(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.BookingsEmail,
		config.AppConfig.BookingsEmailName,
		config.AppConfig.BookingsEmail,
		logger,
	)

	geoHandler := handlers.NewGeoHandler(geoService)
	bookingHandler := handlers.NewBookingHandler(wizardService, paymentService, notificationService, logger)

	// Register routes.
	routes.RegisterRoutes(router, geoHandler, bookingHandler)

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

	utils.StartHealthMonitor(utils.GetSessionCacheClient())

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
