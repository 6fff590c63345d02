// File: trimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimly/config"
	"trimly/cron"
	"trimly/database"
	bookingRepoPkg "trimly/database/repository/booking"
	paymentRepoPkg "trimly/database/repository/payment"
	shopRepoPkg "trimly/database/repository/shop"
	userRepoPkg "trimly/database/repository/user"
	"trimly/handlers"
	"trimly/middleware"
	"trimly/routes"
	"trimly/services/booking"
	"trimly/services/notification"
	"trimly/services/payment"
	"trimly/services/storage"
	"trimly/services/tasks"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
	}

	// collaborators.
	var mailer notification.Mailer
	smtpMailer, err := notification.NewSMTPMailer()
	if err != nil {
		logger.Sugar().Warnf("main: mailer disabled: %v", err)
		mailer = notification.NopMailer{}
	} else {
		mailer = smtpMailer
	}
	notificationService := notification.NewDefaultNotificationService(mailer)

	var storageService storage.StorageService
	if cloudinarySvc, cerr := storage.NewCloudinaryStorageService(); cerr != nil {
		logger.Sugar().Warnf("main: payment-proof uploads disabled: %v", cerr)
	} else {
		storageService = cloudinarySvc
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		ShopRepo:  shopRepo,
		UserRepo:  userRepo,
		Notifier:  notificationService,
		Reminders: tasks.NewAsynqReminderScheduler(),
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentRepo,
		BookingRepo: bookingRepo,
		ShopRepo:    shopRepo,
		Bookings:    bookingService,
		Storage:     storageService,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(paymentService),
		Shop:    handlers.NewShopHandler(shopRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
