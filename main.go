// File: nexus/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nexus/config"
	"nexus/cron"
	"nexus/database"
	notifRepo "nexus/database/repository/notification"
	providerRepo "nexus/database/repository/provider"
	recordsRepo "nexus/database/repository/records"
	"nexus/handlers"
	"nexus/middleware"
	"nexus/models"
	"nexus/routes"
	"nexus/services/booking"
	"nexus/services/catalog"
	"nexus/services/notification"
	"nexus/services/provider"
	"nexus/services/session"
	"nexus/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The snapshot store is optional; the clients stay nil when redis is
	// unreachable and every consumer degrades to memory-only.
	utils.InitCache()
	utils.InitOTPCache()
	snap := utils.GetCacheClient()

	// repositories.
	provRepo := providerRepo.NewMemoryProviderRepo(database.SeedProviders(), snap)
	bookingRepo := recordsRepo.NewMemoryBookingRepo()
	notificationRepo := notifRepo.NewMemoryNotificationRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: provRepo}
	notificationService := &notification.DefaultNotificationService{Repo: notificationRepo}

	draftFlow := booking.NewDraftFlow()
	gateway := &booking.SubmissionGateway{
		Flow:          draftFlow,
		Bookings:      bookingRepo,
		Notifications: notificationRepo,
	}
	flowService := &booking.DefaultBookingFlowService{
		Flow:      draftFlow,
		Providers: provRepo,
		Gateway:   gateway,
	}

	navigator := session.NewNavigator(models.ScreenSplash)
	sessionService := session.NewDefaultSessionService(navigator, draftFlow, snap)

	providerService := &provider.DefaultProviderService{
		Providers: provRepo,
		Bookings:  bookingRepo,
		Notifier:  notificationService,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	routes.RegisterRoutes(router, routes.Handlers{
		Flow:         handlers.NewBookingFlowHandler(flowService, sessionService, bookingRepo),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Session:      handlers.NewSessionHandler(sessionService, navigator, flowService),
		Auth:         handlers.NewAuthHandler(sessionService),
		Notification: handlers.NewNotificationHandler(notificationService, sessionService),
		Provider:     handlers.NewProviderHandler(providerService),
	})

	sweeper := cron.StartStatusSweep(bookingRepo, notificationService)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("NEXUS listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	sweeper.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
}
