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

	"courtbook/config"
	"courtbook/database"
	bookingRepoPkg "courtbook/database/repository/booking"
	coachRepoPkg "courtbook/database/repository/coach"
	courtRepoPkg "courtbook/database/repository/court"
	equipmentRepoPkg "courtbook/database/repository/equipment"
	rulesRepoPkg "courtbook/database/repository/rules"
	"courtbook/handlers"
	"courtbook/middleware"
	"courtbook/routes"
	"courtbook/services/booking"
	"courtbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	facilityLoc, err := config.FacilityLocation()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid FACILITY_TIMEZONE %q: %v", config.AppConfig.FacilityTimezone, err)
	}

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to close MongoDB connection: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.MongoDBName)

	utils.InitCache()
	cacheClient := utils.GetCacheClient()
	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	courtRepo := courtRepoPkg.NewMongoCourtRepo(db)
	coachRepo := coachRepoPkg.NewMongoCoachRepo(db)
	equipmentRepo := equipmentRepoPkg.NewMongoEquipmentRepo(db)
	rulesRepo := rulesRepoPkg.NewMongoPricingRuleRepo(db)

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// services.
	ruleCache := booking.NewRedisRuleCache(rulesRepo, cacheClient, 30*time.Second)
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Courts:    courtRepo,
		Coaches:   coachRepo,
		Equipment: equipmentRepo,
		Rules:     ruleCache,
		Location:  facilityLoc,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:     handlers.NewBookingHandler(bookingService, logger),
		Court:       handlers.NewCourtHandler(courtRepo, logger),
		Coach:       handlers.NewCoachHandler(coachRepo, logger),
		Equipment:   handlers.NewEquipmentHandler(equipmentRepo, logger),
		PricingRule: handlers.NewPricingRuleHandler(rulesRepo, ruleCache, logger),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
