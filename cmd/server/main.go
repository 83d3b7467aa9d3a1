package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/auth"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/config"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/database"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/scheduler"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	hierarchyRepo := repository.NewHierarchyRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	valueRepo := repository.NewValueRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Session tokens ride on fernet; demo accounts expire with the token TTL
	issuer, err := auth.NewTokenIssuer(cfg.Session.Key, time.Duration(cfg.Session.DemoTTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Create services
	systemService := service.NewSystemService(db)
	sessionService := service.NewSessionService(userRepo, issuer)
	valueService := service.NewValueService(
		valueRepo,
		hierarchyRepo,
		assetRepo,
		userRepo,
	)
	analyticsService := service.NewAnalyticsService(
		hierarchyRepo,
		valueRepo,
	)
	assetService := service.NewAssetService(
		assetRepo,
		hierarchyRepo,
	)
	transactionService := service.NewTransactionService(
		transactionRepo,
	)

	// Nightly cleanup of expired demo accounts
	sched := scheduler.New()
	if err := sched.AddJob("0 3 * * *", "demo-purge", sessionService.PurgeExpiredDemoUsers); err != nil {
		log.Fatalf("Failed to register purge job: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(systemService, sessionService, valueService, analyticsService, assetService, transactionService, issuer, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
