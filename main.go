package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pkl-management-backend/app/repository"
	"pkl-management-backend/app/service"
	"pkl-management-backend/config"
	"pkl-management-backend/database"
	"pkl-management-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// =================================================================
	// INIT DB (MONGODB)
	// Gagal koneksi tidak menghentikan server: semua operasi data akan 500.
	// =================================================================
	dbConn, err := database.InitDB(context.Background(), cfg.DatabaseURL, cfg.DatabaseName, cfg.DBConnectTimeout)
	if err != nil {
		log.Printf("⚠️  Database tidak tersedia: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbConn.Close(ctx); err != nil {
			log.Printf("Gagal menutup koneksi database: %v", err)
		}
	}()

	store := repository.NewDocumentStore(dbConn.DB())

	// =================================================================
	// SERVICES
	// =================================================================
	authService := service.NewAuthService(store)
	services := routes.Services{
		Auth:         authService,
		Master:       service.NewMasterService(store),
		Placement:    service.NewPlacementService(store),
		Evaluation:   service.NewEvaluationService(store),
		Activity:     service.NewActivityService(store),
		Notification: service.NewNotificationService(store),
		System: service.NewSystemService(store, service.SystemConfig{
			DatabaseURLSet:  cfg.DatabaseURL != "",
			DatabaseNameSet: cfg.DatabaseName != "",
		}),
		Report: service.NewReportService(repository.NewReportRepository(dbConn.DB())),
	}

	// =================================================================
	// INDEX + SEED
	// =================================================================
	if store.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.DBConnectTimeout)
		if err := database.EnsureIndexes(ctx, dbConn.DB()); err != nil {
			log.Printf("⚠️  %v", err)
		}
		database.SeedAdmin(ctx, authService, cfg.SeedAdminEmail, cfg.SeedAdminName, cfg.SeedAdminPass)
		cancel()
	}

	// =================================================================
	// ROUTER + SERVER
	// =================================================================
	r := routes.SetupRouter(services, routes.Options{
		JWTSecret:   []byte(cfg.JWTSecret),
		TokenTTL:    cfg.TokenTTL,
		CORSOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("🚀 Server running at http://localhost:" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Mematikan server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server dipaksa berhenti: %v", err)
	}
	log.Println("Server berhenti")
}
