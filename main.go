package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"admin-backend/config"
	"admin-backend/controllers"
	"admin-backend/routes"
	"admin-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Printf("✅ Database connection established (driver=%s, migrate=%v, seed=%v).", cfg.DBDriver, cfg.AutoMigrate, cfg.Seed)

	// Initialize services
	bookingService := services.NewBookingService(db)
	registrationService := services.NewRegistrationService(db)
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	customerService := services.NewCustomerService(db)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService, roomService, customerService)
	registrationController := controllers.NewRegistrationController(registrationService)
	roomController := controllers.NewRoomController(roomService, roomTypeService)
	customerController := controllers.NewCustomerController(customerService)

	router := routes.SetupRouter(cfg, db, bookingController, registrationController, roomController, customerController)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️  Closing database pool failed: %v", err)
		}
	}
	log.Println("✅ Server stopped gracefully")
}
