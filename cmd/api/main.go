package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirewire/jobboard-backend/internal/config"
	"github.com/hirewire/jobboard-backend/internal/database"
	"github.com/hirewire/jobboard-backend/internal/handlers"
	"github.com/hirewire/jobboard-backend/internal/notify"
	"github.com/hirewire/jobboard-backend/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services (Dependencies)
	planService := services.NewPlanService(db)
	boostService := services.NewBoostService(db, &services.GormJobDirectory{DB: db})
	analyticsService := services.NewAnalyticsService(db, boostService)
	notifier := notify.New(cfg.RedisAddr)

	// 4. Initialize Handlers
	boostHandler := handlers.NewBoostHandler(boostService, analyticsService, notifier)
	planHandler := handlers.NewPlanHandler(planService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-User-ID", "X-User-Role"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api/v1")
	handlers.RegisterRoutes(api, boostHandler, planHandler)

	// 7. Serve with graceful shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("server shutdown", "err", err)
		}
		close(idleConnsClosed)
	}()

	slog.Info("server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed to start:", err)
	}

	<-idleConnsClosed
	slog.Info("server stopped")
}
