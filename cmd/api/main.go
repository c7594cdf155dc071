package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/docs"
	"github.com/HackerKing5128/voicecart/internal/app"
	"github.com/HackerKing5128/voicecart/internal/config"
	"github.com/HackerKing5128/voicecart/internal/database"
	"github.com/HackerKing5128/voicecart/internal/db"
	"github.com/HackerKing5128/voicecart/internal/server"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// @title VoiceCart API
// @version 1.0
// @description Grocery catalog, cart, order and fraud-review backend for voice agent demos.
// @BasePath /api/v1
func main() {
	// fetch cfg
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// load global logger
	logger := Logger.New(cfg.Debug)
	logger.Info("Logger initialized")

	// fetch database connection
	conn, err := db.InitDB(*cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	// handle migrations
	if err := database.MigrateDB(conn); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	rc := database.NewRedis(cfg.Redis)
	if rc == nil {
		logger.Info("Redis not configured, status events disabled")
	}

	application, err := app.NewApp(cfg, logger, conn, rc)
	if err != nil {
		logger.Fatalf("Failed to wire application: %v", err)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)

	// compose router
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	server.InitializeRoutes(router, application.GetServerDependencies())

	// listen with graceful exit
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.Handler(),
	}
	go func() {
		logger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server exiting %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// stop delivery tracking before the listener goes away
	application.Shutdown()

	// 5 secs then cancel
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown err %v", err)
	}
	logger.Info("Shutdown system")
}
