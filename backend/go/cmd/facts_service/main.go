package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DevOpsFacts/backend/go/internal/config"
	"DevOpsFacts/backend/go/internal/facts_service/api"
	"DevOpsFacts/backend/go/internal/facts_service/service"
	"DevOpsFacts/backend/go/internal/facts_service/store"
	"DevOpsFacts/backend/go/pkg/http"
	"DevOpsFacts/backend/go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Init(logger.ParseLevel(cfg.Logger.Level))
	appLogger := logger.New("facts_service").WithField("version", cfg.App.Version)
	appLogger.Info("Logger initialized")
	appLogger.WithFields(logrus.Fields{
		"config_path": config.Path(),
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	}).Debug("Configuration loaded")

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize dependencies (Store -> Service -> Handler)
	factStore := store.NewDefaultStore()
	appLogger.WithField("facts", factStore.All()).Debug("Fact store loaded")
	factService := service.NewService(factStore)
	apiHandler := api.NewHandler(factService)
	router := api.SetupRouter(apiHandler, appLogger)
	appLogger.WithField("facts", factStore.Len()).Info("Router setup completed")

	srv, err := http.NewServer(cfg, router, http.WithLogger(appLogger))
	if err != nil {
		appLogger.WithError(err).Fatal("failed to create HTTP server")
	}

	ln, err := net.Listen("tcp", srv.Addr())
	if err != nil {
		appLogger.WithError(err).Fatal("failed to bind port")
	}
	appLogger.Infof("🎉 DevOps Facts API running on http://localhost:%d", cfg.Server.Port)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			appLogger.WithError(err).Fatal("server stopped unexpectedly")
		}
		return
	case sig := <-quit:
		appLogger.WithField("signal", sig.String()).Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Duration(cfg.Server.ShutdownTimeout, 5*time.Second))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Fatal("server forced to shutdown")
	}
	appLogger.Info("Server exited")
}
