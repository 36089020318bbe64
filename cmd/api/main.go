package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/router"
	"portfolio/cmd/internal/logger"
	"portfolio/config"
	_ "portfolio/docs"
)

const shutdownTimeout = 10 * time.Second

// @title           Portfolio API
// @version         1.0
// @description     Content gateway for the portfolio site: projects, blog posts and contact form
// @BasePath        /api/v1
func main() {
	cfg, err := config.Load(config.GetBasePath())
	if err != nil {
		logger.Log.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.ServiceName)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.ContentAPI.Enabled() {
		logger.WarnWithFields("content api url is not set, lists will be empty", nil)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.New(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api server started", logger.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server failed: %v", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("api server shutdown error: %v", err)
	}
	logger.InfoWithFields("api server stopped", nil)
}
