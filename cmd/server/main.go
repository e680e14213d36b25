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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcconcept/internal/apiclient"
	"pcconcept/internal/config"
	"pcconcept/internal/logging"
	"pcconcept/internal/services"
	"pcconcept/internal/web"
)

func main() {
	// .env may sit next to the binary or at the repo root when run from cmd/server
	if err := config.LoadDotEnv(".env", "../.env", "../../.env"); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	api, err := apiclient.New(cfg.API.BaseURL,
		apiclient.WithHeaders(cfg.API.Headers),
		apiclient.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("api client", zap.Error(err))
	}

	grouping, err := cfg.Grouping()
	if err != nil {
		logger.Fatal("categories", zap.Error(err))
	}

	handler, err := web.NewServer(web.Deps{
		Config:   cfg,
		Grouping: grouping,
		Products: services.NewProducts(api),
		Blogs:    services.NewBlogs(api),
		Reviews:  services.NewReviews(api),
		Backend:  api,
		Log:      logger,
	})
	if err != nil {
		logger.Fatal("web server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("api", api.BaseURL()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
