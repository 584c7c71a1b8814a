package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/api"
	"github.com/Oussamaberchi/Quickkt/internal/auth"
	"github.com/Oussamaberchi/Quickkt/internal/coach"
	"github.com/Oussamaberchi/Quickkt/internal/config"
	"github.com/Oussamaberchi/Quickkt/internal/quit"
	"github.com/Oussamaberchi/Quickkt/internal/storage"
)

type app struct {
	logger   internal.Logger
	store    storage.StateStore
	coach    coach.Client
	engine   *quit.Engine
	calendar quit.Calendar
}

func (a *app) Logger() internal.Logger   { return a.logger }
func (a *app) Store() storage.StateStore { return a.store }
func (a *app) Coach() coach.Client       { return a.coach }
func (a *app) Engine() *quit.Engine      { return a.engine }
func (a *app) Calendar() quit.Calendar   { return a.calendar }

func newLogger(cfg *config.Config) internal.Logger {
	var z *zap.Logger
	var err error
	if cfg.Env == "production" {
		z, err = zap.NewProduction()
	} else {
		z, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return internal.NewZapLogger(z.Sugar())
}

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)

	if cfg.StorageBackend == "file" {
		if dir := filepath.Dir(cfg.SnapshotFile); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}
	}
	if cfg.StorageBackend == "sqlite" {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}
	}

	store, err := storage.NewStateStore(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	ticker := quit.NewTicker(time.Second)
	engine := quit.NewEngine(storage.NewTickSource(store, logger), ticker, logger)
	go engine.Run()

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.AuthToken, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}

	a := &app{
		logger:   logger,
		store:    store,
		coach:    coach.NewHTTPClient(cfg.CoachURL, cfg.CoachTimeout, logger),
		engine:   engine,
		calendar: quit.Calendar{Location: cfg.AnalyticsLocation(), WeekStart: cfg.WeekStart},
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(api.RequestIDMiddleware())
	r.Use(auth.AuthMiddleware(provider, cfg))
	api.RegisterRoutes(r, a)

	go func() {
		logger.Infof("Server running on %s", cfg.HTTPAddr)
		if err := r.Run(cfg.HTTPAddr); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	engine.Stop()
	if err := store.Close(); err != nil {
		logger.Errorf("failed to close storage: %v", err)
	}
}
