package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/store"
)

type App struct {
	Log      *logger.Logger
	Store    store.NodeStore
	Router   *gin.Engine
	Cfg      Config
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	nodeStore, err := resolveNodeStore(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	serviceset := wireServices(nodeStore, log)
	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log)
	router := wireRouter(cfg, handlerset, middleware)

	return &App{
		Log:      log,
		Store:    nodeStore,
		Router:   router,
		Cfg:      cfg,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if closer, ok := a.Store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	a.Log.Sync()
}
