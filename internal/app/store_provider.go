package app

import (
	"fmt"
	"strings"

	"github.com/megamarket/catalog-backend/internal/db"
	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/store"
)

type StoreBootstrapError struct {
	Backend string
	Cause   error
}

func (e *StoreBootstrapError) Error() string {
	if e == nil {
		return "node store bootstrap failed"
	}
	return fmt.Sprintf("node store bootstrap failed (backend=%q): %v", e.Backend, e.Cause)
}

func (e *StoreBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// resolveNodeStore selects the node store backend from configuration.
func resolveNodeStore(log *logger.Logger, cfg Config) (store.NodeStore, error) {
	backend := strings.TrimSpace(strings.ToLower(cfg.StoreBackend))
	log.Info("Selecting node store backend", "backend", backend)
	switch backend {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		rs, err := store.NewRedisStore(log)
		if err != nil {
			return nil, &StoreBootstrapError{Backend: backend, Cause: err}
		}
		return rs, nil
	case "postgres":
		pg, err := db.NewPostgresService(log)
		if err != nil {
			return nil, &StoreBootstrapError{Backend: backend, Cause: err}
		}
		if err := pg.AutoMigrateAll(); err != nil {
			return nil, &StoreBootstrapError{Backend: backend, Cause: err}
		}
		return store.NewGormStore(pg.DB(), log), nil
	default:
		return nil, &StoreBootstrapError{
			Backend: backend,
			Cause:   fmt.Errorf("unsupported node store backend %q", backend),
		}
	}
}
