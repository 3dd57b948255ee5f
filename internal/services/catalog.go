package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/megamarket/catalog-backend/internal/apperr"
	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/store"
	"github.com/megamarket/catalog-backend/internal/types"
)

type CatalogService interface {
	// GetNode returns the node with its children recursively nested.
	GetNode(ctx context.Context, id string) (*types.NodeView, error)
	// GetSales returns the nodes updated in the inclusive 24h window
	// trailing the given ISO-8601 point in time.
	GetSales(ctx context.Context, date string) ([]*types.Node, error)
	// Import validates a batch and applies it in dependency order. The
	// batch is rejected as a whole before any mutation on a validation
	// failure.
	Import(ctx context.Context, req types.ImportRequest) error
	// Delete removes a node, reversing its contribution on the ancestor
	// chain; categories cascade to their whole subtree.
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	store store.NodeStore
	log   *logger.Logger

	// Ancestor-chain propagation is a multi-key read-modify-write with no
	// store transaction behind it, so mutating operations funnel through a
	// single writer. Reads run against the latest visible store state.
	mu sync.Mutex
}

func NewCatalogService(st store.NodeStore, log *logger.Logger) CatalogService {
	return &catalogService{
		store: st,
		log:   log.With("service", "CatalogService"),
	}
}

// isValidUUID accepts only the canonical 36-character form.
func isValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// getExisting resolves a node that prior validation or tree invariants
// guarantee to exist; absence at this point is a validation-level breach,
// not a NotFound.
func (s *catalogService) getExisting(ctx context.Context, id string) (*types.Node, error) {
	n, err := s.store.Get(ctx, id)
	if err == store.ErrNotFound {
		return nil, apperr.Validationf("node with input id doesn't exist, input id = %s", id)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}
