// Package store defines the key-addressed node store contract and its
// backends. The store offers point lookups and durable single-key writes
// but no transactions spanning multiple keys; callers own any cross-key
// consistency.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/megamarket/catalog-backend/internal/types"
)

// ErrNotFound is returned by Get when no node exists under the id.
var ErrNotFound = errors.New("node not found")

type NodeStore interface {
	Get(ctx context.Context, id string) (*types.Node, error)
	Exists(ctx context.Context, id string) (bool, error)
	// Put upserts the node under its id.
	Put(ctx context.Context, n *types.Node) error
	Delete(ctx context.Context, id string) error
	// ScanByDateRange returns every node whose date lies in [from, to],
	// inclusive on both bounds.
	ScanByDateRange(ctx context.Context, from, to time.Time) ([]*types.Node, error)
}
