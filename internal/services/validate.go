package services

import (
	"context"
	"time"

	"github.com/megamarket/catalog-backend/internal/apperr"
	"github.com/megamarket/catalog-backend/internal/store"
	"github.com/megamarket/catalog-backend/internal/types"
)

// validateImport checks the whole batch before any mutation and returns the
// item indexes in application order: batch-introduced parents come before
// their batch-local children. A failure leaves no state behind.
func (s *catalogService) validateImport(ctx context.Context, req types.ImportRequest) ([]int, time.Time, error) {
	updateDate, err := types.ParseDate(req.UpdateDate)
	if err != nil {
		return nil, time.Time{}, apperr.Validationf("date is not in ISO 8601 format: %s", req.UpdateDate)
	}

	idToType := make(map[string]types.NodeType, len(req.Items))
	idToIndex := make(map[string]int, len(req.Items))
	for i, item := range req.Items {
		if _, dup := idToType[item.ID]; dup {
			return nil, time.Time{}, apperr.Validationf("duplicate id in import batch, id = %s", item.ID)
		}
		idToType[item.ID] = item.Type
		idToIndex[item.ID] = i
	}

	// Dependency edges parent -> child, only when both ends are batch items.
	adj := make([][]int, len(req.Items))

	// checkParent verifies the resolved parent is a category and records a
	// batch-local dependency edge when the parent is introduced by this
	// same batch.
	checkParent := func(childIdx int, parentID string) error {
		if t, inBatch := idToType[parentID]; inBatch {
			if t != types.NodeTypeCategory {
				return apperr.Validationf("only a category can be a parent, new parent id = %s", parentID)
			}
			adj[idToIndex[parentID]] = append(adj[idToIndex[parentID]], childIdx)
			return nil
		}
		parent, err := s.store.Get(ctx, parentID)
		if err == store.ErrNotFound {
			return apperr.Validationf("node with input id doesn't exist, input id = %s", parentID)
		}
		if err != nil {
			return err
		}
		if parent.Type != types.NodeTypeCategory {
			return apperr.Validationf("only a category can be a parent, new parent id = %s", parentID)
		}
		return nil
	}

	for i, item := range req.Items {
		if !isValidUUID(item.ID) {
			return nil, time.Time{}, apperr.Validationf("id of item is not in UUID format, id = %s", item.ID)
		}
		if item.ParentID != nil && !isValidUUID(*item.ParentID) {
			return nil, time.Time{}, apperr.Validationf("parentId of item is not in UUID format, id = %s", item.ID)
		}
		if item.Name == "" {
			return nil, time.Time{}, apperr.Validationf("name of item is empty, id = %s", item.ID)
		}
		if item.Type != types.NodeTypeCategory && item.Type != types.NodeTypeOffer {
			return nil, time.Time{}, apperr.Validationf("unknown item type %q, id = %s", item.Type, item.ID)
		}
		if item.Type == types.NodeTypeCategory && item.Price != nil {
			return nil, time.Time{}, apperr.Validationf("price of category is not null, id = %s", item.ID)
		}
		if item.Type == types.NodeTypeOffer && (item.Price == nil || *item.Price < 0) {
			return nil, time.Time{}, apperr.Validationf("price of offer must be a non-null integer >= 0, id = %s", item.ID)
		}

		exists, err := s.store.Exists(ctx, item.ID)
		if err != nil {
			return nil, time.Time{}, err
		}
		if exists {
			old, err := s.getExisting(ctx, item.ID)
			if err != nil {
				return nil, time.Time{}, err
			}
			if item.Type != old.Type {
				return nil, time.Time{}, apperr.Validationf("changing the type of a node is forbidden, id = %s", item.ID)
			}
			// An unchanged parent needs no linkage re-validation.
			if equalParentID(item.ParentID, old.ParentID) {
				continue
			}
			if item.ParentID != nil {
				if err := checkParent(i, *item.ParentID); err != nil {
					return nil, time.Time{}, err
				}
			}
		} else if item.ParentID != nil {
			if err := checkParent(i, *item.ParentID); err != nil {
				return nil, time.Time{}, err
			}
		}
	}

	order, err := topoOrder(adj)
	if err != nil {
		return nil, time.Time{}, err
	}
	return order, updateDate, nil
}

func equalParentID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

const (
	markUnvisited = iota
	markInProgress
	markDone
)

// topoOrder produces a parents-before-children order over all batch
// indexes via iterative depth-first postorder, reversed. A back edge means
// the batch wires its own items into a parent cycle, which is rejected.
func topoOrder(adj [][]int) ([]int, error) {
	mark := make([]int, len(adj))
	order := make([]int, 0, len(adj))

	type frame struct {
		node int
		next int
	}

	for start := range adj {
		if mark[start] != markUnvisited {
			continue
		}
		mark[start] = markInProgress
		stack := []frame{{node: start}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(adj[f.node]) {
				u := adj[f.node][f.next]
				f.next++
				switch mark[u] {
				case markUnvisited:
					mark[u] = markInProgress
					stack = append(stack, frame{node: u})
				case markInProgress:
					return nil, apperr.Validationf("import batch contains a parent cycle")
				}
				continue
			}
			mark[f.node] = markDone
			order = append(order, f.node)
			stack = stack[:len(stack)-1]
		}
	}

	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}
	return order, nil
}
