package services

import (
	"context"
	"time"

	"github.com/megamarket/catalog-backend/internal/types"
)

func (s *catalogService) Import(ctx context.Context, req types.ImportRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, updateDate, err := s.validateImport(ctx, req)
	if err != nil {
		return err
	}
	for _, idx := range order {
		if err := s.applyItem(ctx, req.Items[idx], updateDate); err != nil {
			return err
		}
	}
	s.log.Info("import batch applied", "items", len(req.Items))
	return nil
}

// buildNode materializes an import item as a stored node stamped with the
// batch date. Aggregates start at zero; updates to existing categories
// carry the old aggregates over afterwards.
func buildNode(item types.ImportItem, updateDate time.Time) *types.Node {
	n := &types.Node{
		ID:       item.ID,
		Name:     item.Name,
		Date:     updateDate,
		ParentID: item.ParentID,
		Type:     item.Type,
		Price:    item.Price,
	}
	if n.Type == types.NodeTypeCategory {
		n.Children = []string{}
	}
	return n
}

func (s *catalogService) applyItem(ctx context.Context, item types.ImportItem, updateDate time.Time) error {
	exists, err := s.store.Exists(ctx, item.ID)
	if err != nil {
		return err
	}
	if !exists {
		return s.insertItem(ctx, item, updateDate)
	}
	return s.updateItem(ctx, item, updateDate)
}

func (s *catalogService) insertItem(ctx context.Context, item types.ImportItem, updateDate time.Time) error {
	node := buildNode(item, updateDate)
	if node.ParentID != nil {
		parent, err := s.getExisting(ctx, *node.ParentID)
		if err != nil {
			return err
		}
		parent.AddChild(node.ID)
		priceDelta, cntDelta := node.Contribution()
		if err := s.applyDelta(ctx, priceDelta, cntDelta, updateDate, parent, false); err != nil {
			return err
		}
	}
	return s.store.Put(ctx, node)
}

func (s *catalogService) updateItem(ctx context.Context, item types.ImportItem, updateDate time.Time) error {
	old, err := s.getExisting(ctx, item.ID)
	if err != nil {
		return err
	}
	updated := buildNode(item, updateDate)
	if updated.Type == types.NodeTypeCategory {
		// A category's contents are not changed through this path: keep the
		// running aggregates and the child membership of the stored node.
		updated.ChildrenPriceSum = old.ChildrenPriceSum
		updated.ChildrenOffersCnt = old.ChildrenOffersCnt
		updated.Children = old.Children
		if updated.ChildrenOffersCnt > 0 {
			avg := updated.ChildrenPriceSum / updated.ChildrenOffersCnt
			updated.Price = &avg
		}
	}

	switch {
	case updated.ParentID != nil && old.ParentID != nil && *updated.ParentID != *old.ParentID:
		if err := s.detachFromParent(ctx, old, updateDate); err != nil {
			return err
		}
		if err := s.attachToParent(ctx, updated, updateDate); err != nil {
			return err
		}
	case updated.ParentID != nil && old.ParentID != nil:
		// Same parent: push one combined delta, new minus old.
		parent, err := s.getExisting(ctx, *old.ParentID)
		if err != nil {
			return err
		}
		var priceDelta, cntDelta int64
		if updated.Type == types.NodeTypeOffer {
			priceDelta = *updated.Price - *old.Price
		} else {
			priceDelta = updated.ChildrenPriceSum - old.ChildrenPriceSum
			cntDelta = updated.ChildrenOffersCnt - old.ChildrenOffersCnt
		}
		if err := s.applyDelta(ctx, priceDelta, cntDelta, updateDate, parent, false); err != nil {
			return err
		}
	case updated.ParentID != nil:
		if err := s.attachToParent(ctx, updated, updateDate); err != nil {
			return err
		}
	case old.ParentID != nil:
		if err := s.detachFromParent(ctx, old, updateDate); err != nil {
			return err
		}
	}

	return s.store.Put(ctx, updated)
}

// detachFromParent removes the node from its parent's children and reverses
// its contribution up the old chain.
func (s *catalogService) detachFromParent(ctx context.Context, node *types.Node, updateDate time.Time) error {
	parent, err := s.getExisting(ctx, *node.ParentID)
	if err != nil {
		return err
	}
	parent.RemoveChild(node.ID)
	priceDelta, cntDelta := node.Contribution()
	return s.applyDelta(ctx, -priceDelta, -cntDelta, updateDate, parent, false)
}

// attachToParent adds the node to its new parent's children and pushes its
// contribution up the new chain.
func (s *catalogService) attachToParent(ctx context.Context, node *types.Node, updateDate time.Time) error {
	parent, err := s.getExisting(ctx, *node.ParentID)
	if err != nil {
		return err
	}
	parent.AddChild(node.ID)
	priceDelta, cntDelta := node.Contribution()
	return s.applyDelta(ctx, priceDelta, cntDelta, updateDate, parent, false)
}
