package services

import (
	"context"
	"time"

	"github.com/megamarket/catalog-backend/internal/apperr"
	"github.com/megamarket/catalog-backend/internal/store"
	"github.com/megamarket/catalog-backend/internal/types"
)

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if !isValidUUID(id) {
		return apperr.Validationf("id is not in UUID format, id = %s", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	node, err := s.store.Get(ctx, id)
	if err == store.ErrNotFound {
		return apperr.NotFound(id)
	}
	if err != nil {
		return err
	}

	if node.ParentID != nil {
		parent, err := s.getExisting(ctx, *node.ParentID)
		if err != nil {
			return err
		}
		parent.RemoveChild(node.ID)
		priceDelta, cntDelta := node.Contribution()
		// Silent: a deletion does not restamp ancestor dates.
		if err := s.applyDelta(ctx, -priceDelta, -cntDelta, time.Time{}, parent, true); err != nil {
			return err
		}
	}

	if node.Type == types.NodeTypeOffer {
		if err := s.store.Delete(ctx, node.ID); err != nil {
			return err
		}
		s.log.Info("node deleted", "id", node.ID, "type", node.Type)
		return nil
	}
	if err := s.deleteSubtree(ctx, node); err != nil {
		return err
	}
	s.log.Info("node deleted", "id", node.ID, "type", node.Type)
	return nil
}

// deleteSubtree removes the category and every descendant with an explicit
// stack. Nodes strictly inside the subtree need no aggregate propagation;
// they disappear together.
func (s *catalogService) deleteSubtree(ctx context.Context, root *types.Node) error {
	stack := []*types.Node{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := s.store.Delete(ctx, current.ID); err != nil {
			return err
		}
		if current.Type != types.NodeTypeCategory {
			continue
		}
		for _, childID := range current.Children {
			child, err := s.store.Get(ctx, childID)
			if err == store.ErrNotFound {
				continue
			}
			if err != nil {
				return err
			}
			stack = append(stack, child)
		}
	}
	return nil
}
