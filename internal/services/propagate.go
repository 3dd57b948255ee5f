package services

import (
	"context"
	"time"

	"github.com/megamarket/catalog-backend/internal/types"
)

// applyDelta applies a signed aggregate delta to start and then to every
// ancestor reached by following parent ids until a root. Each touched node
// gets its derived price recomputed (floor of sum/count, nil at zero count)
// and is persisted, so callers must finish their own mutations of start
// (child membership) before calling and must not persist it again after.
// silent passes keep ancestor dates untouched; deletions use them.
func (s *catalogService) applyDelta(ctx context.Context, priceDelta, offerCntDelta int64, ts time.Time, start *types.Node, silent bool) error {
	current := start
	for {
		current.ChildrenPriceSum += priceDelta
		current.ChildrenOffersCnt += offerCntDelta
		if !silent {
			current.Date = ts
		}
		if current.Type == types.NodeTypeCategory {
			if current.ChildrenOffersCnt > 0 {
				avg := current.ChildrenPriceSum / current.ChildrenOffersCnt
				current.Price = &avg
			} else {
				current.Price = nil
			}
		}
		if err := s.store.Put(ctx, current); err != nil {
			return err
		}
		if current.ParentID == nil {
			return nil
		}
		next, err := s.getExisting(ctx, *current.ParentID)
		if err != nil {
			return err
		}
		current = next
	}
}
