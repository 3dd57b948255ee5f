package services

import (
	"context"
	"time"

	"github.com/megamarket/catalog-backend/internal/apperr"
	"github.com/megamarket/catalog-backend/internal/store"
	"github.com/megamarket/catalog-backend/internal/types"
)

func (s *catalogService) GetNode(ctx context.Context, id string) (*types.NodeView, error) {
	if !isValidUUID(id) {
		return nil, apperr.Validationf("id is not in UUID format, id = %s", id)
	}
	node, err := s.store.Get(ctx, id)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, node)
}

// buildView nests children recursively with an explicit stack. Offer views
// carry nil children so they serialize as null; category views always carry
// an array, possibly empty.
func (s *catalogService) buildView(ctx context.Context, root *types.Node) (*types.NodeView, error) {
	rootView := newView(root)

	type pending struct {
		node *types.Node
		view *types.NodeView
	}
	stack := []pending{{node: root, view: rootView}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.node.Type != types.NodeTypeCategory {
			continue
		}
		for _, childID := range cur.node.Children {
			child, err := s.store.Get(ctx, childID)
			if err == store.ErrNotFound {
				continue
			}
			if err != nil {
				return nil, err
			}
			childView := newView(child)
			cur.view.Children = append(cur.view.Children, childView)
			stack = append(stack, pending{node: child, view: childView})
		}
	}
	return rootView, nil
}

func newView(n *types.Node) *types.NodeView {
	v := &types.NodeView{
		ID:       n.ID,
		Name:     n.Name,
		Date:     types.FormatDate(n.Date),
		ParentID: n.ParentID,
		Type:     n.Type,
		Price:    n.Price,
	}
	if n.Type == types.NodeTypeCategory {
		v.Children = []*types.NodeView{}
	}
	return v
}

func (s *catalogService) GetSales(ctx context.Context, date string) ([]*types.Node, error) {
	pointInTime, err := types.ParseDate(date)
	if err != nil {
		return nil, apperr.Validationf("date is not in ISO 8601 format: %s", date)
	}
	from := pointInTime.Add(-24 * time.Hour)
	nodes, err := s.store.ScanByDateRange(ctx, from, pointInTime)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []*types.Node{}
	}
	return nodes, nil
}
