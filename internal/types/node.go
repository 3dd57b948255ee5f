package types

import (
	"time"
)

type NodeType string

const (
	NodeTypeCategory NodeType = "CATEGORY"
	NodeTypeOffer    NodeType = "OFFER"
)

// Node is the stored catalog entity. Categories carry running aggregates
// over their OFFER descendants; offers keep both counters at zero.
type Node struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Date              time.Time `json:"date"`
	ParentID          *string   `json:"parentId"`
	Type              NodeType  `json:"type"`
	Price             *int64    `json:"price"`
	ChildrenPriceSum  int64     `json:"childrenPriceSum"`
	ChildrenOffersCnt int64     `json:"childrenOffersCnt"`
	Children          []string  `json:"children"`
}

// Contribution is the node's own share of an ancestor's aggregates: the
// price and a count of one for an offer, the accumulated sums for a category.
func (n *Node) Contribution() (priceDelta, offerCntDelta int64) {
	if n.Type == NodeTypeOffer {
		if n.Price != nil {
			priceDelta = *n.Price
		}
		return priceDelta, 1
	}
	return n.ChildrenPriceSum, n.ChildrenOffersCnt
}

func (n *Node) AddChild(id string) {
	for _, c := range n.Children {
		if c == id {
			return
		}
	}
	n.Children = append(n.Children, id)
}

func (n *Node) RemoveChild(id string) {
	for i, c := range n.Children {
		if c == id {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	if n.ParentID != nil {
		pid := *n.ParentID
		cp.ParentID = &pid
	}
	if n.Price != nil {
		p := *n.Price
		cp.Price = &p
	}
	if n.Children != nil {
		cp.Children = append([]string(nil), n.Children...)
	}
	return &cp
}
