package types

// NodeView is the nested representation returned by GET /nodes/:id.
// Offers always report Children as null; categories keep an array, possibly
// empty.
type NodeView struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Date     string      `json:"date"`
	ParentID *string     `json:"parentId"`
	Type     NodeType    `json:"type"`
	Price    *int64      `json:"price"`
	Children []*NodeView `json:"children"`
}

// SaleView is the flat representation used by GET /sales.
type SaleView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Date     string   `json:"date"`
	ParentID *string  `json:"parentId"`
	Type     NodeType `json:"type"`
	Price    *int64   `json:"price"`
}

type SalesResponse struct {
	Items []SaleView `json:"items"`
}

func NewSaleView(n *Node) SaleView {
	return SaleView{
		ID:       n.ID,
		Name:     n.Name,
		Date:     FormatDate(n.Date),
		ParentID: n.ParentID,
		Type:     n.Type,
		Price:    n.Price,
	}
}

// ErrorResponse is the canonical error body: {"code": ..., "message": ...}.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
