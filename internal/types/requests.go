package types

// ImportItem is one incoming unit of an import batch. Price is a pointer so
// a category can legitimately carry no price at all.
type ImportItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ParentID *string  `json:"parentId"`
	Type     NodeType `json:"type"`
	Price    *int64   `json:"price"`
}

// ImportRequest is the body of POST /imports; every item in the batch
// shares the single UpdateDate.
type ImportRequest struct {
	Items      []ImportItem `json:"items"`
	UpdateDate string       `json:"updateDate"`
}
