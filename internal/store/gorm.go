package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/types"
)

// NodeRecord is the relational shape of a node. The child-id set is kept as
// a JSON column; the store contract never queries into it.
type NodeRecord struct {
	ID                string    `gorm:"primaryKey;size:36"`
	Name              string    `gorm:"not null"`
	Date              time.Time `gorm:"index;not null"`
	ParentID          *string   `gorm:"size:36;index"`
	Type              string    `gorm:"size:16;not null"`
	Price             *int64
	ChildrenPriceSum  int64
	ChildrenOffersCnt int64
	Children          datatypes.JSON
}

func (NodeRecord) TableName() string {
	return "nodes"
}

type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormStore(db *gorm.DB, log *logger.Logger) *GormStore {
	return &GormStore{db: db, log: log.With("store", "GormStore")}
}

func toRecord(n *types.Node) (*NodeRecord, error) {
	var children datatypes.JSON
	if n.Children != nil {
		raw, err := json.Marshal(n.Children)
		if err != nil {
			return nil, fmt.Errorf("encode children of %s: %w", n.ID, err)
		}
		children = raw
	}
	return &NodeRecord{
		ID:                n.ID,
		Name:              n.Name,
		Date:              n.Date,
		ParentID:          n.ParentID,
		Type:              string(n.Type),
		Price:             n.Price,
		ChildrenPriceSum:  n.ChildrenPriceSum,
		ChildrenOffersCnt: n.ChildrenOffersCnt,
		Children:          children,
	}, nil
}

func fromRecord(r *NodeRecord) (*types.Node, error) {
	var children []string
	if len(r.Children) > 0 {
		if err := json.Unmarshal(r.Children, &children); err != nil {
			return nil, fmt.Errorf("decode children of %s: %w", r.ID, err)
		}
	}
	return &types.Node{
		ID:                r.ID,
		Name:              r.Name,
		Date:              r.Date,
		ParentID:          r.ParentID,
		Type:              types.NodeType(r.Type),
		Price:             r.Price,
		ChildrenPriceSum:  r.ChildrenPriceSum,
		ChildrenOffersCnt: r.ChildrenOffersCnt,
		Children:          children,
	}, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*types.Node, error) {
	var rec NodeRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get node %s: %w", id, err)
	}
	return fromRecord(&rec)
}

func (s *GormStore) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).Model(&NodeRecord{}).Where("id = ?", id).Count(&cnt).Error
	if err != nil {
		return false, fmt.Errorf("exists node %s: %w", id, err)
	}
	return cnt > 0, nil
}

func (s *GormStore) Put(ctx context.Context, n *types.Node) error {
	rec, err := toRecord(n)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("put node %s: %w", n.ID, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Delete(&NodeRecord{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("delete node %s: %w", id, err)
	}
	return nil
}

func (s *GormStore) ScanByDateRange(ctx context.Context, from, to time.Time) ([]*types.Node, error) {
	var recs []NodeRecord
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("date scan: %w", err)
	}
	out := make([]*types.Node, 0, len(recs))
	for i := range recs {
		n, err := fromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
