package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/types"
)

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&NodeRecord{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewGormStore(db, log)
}

func TestGormStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	now := time.Date(2022, 2, 1, 12, 0, 0, 0, time.UTC)

	parentID := "3fa85f64-5717-4562-b3fc-2c963f66a001"
	n := &types.Node{
		ID:                "3fa85f64-5717-4562-b3fc-2c963f66a002",
		Name:              "category",
		Date:              now,
		ParentID:          &parentID,
		Type:              types.NodeTypeCategory,
		ChildrenPriceSum:  300,
		ChildrenOffersCnt: 2,
		Children:          []string{"c1", "c2"},
	}
	price := int64(150)
	n.Price = &price

	if err := s.Put(ctx, n); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != n.Name || got.Type != n.Type {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if got.ParentID == nil || *got.ParentID != parentID {
		t.Fatalf("parent id lost: %+v", got.ParentID)
	}
	if got.Price == nil || *got.Price != 150 {
		t.Fatalf("price lost: %+v", got.Price)
	}
	if len(got.Children) != 2 || got.Children[0] != "c1" {
		t.Fatalf("children lost: %v", got.Children)
	}
	if !got.Date.Equal(now) {
		t.Fatalf("date mismatch: %v vs %v", got.Date, now)
	}
}

func TestGormStoreUpsert(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	now := time.Now().UTC()

	n := testNode("3fa85f64-5717-4562-b3fc-2c963f66a003", now)
	if err := s.Put(ctx, n); err != nil {
		t.Fatalf("Put: %v", err)
	}
	n.Name = "renamed"
	newPrice := int64(250)
	n.Price = &newPrice
	if err := s.Put(ctx, n); err != nil {
		t.Fatalf("Put upsert: %v", err)
	}

	got, err := s.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "renamed" || got.Price == nil || *got.Price != 250 {
		t.Fatalf("upsert did not overwrite: %+v", got)
	}
}

func TestGormStoreExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	id := "3fa85f64-5717-4562-b3fc-2c963f66a004"
	ok, err := s.Exists(ctx, id)
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v", ok, err)
	}
	if _, err := s.Get(ctx, id); err != ErrNotFound {
		t.Fatalf("Get(missing) = %v, want ErrNotFound", err)
	}

	if err := s.Put(ctx, testNode(id, time.Now().UTC())); err != nil {
		t.Fatalf("Put: %v", err)
	}
	ok, err = s.Exists(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Exists(present) = %v, %v", ok, err)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, id); err != ErrNotFound {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestGormStoreScanInclusiveBounds(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	base := time.Date(2022, 2, 1, 12, 0, 0, 0, time.UTC)

	put := func(id string, d time.Time) {
		t.Helper()
		if err := s.Put(ctx, testNode(id, d)); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	put("3fa85f64-5717-4562-b3fc-2c963f66b001", base.Add(-time.Second))
	put("3fa85f64-5717-4562-b3fc-2c963f66b002", base)
	put("3fa85f64-5717-4562-b3fc-2c963f66b003", base.Add(time.Hour))
	put("3fa85f64-5717-4562-b3fc-2c963f66b004", base.Add(2*time.Hour))
	put("3fa85f64-5717-4562-b3fc-2c963f66b005", base.Add(2*time.Hour+time.Second))

	nodes, err := s.ScanByDateRange(ctx, base, base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("ScanByDateRange: %v", err)
	}
	if len(nodes) != 3 {
		ids := make([]string, 0, len(nodes))
		for _, n := range nodes {
			ids = append(ids, n.ID)
		}
		t.Fatalf("scan returned %d nodes (%v), want 3", len(nodes), ids)
	}
}
