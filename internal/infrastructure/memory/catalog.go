package memory

import (
	"context"
	"sync"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
)

// CatalogStore is an in-memory catalog.Repository holding items in
// insertion order. It backs tests and the memory store backend.
type CatalogStore struct {
	mu    sync.RWMutex
	items []*catalog.Item
}

// NewCatalogStore creates a store over a copy of the given items.
func NewCatalogStore(items []*catalog.Item) *CatalogStore {
	copied := make([]*catalog.Item, len(items))
	for i, item := range items {
		it := *item
		copied[i] = &it
	}
	return &CatalogStore{items: copied}
}

func (s *CatalogStore) List(ctx context.Context) ([]*catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*catalog.Item, 0, len(s.items))
	for _, item := range s.items {
		it := *item
		out = append(out, &it)
	}
	return out, nil
}

func (s *CatalogStore) ListByCategory(ctx context.Context, category catalog.Category) ([]*catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*catalog.Item, 0)
	for _, item := range s.items {
		if item.Category == category {
			it := *item
			out = append(out, &it)
		}
	}
	return out, nil
}

func (s *CatalogStore) GetByID(ctx context.Context, id int) (*catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			it := *item
			return &it, nil
		}
	}
	return nil, nil
}

// SeedItems mirrors the catalog seed migration, so the memory backend
// serves the same inventory as a freshly migrated database.
func SeedItems() []*catalog.Item {
	return []*catalog.Item{
		{ID: 1, Name: "Massey Ferguson 240", Price: 8500, Condition: "used", Category: catalog.CategoryFarming, ImageURL: "https://cdn.tractorhouse.example/items/massey-ferguson-240.jpg"},
		{ID: 2, Name: "John Deere 5075E", Price: 10000, Condition: "new", Category: catalog.CategoryFarming, ImageURL: "https://cdn.tractorhouse.example/items/john-deere-5075e.jpg"},
		{ID: 3, Name: "Kubota BX2380", Price: 5600, Condition: "refurbished", Category: catalog.CategoryLandscaping, ImageURL: "https://cdn.tractorhouse.example/items/kubota-bx2380.jpg"},
		{ID: 4, Name: "New Holland Workmaster 75", Price: 12800, Condition: "new", Category: catalog.CategoryFarming, ImageURL: "https://cdn.tractorhouse.example/items/new-holland-workmaster-75.jpg"},
		{ID: 5, Name: "Caterpillar 420F Backhoe", Price: 19500, Condition: "used", Category: catalog.CategoryConstruction, ImageURL: "https://cdn.tractorhouse.example/items/caterpillar-420f.jpg"},
		{ID: 6, Name: "John Deere Z530M Mower", Price: 3200, Condition: "new", Category: catalog.CategoryLandscaping, ImageURL: "https://cdn.tractorhouse.example/items/john-deere-z530m.jpg"},
		{ID: 7, Name: "Case CX37C Mini Excavator", Price: 15750.55, Condition: "refurbished", Category: catalog.CategoryConstruction, ImageURL: "https://cdn.tractorhouse.example/items/case-cx37c.jpg"},
	}
}
