package catalog

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
)

// Repository defines read-only access to the item catalog.
// Lookups that find nothing return (nil, nil).
type Repository interface {
	List(ctx context.Context) ([]*Item, error)
	ListByCategory(ctx context.Context, category Category) ([]*Item, error)
	GetByID(ctx context.Context, id int) (*Item, error)
}
