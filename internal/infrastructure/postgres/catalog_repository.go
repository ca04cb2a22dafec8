package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
)

// CatalogRepository implements catalog.Repository.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) List(ctx context.Context) ([]*catalog.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, condition, category, image_url
		FROM items ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *CatalogRepository) ListByCategory(ctx context.Context, category catalog.Category) ([]*catalog.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, condition, category, image_url
		FROM items WHERE category=$1 ORDER BY id
	`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *CatalogRepository) GetByID(ctx context.Context, id int) (*catalog.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, price, condition, category, image_url
		FROM items WHERE id=$1
	`, id)
	item, err := scanItem(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func scanItem(row pgx.Row) (*catalog.Item, error) {
	var it catalog.Item
	var category string
	if err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Condition, &category, &it.ImageURL); err != nil {
		return nil, err
	}
	it.Category = catalog.Category(category)
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]*catalog.Item, error) {
	items := make([]*catalog.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
