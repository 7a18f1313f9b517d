package wardrobecat

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// PostgresRepository reads the clothing catalog from Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every catalog row.
func (r *PostgresRepository) List(ctx context.Context) ([]wardrobe.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, category, tags, age_group, gender, image
		FROM wardrobe_items
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []wardrobe.Item
	for rows.Next() {
		var item wardrobe.Item
		if err := rows.Scan(&item.Name, &item.Category, &item.Tags, &item.AgeGroup, &item.Gender, &item.Image); err != nil {
			return nil, err
		}
		item.ApplyDefaults()
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ wardrobe.Repository = (*PostgresRepository)(nil)
