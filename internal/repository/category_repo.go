package repository

import (
	"context"

	"threadbare/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListSummaries returns every category as a summary, ordered by name.
func (r *CategoryRepository) ListSummaries(ctx context.Context) ([]domain.CategorySummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color, icon FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.CategorySummary
	for rows.Next() {
		var c domain.CategorySummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// Create inserts a category and fills its generated id and timestamps.
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categories (name, color, icon) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Color, c.Icon,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// DeleteAll removes every category; dependent tasks go with them through the
// cascade. Used by the seed command.
func (r *CategoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories`)
	return err
}
