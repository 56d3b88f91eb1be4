package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bestsellers/internal/model"
)

// ProductRepository stores normalized products. Price and rating are nullable
// columns so that a missing value is not confused with zero.
type ProductRepository struct {
	DB *pgxpool.Pool
}

func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS product_clean (
			id           UUID PRIMARY KEY,
			run_id       UUID NOT NULL,
			position     INTEGER NOT NULL,
			rank         INTEGER NOT NULL,
			title        TEXT NOT NULL,
			price        DOUBLE PRECISION,
			rating       DOUBLE PRECISION,
			review_count INTEGER NOT NULL,
			url          TEXT NOT NULL,
			cleaned_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (r *ProductRepository) SaveBatch(ctx context.Context, runID uuid.UUID, products []model.Product) error {
	batch := &pgx.Batch{}
	for i, p := range products {
		batch.Queue(`
			INSERT INTO product_clean
			(id, run_id, position, rank, title, price, rating, review_count, url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, uuid.New(), runID, i, p.Rank, p.Title, p.Price, p.Rating, p.ReviewCount, p.URL)
	}

	results := r.DB.SendBatch(ctx, batch)
	defer results.Close()

	for i := range products {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert product %d: %w", i, err)
		}
	}
	return nil
}

func (r *ProductRepository) ListRun(ctx context.Context, runID uuid.UUID) ([]model.Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT rank, title, price, rating, review_count, url
		FROM product_clean
		WHERE run_id = $1
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.Rank, &p.Title, &p.Price, &p.Rating, &p.ReviewCount, &p.URL); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
