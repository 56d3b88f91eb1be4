package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"bestsellers/internal/model"
)

// RawRepository keeps scraped rows exactly as extracted, one batch per run.
type RawRepository struct {
	DB *sql.DB
}

func (r *RawRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS product_raw (
			id           UUID PRIMARY KEY,
			run_id       UUID NOT NULL,
			position     INTEGER NOT NULL,
			source_url   TEXT NOT NULL,
			rank         TEXT NOT NULL,
			title        TEXT NOT NULL,
			price        TEXT NOT NULL,
			rating       TEXT NOT NULL,
			review_count TEXT NOT NULL,
			url          TEXT NOT NULL,
			scraped_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (r *RawRepository) SaveBatch(runID uuid.UUID, sourceURL string, products []model.RawProduct) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO product_raw
		(id, run_id, position, source_url, rank, title, price, rating, review_count, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.Exec(uuid.New(), runID, i, sourceURL, p.Rank, p.Title, p.Price, p.Rating, p.ReviewCount, p.URL); err != nil {
			return fmt.Errorf("insert raw product %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (r *RawRepository) ListRun(runID uuid.UUID) ([]model.RawProduct, error) {
	rows, err := r.DB.Query(`
		SELECT rank, title, price, rating, review_count, url
		FROM product_raw
		WHERE run_id = $1
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.RawProduct
	for rows.Next() {
		var p model.RawProduct
		if err := rows.Scan(&p.Rank, &p.Title, &p.Price, &p.Rating, &p.ReviewCount, &p.URL); err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	return list, rows.Err()
}
