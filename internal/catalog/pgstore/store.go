// Package pgstore persists the waste catalog in Postgres for deployments
// where several users share one dataset. The database serializes concurrent
// appends; the CSV store offers no such protection.
package pgstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (catalog.Record, error) {
	var rec catalog.Record

	var yield sql.NullFloat64

	if err := s.Scan(&rec.Name, &rec.BestUse, &rec.CompostTime, &rec.Nutrient, &rec.Tips, &yield); err != nil {
		return catalog.Record{}, err
	}

	if yield.Valid {
		v := yield.Float64
		rec.YieldPct = &v
	}

	return rec, nil
}

// LoadAll returns every waste type in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]catalog.Record, error) {
	query := `
		SELECT name, best_use, compost_time, nutrient, tips, yield_pct
		FROM waste_types
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing waste types: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning waste type: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating waste types: %w", err)
	}

	return records, nil
}

// Append inserts a new waste type. The primary key on name backs up the
// service-level uniqueness check against concurrent writers.
func (s *Store) Append(ctx context.Context, rec catalog.Record) error {
	query := `
		INSERT INTO waste_types (name, best_use, compost_time, nutrient, tips, yield_pct)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var yield sql.NullFloat64
	if rec.YieldPct != nil {
		yield = sql.NullFloat64{Float64: *rec.YieldPct, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query, rec.Name, rec.BestUse, rec.CompostTime, rec.Nutrient, rec.Tips, yield)
	if err != nil {
		return fmt.Errorf("inserting waste type %q: %w", rec.Name, err)
	}

	return nil
}
