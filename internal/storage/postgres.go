package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"phishguard/internal/domain"
)

// PostgresStore keeps an append-only history of served predictions.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	db, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("unable to prepare schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS predictions (
		   id          BIGSERIAL PRIMARY KEY,
		   url         TEXT NOT NULL,
		   label       SMALLINT NOT NULL,
		   probability DOUBLE PRECISION,
		   created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		 )`)
	return err
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// SavePrediction appends a served prediction to the history.
func (s *PostgresStore) SavePrediction(ctx context.Context, pred *domain.Prediction) error {
	var probability *float64
	if len(pred.Probabilities) == 2 {
		probability = &pred.Probabilities[1]
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO predictions (url, label, probability) VALUES ($1, $2, $3)`,
		pred.URL, pred.Label, probability)
	return err
}

// RecentPredictions returns the newest history entries, most recent first.
func (s *PostgresStore) RecentPredictions(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT url, label, COALESCE(probability, 0), created_at
		 FROM predictions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.URL, &e.Label, &e.Probability, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) Close() {
	s.db.Close()
}
