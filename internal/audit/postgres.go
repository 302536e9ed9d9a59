package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noteshq/notesapi/internal/models"
)

type PostgresLogStore struct {
	db *pgxpool.Pool
}

func NewPostgresLogStore(db *pgxpool.Pool) *PostgresLogStore {
	return &PostgresLogStore{db: db}
}

func (s *PostgresLogStore) Insert(ctx context.Context, e *models.LogEntry) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO logs (id, timestamp, username, endpoint, method, status_code)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Timestamp, e.Username, e.Endpoint, e.Method, e.StatusCode,
	)
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

func (s *PostgresLogStore) List(ctx context.Context, limit, offset int) ([]models.LogEntry, error) {
	query := "SELECT id, timestamp, username, endpoint, method, status_code FROM logs ORDER BY timestamp"
	args := []interface{}{}
	if limit > 0 {
		if offset < 0 {
			offset = 0
		}
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	var out []models.LogEntry
	for rows.Next() {
		var e models.LogEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Username, &e.Endpoint, &e.Method, &e.StatusCode); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
