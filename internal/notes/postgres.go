package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, n *models.Note) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO notes (id, title, content, owner, is_private)
		 VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.Title, n.Content, n.Owner, n.IsPrivate,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var n models.Note
	err := s.db.QueryRow(ctx,
		"SELECT id, title, content, owner, is_private FROM notes WHERE id = $1", id,
	).Scan(&n.ID, &n.Title, &n.Content, &n.Owner, &n.IsPrivate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &n, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Note, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id, title, content, owner, is_private FROM notes ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Owner, &n.IsPrivate); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, n *models.Note) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE notes SET title=$2, content=$3, is_private=$4 WHERE id=$1",
		n.ID, n.Title, n.Content, n.IsPrivate,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNoteNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM notes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNoteNotFound
	}
	return nil
}
