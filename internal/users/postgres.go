package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

const userColumns = "id, username, full_name, email, password_hash, role, is_active, api_key"

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, username, full_name, email, password_hash, role, is_active, api_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Username, u.FullName, u.Email, u.PasswordHash, u.Role, u.IsActive, u.APIKey,
	)
	// Two registrations racing past the existence pre-check. Only the
	// username constraint maps to the typed error; a duplicate email is a
	// plain storage failure.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "users_username_key" {
		return common.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return scanUser(row)
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *PostgresStore) GetByAPIKey(ctx context.Context, key string) (*models.User, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE api_key = $1", key)
	return scanUser(row)
}

func (s *PostgresStore) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.APIKey); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, u *models.User) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET full_name=$2, email=$3, password_hash=$4, role=$5, is_active=$6, api_key=$7
		 WHERE id=$1`,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.Role, u.IsActive, u.APIKey,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, username string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.APIKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
